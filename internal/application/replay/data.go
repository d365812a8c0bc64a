// Package replay stores per-frame player input and plays it back.
package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/younwookim/redemption/internal/application/system"
)

// Version is written into every replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	JP bool `json:"jp,omitempty"` // JumpPressed
	AP bool `json:"ap,omitempty"` // AttackPressed
	UF bool `json:"uf,omitempty"` // Unfocused
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput converts the input of a frame into its recorded form
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		JP: in.JumpPressed,
		AP: in.AttackPressed,
		UF: in.Unfocused,
	}
}

// Input converts the recorded frame back into input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Up:            fi.U,
		Down:          fi.D,
		JumpPressed:   fi.JP,
		AttackPressed: fi.AP,
		Unfocused:     fi.UF,
	}
}

// Encode writes replay data as indented JSON
func Encode(w io.Writer, data ReplayData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}
