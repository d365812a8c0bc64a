package entity

import "fmt"

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rects intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Entity is the shared position/hitbox base of players and enemies.
// X, Y is the spawn position; the hitbox moves independently of it
// and is only snapped back to X, Y on reset.
type Entity struct {
	X, Y          float64
	Width, Height int // sprite size in world units
	Hitbox        Rect
}

// NewEntity creates an entity at (x, y) with the given sprite size.
// A non-positive size is a programming error and panics.
func NewEntity(x, y float64, width, height int) Entity {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("entity: invalid size %dx%d", width, height))
	}
	return Entity{X: x, Y: y, Width: width, Height: height}
}

// InitHitbox places the collision footprint at (x, y) with size w x h
func (e *Entity) InitHitbox(x, y float64, w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("entity: invalid hitbox size %dx%d", w, h))
	}
	e.Hitbox = Rect{X: x, Y: y, W: float64(w), H: float64(h)}
}

// SnapHitboxToBase moves the hitbox back to the entity's base position
func (e *Entity) SnapHitboxToBase() {
	e.Hitbox.X = e.X
	e.Hitbox.Y = e.Y
}
