package render

// Camera scrolls the level horizontally once the player leaves the
// middle band of the screen (20% to 80% of its width)
type Camera struct {
	Offset int

	leftBorder  int
	rightBorder int
	maxOffset   int
}

// NewCamera creates a camera for a level levelWidth wide seen through a
// screenWidth wide window
func NewCamera(screenWidth, levelWidth int) *Camera {
	maxOffset := levelWidth - screenWidth
	if maxOffset < 0 {
		maxOffset = 0
	}
	return &Camera{
		leftBorder:  int(0.2 * float64(screenWidth)),
		rightBorder: int(0.8 * float64(screenWidth)),
		maxOffset:   maxOffset,
	}
}

// Follow moves the offset so x stays within the borders
func (c *Camera) Follow(x float64) {
	diff := int(x) - c.Offset
	if diff > c.rightBorder {
		c.Offset += diff - c.rightBorder
	} else if diff < c.leftBorder {
		c.Offset += diff - c.leftBorder
	}

	if c.Offset > c.maxOffset {
		c.Offset = c.maxOffset
	} else if c.Offset < 0 {
		c.Offset = 0
	}
}

// MaxOffset returns the largest possible offset
func (c *Camera) MaxOffset() int {
	return c.maxOffset
}

// Reset scrolls back to the level start
func (c *Camera) Reset() {
	c.Offset = 0
}
