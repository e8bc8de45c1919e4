package render

// Canvas is the compositing target: a straight-alpha RGBA buffer with
// persistent backing storage reused across ticks.
type Canvas struct {
	Pix    []uint8 // 4 bytes per pixel (R,G,B,A), row-major
	Width  int
	Height int
}

// NewCanvas creates a canvas with the specified dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Resize adjusts canvas dimensions, reallocating only if capacity is
// insufficient.
func (c *Canvas) Resize(width, height int) {
	size := width * height * 4
	if cap(c.Pix) < size {
		c.Pix = make([]uint8, size)
	} else {
		c.Pix = c.Pix[:size]
	}
	c.Width = width
	c.Height = height
}

// Clear fills the canvas with a solid color using exponential copy.
func (c *Canvas) Clear(col RGBA) {
	if len(c.Pix) == 0 {
		return
	}
	c.Pix[0] = col.R
	c.Pix[1] = col.G
	c.Pix[2] = col.B
	c.Pix[3] = col.A
	for filled := 4; filled < len(c.Pix); filled *= 2 {
		copy(c.Pix[filled:], c.Pix[:filled])
	}
}

// inBounds returns true if (x, y) is inside the canvas.
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// At returns the pixel at (x, y), transparent when out of bounds.
func (c *Canvas) At(x, y int) RGBA {
	if !c.inBounds(x, y) {
		return Transparent
	}
	i := (y*c.Width + x) * 4
	return RGBA{c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]}
}

// set writes the pixel at (x, y) without bounds checking; callers have
// already clipped.
func (c *Canvas) set(x, y int, col RGBA) {
	i := (y*c.Width + x) * 4
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = col.A
}
