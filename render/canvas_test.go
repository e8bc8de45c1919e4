package render

import "testing"

func TestClearFills(t *testing.T) {
	c := NewCanvas(7, 5)
	c.Clear(SkyBlue)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if got := c.At(x, y); got != SkyBlue {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, SkyBlue)
			}
		}
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	c := NewCanvas(10, 10)
	backing := &c.Pix[0]

	c.Resize(5, 5)
	if c.Width != 5 || c.Height != 5 || len(c.Pix) != 5*5*4 {
		t.Fatalf("shrink: got %dx%d len %d", c.Width, c.Height, len(c.Pix))
	}
	if &c.Pix[0] != backing {
		t.Error("shrink should not reallocate")
	}

	c.Resize(20, 20)
	if len(c.Pix) != 20*20*4 {
		t.Fatalf("grow: got len %d", len(c.Pix))
	}
}

func TestAtOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Clear(Black)

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative x", -1, 0},
		{"Negative y", 0, -1},
		{"Past width", 2, 0},
		{"Past height", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.At(tt.x, tt.y); got != Transparent {
				t.Errorf("got %v, want transparent", got)
			}
		})
	}
}

func TestOverBlend(t *testing.T) {
	bg := RGBA{100, 100, 100, 255}

	tests := []struct {
		name string
		src  RGBA
		want RGBA
	}{
		{"Transparent source keeps dst", RGBA{255, 0, 0, 0}, bg},
		{"Opaque source replaces dst", RGBA{255, 0, 0, 255}, RGBA{255, 0, 0, 255}},
		{"Half alpha mixes", RGBA{200, 100, 0, 128}, RGBA{150, 100, 50, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bg.Over(tt.src); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverAlphaAccumulates(t *testing.T) {
	// Half-alpha over a transparent destination: outA = 128 + 0
	got := Transparent.Over(RGBA{255, 255, 255, 128})
	if got.A != 128 {
		t.Errorf("alpha: got %d, want 128", got.A)
	}
	// Half over half: 128 + 127*128/255 ~ 192
	layered := got.Over(RGBA{255, 255, 255, 128})
	if layered.A <= got.A {
		t.Errorf("alpha must accumulate: %d then %d", got.A, layered.A)
	}
}
