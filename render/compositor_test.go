package render

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/dino-pet/asset"
	"github.com/lixenwraith/dino-pet/creature"
)

// solidFrame builds a w x h frame filled with one straight-alpha color.
func solidFrame(w, h int, r, g, b, a uint8) *asset.Frame {
	f := asset.NewFrame(w, h)
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
		f.Pix[i+3] = a
	}
	return f
}

func TestComposeDeterministic(t *testing.T) {
	m := asset.NewModel("dino")
	m.AddFrame("body", "", solidFrame(4, 4, 10, 200, 30, 255))
	m.AddFrame("head", "", solidFrame(2, 2, 200, 10, 30, 200))
	s := creature.New(m, 16, 16)

	a := NewCanvas(16, 16)
	b := NewCanvas(16, 16)
	Compose(a, SkyBlue, m, s)
	Compose(b, SkyBlue, m, s)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical inputs must produce byte-identical canvases")
	}
}

func TestComposeTransparentFrameLeavesBackground(t *testing.T) {
	m := asset.NewModel("dino")
	m.AddFrame("body", "", solidFrame(4, 4, 255, 0, 0, 0))
	s := creature.New(m, 8, 8)

	c := NewCanvas(8, 8)
	Compose(c, SkyBlue, m, s)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := c.At(x, y); got != SkyBlue {
				t.Fatalf("pixel (%d,%d): got %v, want background", x, y, got)
			}
		}
	}
}

func TestComposeOpaqueFrameCentered(t *testing.T) {
	m := asset.NewModel("dino")
	m.AddFrame("body", "", solidFrame(4, 4, 255, 0, 0, 255))
	s := creature.New(m, 8, 8) // centered at (4, 4)

	c := NewCanvas(8, 8)
	Compose(c, SkyBlue, m, s)

	red := RGBA{255, 0, 0, 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			got := c.At(x, y)
			if inside && got != red {
				t.Fatalf("pixel (%d,%d): got %v, want frame color", x, y, got)
			}
			if !inside && got != SkyBlue {
				t.Fatalf("pixel (%d,%d): got %v, want background", x, y, got)
			}
		}
	}
}

func TestComposeMissingPartSkips(t *testing.T) {
	m := asset.NewModel("dino")
	m.AddFrame("body", "", solidFrame(4, 4, 0, 255, 0, 255))
	m.AddFrame("legs", "", solidFrame(2, 2, 0, 0, 255, 255))
	s := creature.New(m, 8, 8)

	// A model without a head still renders every other part
	c := NewCanvas(8, 8)
	Compose(c, SkyBlue, m, s)

	if got := c.At(4, 4); got != (RGBA{0, 0, 255, 255}) {
		t.Errorf("center pixel: got %v, want legs layer on top", got)
	}
	if got := c.At(2, 2); got != (RGBA{0, 255, 0, 255}) {
		t.Errorf("body pixel: got %v, want body color", got)
	}
}

func TestComposeLayerOrder(t *testing.T) {
	m := asset.NewModel("dino")
	// tail draws first, head last; head half-alpha must blend over tail
	m.AddFrame("tail", "", solidFrame(4, 4, 255, 0, 0, 255))
	m.AddFrame("head", "", solidFrame(4, 4, 0, 0, 255, 128))
	s := creature.New(m, 8, 8)

	c := NewCanvas(8, 8)
	Compose(c, Black, m, s)

	got := c.At(4, 4)
	if got.B == 0 || got.R == 0 {
		t.Errorf("overlap pixel %v must show both layers through blending", got)
	}
	if got.B <= got.R {
		t.Errorf("later layer should dominate: %v", got)
	}
}

func TestComposeClipsSilently(t *testing.T) {
	m := asset.NewModel("dino")
	// Frame larger than the canvas
	m.AddFrame("body", "", solidFrame(64, 64, 255, 255, 0, 255))
	s := creature.New(m, 8, 8)

	c := NewCanvas(8, 8)
	Compose(c, SkyBlue, m, s)

	yellow := RGBA{255, 255, 0, 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := c.At(x, y); got != yellow {
				t.Fatalf("pixel (%d,%d): got %v, oversized frame should cover the canvas", x, y, got)
			}
		}
	}
}

func TestComposeFlipsWhenFacingLeft(t *testing.T) {
	m := asset.NewModel("dino")
	// 2x1 frame: red on the left, green on the right
	f := asset.NewFrame(2, 1)
	copy(f.Pix, []uint8{255, 0, 0, 255, 0, 255, 0, 255})
	m.AddFrame("body", "", f)

	s := creature.New(m, 40, 40)
	s.MoveTo(0, 20) // leftward target flips facing on the next step
	s.Step(0.001)

	c := NewCanvas(40, 40)
	Compose(c, Black, m, s)

	// Anchor is the frame center: columns int(x)-1 and int(x) hold the
	// frame, mirrored because the creature faces left
	x, y := s.Position()
	left := c.At(int(x)-1, int(y))
	right := c.At(int(x), int(y))
	if left.G != 255 || right.R != 255 {
		t.Errorf("expected mirrored frame, got left=%v right=%v", left, right)
	}
}

func TestComposeNilSafe(t *testing.T) {
	c := NewCanvas(4, 4)
	Compose(c, SkyBlue, nil, nil)
	if got := c.At(0, 0); got != SkyBlue {
		t.Errorf("nil model must still clear: got %v", got)
	}
}
