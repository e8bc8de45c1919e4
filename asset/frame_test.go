package asset

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// testFrame builds a frame where every pixel encodes its coordinates,
// making misplaced pixels easy to spot.
func testFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			f.Pix[i] = uint8(x)
			f.Pix[i+1] = uint8(y)
			f.Pix[i+2] = uint8(x + y)
			f.Pix[i+3] = 255
		}
	}
	return f
}

func TestFlipHReversesColumns(t *testing.T) {
	f := testFrame(4, 2)
	flipped := f.FlipH()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, _, _, _ := flipped.At(x, y)
			wantR, _, _, _ := f.At(f.Width-1-x, y)
			if r != wantR {
				t.Errorf("pixel (%d,%d): got R=%d, want %d", x, y, r, wantR)
			}
		}
	}
}

func TestFlipHInvolutive(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"Even width", 4, 3},
		{"Odd width", 5, 3},
		{"Single column", 1, 7},
		{"Single pixel", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFrame(tt.w, tt.h)
			twice := f.FlipH().FlipH()
			if !bytes.Equal(twice.Pix, f.Pix) {
				t.Errorf("flipping twice did not restore the original buffer")
			}
		})
	}
}

func TestFlipHDoesNotMutate(t *testing.T) {
	f := testFrame(3, 3)
	before := append([]uint8(nil), f.Pix...)
	f.FlipH()
	if !bytes.Equal(f.Pix, before) {
		t.Fatal("FlipH mutated the source frame")
	}
}

func TestScaleNearestNeighbor(t *testing.T) {
	// 2x1 frame: red pixel, green pixel
	f := NewFrame(2, 1)
	copy(f.Pix, []uint8{255, 0, 0, 255, 0, 255, 0, 255})

	doubled := f.Scale(2.0)
	if doubled.Width != 4 || doubled.Height != 2 {
		t.Fatalf("expected 4x2, got %dx%d", doubled.Width, doubled.Height)
	}
	// Left half stays red, right half green, no interpolated colors
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			r, g, _, _ := doubled.At(x, y)
			if x < 2 && (r != 255 || g != 0) {
				t.Errorf("pixel (%d,%d): expected red, got r=%d g=%d", x, y, r, g)
			}
			if x >= 2 && (r != 0 || g != 255) {
				t.Errorf("pixel (%d,%d): expected green, got r=%d g=%d", x, y, r, g)
			}
		}
	}
}

func TestScaleIdentity(t *testing.T) {
	f := testFrame(3, 3)
	if f.Scale(1.0) != f {
		t.Error("Scale(1.0) should return the receiver")
	}
	if f.Scale(0.01) != f {
		t.Error("degenerate output size should return the receiver")
	}
}

func TestFrameFromImagePreservesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0})

	f := FrameFromImage(src)
	r, g, b, a := f.At(0, 0)
	if r != 200 || g != 100 || b != 50 || a != 128 {
		t.Errorf("got (%d,%d,%d,%d), want (200,100,50,128)", r, g, b, a)
	}
	if _, _, _, a := f.At(1, 0); a != 0 {
		t.Errorf("transparent pixel lost its alpha: %d", a)
	}
}
