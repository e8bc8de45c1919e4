package asset

import (
	"image"

	"golang.org/x/image/draw"
)

// Frame is an immutable straight-alpha RGBA pixel buffer.
// Transform methods return new frames; the backing pixels are shared
// read-only across ticks and must never be written after construction.
type Frame struct {
	Pix    []uint8 // 4 bytes per pixel (R,G,B,A), row-major
	Width  int
	Height int
}

// NewFrame allocates a fully transparent frame of the given size.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// FrameFromImage converts any decoded image to a straight-alpha frame.
func FrameFromImage(src image.Image) *Frame {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Frame{
		Pix:    dst.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// NRGBA returns a zero-copy image view of the frame for interop with
// image processing packages. Callers must not write through it.
func (f *Frame) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// At returns the straight-alpha RGBA bytes of the pixel at (x, y).
// Out-of-bounds coordinates read as fully transparent.
func (f *Frame) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0, 0, 0, 0
	}
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// FlipH returns a copy with the column order reversed.
// Flipping twice restores the original pixel data.
func (f *Frame) FlipH() *Frame {
	out := NewFrame(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		row := y * f.Width * 4
		for x := 0; x < f.Width; x++ {
			src := row + x*4
			dst := row + (f.Width-1-x)*4
			copy(out.Pix[dst:dst+4], f.Pix[src:src+4])
		}
	}
	return out
}

// Scale returns a nearest-neighbor resampled copy. Factor 1.0 or a
// degenerate output size returns the receiver unchanged.
func (f *Frame) Scale(factor float64) *Frame {
	if factor == 1.0 {
		return f
	}
	w := int(float64(f.Width) * factor)
	h := int(float64(f.Height) * factor)
	if w < 1 || h < 1 {
		return f
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := f.NRGBA()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &Frame{Pix: dst.Pix, Width: w, Height: h}
}
