package render

// RGBA is an explicit straight-alpha 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 255}
	SkyBlue     = RGBA{135, 206, 235, 255}
)

// Over composites src over dst with the standard "over" operator on
// straight alpha:
//
//	outRGB = srcRGB*srcA + dstRGB*(1-srcA)
//	outA   = srcA + dstA*(1-srcA)
//
// Integer arithmetic with round-half-up keeps the result bit-stable
// across calls and platforms.
func (dst RGBA) Over(src RGBA) RGBA {
	switch src.A {
	case 0:
		return dst
	case 255:
		return src
	}
	a := uint32(src.A)
	inv := 255 - a
	return RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv + 127) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv + 127) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv + 127) / 255),
		A: uint8(a + (uint32(dst.A)*inv+127)/255),
	}
}
