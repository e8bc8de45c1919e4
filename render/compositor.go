package render

import (
	"github.com/lixenwraith/dino-pet/asset"
	"github.com/lixenwraith/dino-pet/creature"
)

// Compose renders one creature onto the canvas: clear to the background
// color, then layer each part back to front with "over" blending.
//
// Missing parts, variants, or frames skip their layer; a frame with a
// hole in it still renders everything else. The function reads no clock
// and no randomness: identical (model, state) inputs produce
// byte-identical canvases.
func Compose(c *Canvas, background RGBA, model *asset.Model, state *creature.State) {
	c.Clear(background)
	if model == nil || state == nil {
		return
	}

	x, y := state.RenderPosition()
	flip := state.Facing() == creature.FacingLeft
	scale := state.Scale()

	for _, partName := range model.RenderOrder() {
		part, err := model.Part(partName)
		if err != nil {
			continue
		}
		variant, err := part.Variant(state.ActiveVariant(partName))
		if err != nil {
			continue
		}
		frame := variant.Frame(state.FrameIndex(partName))
		if frame == nil {
			continue
		}
		// Flip and scale are computed on read; stored frames stay immutable
		if flip {
			frame = frame.FlipH()
		}
		if scale != 1.0 {
			frame = frame.Scale(scale)
		}
		blit(c, frame, x, y)
	}
}

// blit alpha-composites a frame with its center anchored at (cx, cy).
// Regions outside the canvas are clipped silently.
func blit(c *Canvas, f *asset.Frame, cx, cy float64) {
	dstX := int(cx) - f.Width/2
	dstY := int(cy) - f.Height/2

	srcX0 := max(0, -dstX)
	srcY0 := max(0, -dstY)
	srcX1 := min(f.Width, c.Width-dstX)
	srcY1 := min(f.Height, c.Height-dstY)
	if srcX1 <= srcX0 || srcY1 <= srcY0 {
		return
	}

	for sy := srcY0; sy < srcY1; sy++ {
		row := sy * f.Width * 4
		for sx := srcX0; sx < srcX1; sx++ {
			i := row + sx*4
			src := RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
			if src.A == 0 {
				continue
			}
			x, y := dstX+sx, dstY+sy
			c.set(x, y, c.At(x, y).Over(src))
		}
	}
}
