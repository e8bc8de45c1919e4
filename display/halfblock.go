package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dino-pet/render"
)

// halfBlock shows the cell's foreground color in the upper half and the
// background color in the lower half, giving two vertical pixels per cell.
const halfBlock = '▀'

// DrawCanvas writes the composited RGBA canvas to the screen starting at
// (originX, originY). Each terminal cell covers a 1x2 pixel column pair.
// Alpha is already resolved by the compositor; only RGB reaches the
// terminal.
func DrawCanvas(screen tcell.Screen, c *render.Canvas, originX, originY int) {
	rows := c.Height / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < c.Width; col++ {
			top := c.At(col, row*2)
			bottom := c.At(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(originX+col, originY+row, halfBlock, nil, style)
		}
	}
}

// CanvasSize returns the pixel dimensions backing a terminal area of
// cols x rows cells under half-block rendering.
func CanvasSize(cols, rows int) (width, height int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows * 2
}
