package display

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Status is the read-only snapshot the HUD renders each tick.
type Status struct {
	Name    string
	Hunger  int
	Mode    string
	Part    string // currently selected part
	Variant string // that part's active variant
}

const hungerBarWidth = 10

// DrawText writes a string with the given style, clipped to the screen.
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// DrawStatusBar renders the top HUD row: creature name, hunger bar, mode,
// and the selected part/variant pair.
func DrawStatusBar(screen tcell.Screen, y int, st Status) {
	width, _ := screen.Size()
	base := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)

	// Clear the row first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}

	filled := st.Hunger * hungerBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", hungerBarWidth-filled)

	left := fmt.Sprintf(" %s  hunger %3d/100 %s  %s", st.Name, st.Hunger, bar, st.Mode)
	DrawText(screen, 0, y, base.Bold(true), left)

	if st.Part != "" {
		right := fmt.Sprintf("%s: %s ", st.Part, st.Variant)
		DrawText(screen, width-len(right), y, base, right)
	}
}

// DrawHelpBar renders the bottom key help row.
func DrawHelpBar(screen tcell.Screen, y int) {
	width, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	DrawText(screen, 1, y, style, "f feed  p play  tab part  v variant  h hatch  esc quit")
}
