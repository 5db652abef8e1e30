package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(8)
)

// Cell markers drawn over the pixel colors.
const (
	markStart  = "S "
	markGoal   = "G "
	markPath   = "<>"
	markCursor = "[]"
	markBlank  = "  "
)

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// cellStyle paints a two-character cell with the pixel color and a
// contrasting marker color.
func cellStyle(c pixelgraph.Color) lipgloss.Style {
	fg := lipgloss.Color("#ffffff")
	// ITU-R BT.601 luma
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128*1000 {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
		Foreground(fg).
		Bold(true)
}

// renderGrid draws cells as colored blocks. mark returns the marker for a
// coordinate; nil draws plain blocks.
func renderGrid(cells [][]pixelgraph.Color, mark func(pixelgraph.Coord) string) string {
	var b strings.Builder
	b.WriteString(styleDim.Render("    "))
	for c := range cells[0] {
		b.WriteString(styleDim.Render(fmt.Sprintf("%-2d", c%100)))
	}
	b.WriteString("\n")
	for r, row := range cells {
		b.WriteString(styleDim.Render(fmt.Sprintf("%3d ", r)))
		for c, color := range row {
			m := markBlank
			if mark != nil {
				m = mark(pixelgraph.Coord{Row: r, Col: c})
			}
			b.WriteString(cellStyle(color).Render(m))
		}
		b.WriteString("\n")
	}
	return b.String()
}
