package model1

import "github.com/gdamore/tcell/v2"

var (
	// ModColor row modified color
	ModColor tcell.Color = tcell.ColorYellow

	// AddColor row added color
	AddColor tcell.Color = tcell.ColorBlue

	// ErrColor row error color
	ErrColor tcell.Color = tcell.ColorRed

	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite
)

// Palette holds the chart slice colors.
var Palette = []tcell.Color{
	tcell.NewHexColor(0x0088fe),
	tcell.NewHexColor(0x00c49f),
	tcell.NewHexColor(0xffbb28),
	tcell.NewHexColor(0xff8042),
	tcell.NewHexColor(0xaf19ff),
	tcell.NewHexColor(0xff4560),
	tcell.NewHexColor(0x775dd0),
}

// PaletteColor returns the palette color for a tally index, wrapping around.
func PaletteColor(idx int) tcell.Color {
	if idx < 0 {
		idx = -idx
	}
	return Palette[idx%len(Palette)]
}

// DefaultColorer set the default table row colors
func DefaultColorer(h Header, re *RowEvent) tcell.Color {
	if !IsValid(h, re.Row) {
		return ErrColor
	}

	switch re.Kind {
	case EventAdd:
		return AddColor
	case EventUpdate:
		return ModColor
	default:
		return StdColor
	}
}

// IsValid returns true if every required column of the row is filled.
func IsValid(h Header, r Row) bool {
	for i, c := range h {
		if !c.Required || i >= len(r.Fields) {
			continue
		}
		if IsBlank(r.Fields[i]) {
			return false
		}
	}
	return true
}
