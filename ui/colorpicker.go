package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultPalette is the swatch set shown when no palette is configured.
var DefaultPalette = []string{
	"#FF6900", "#FCB900", "#7BDCB5", "#00D084", "#8ED1FC",
	"#0693E3", "#ABB8C3", "#EB144C", "#F78DA7", "#9900EF",
}

// Each swatch is two cells of color followed by one cell of spacing.
const swatchWidth = 3

// A ColorPicker is a row of color swatches. Picking one reports its
// "#RRGGBB" string through OnChange. The colors are not validated here.
type ColorPicker struct {
	Palette  []string
	OnChange func(string)

	selected int
	picked   string

	baseComponent
}

func NewColorPicker(palette []string, theme *Theme, onChange func(string)) *ColorPicker {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	p := &ColorPicker{
		Palette:       palette,
		OnChange:      onChange,
		baseComponent: baseComponent{theme: theme},
	}
	p.SetSize(p.GetMinSize())
	return p
}

// Picked returns the last color chosen, or "" if none was.
func (p *ColorPicker) Picked() string {
	return p.picked
}

// Select moves the highlight to the swatch matching `hex`, case-insensitively.
// A color outside the palette is remembered without a highlight change. It
// does not call OnChange.
func (p *ColorPicker) Select(hex string) {
	for i := range p.Palette {
		if strings.EqualFold(p.Palette[i], hex) {
			p.selected = i
			p.picked = p.Palette[i]
			return
		}
	}
	p.picked = hex
}

// Pick chooses the swatch at `idx` and reports it.
func (p *ColorPicker) Pick(idx int) {
	if idx < 0 || idx >= len(p.Palette) {
		return
	}
	p.selected = idx
	p.picked = p.Palette[idx]
	if p.OnChange != nil {
		p.OnChange(p.picked)
	}
}

func (p *ColorPicker) Draw(s tcell.Screen) {
	style := p.theme.GetOrDefault("ColorPicker")
	if p.focused {
		style = p.theme.GetOrDefault("ColorPickerFocused")
	}

	for i, hex := range p.Palette {
		col := p.x + i*swatchWidth
		swatch := tcell.Style{}.Background(tcell.GetColor(hex))
		s.SetContent(col, p.y, ' ', nil, swatch)
		s.SetContent(col+1, p.y, ' ', nil, swatch)

		marker := ' '
		if i == p.selected {
			marker = '▲'
		}
		s.SetContent(col, p.y+1, marker, nil, style)
		if strings.EqualFold(hex, p.picked) {
			s.SetContent(col+1, p.y+1, '✓', nil, style)
		} else {
			s.SetContent(col+1, p.y+1, ' ', nil, style)
		}
	}
}

func (p *ColorPicker) GetMinSize() (int, int) {
	return len(p.Palette) * swatchWidth, 2
}

func (p *ColorPicker) GetSize() (int, int) {
	return p.GetMinSize()
}

func (p *ColorPicker) SetSize(width, height int) {
	p.width, p.height = p.GetMinSize()
}

func (p *ColorPicker) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventMouse:
		x, y, ok := mousePress(ev)
		if !ok || !p.contains(x, y) {
			return false
		}
		if (x-p.x)%swatchWidth < 2 {
			p.Pick((x - p.x) / swatchWidth)
		}
		return true
	case *tcell.EventKey:
		if !p.focused {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			p.selected = Max(p.selected-1, 0)
		case tcell.KeyRight:
			p.selected = Min(p.selected+1, len(p.Palette)-1)
		case tcell.KeyEnter:
			p.Pick(p.selected)
		case tcell.KeyRune:
			if ev.Rune() != ' ' {
				return false
			}
			p.Pick(p.selected)
		default:
			return false
		}
		return true
	}
	return false
}
