package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A Checkbox is a labelled boolean toggle drawn as "[x] Label".
type Checkbox struct {
	Label    string
	Checked  bool
	OnChange func(bool)

	baseComponent
}

func NewCheckbox(label string, theme *Theme, onChange func(bool)) *Checkbox {
	c := &Checkbox{
		Label:         label,
		OnChange:      onChange,
		baseComponent: baseComponent{theme: theme},
	}
	c.SetSize(c.GetMinSize())
	return c
}

// Toggle flips the checkbox and reports the new value.
func (c *Checkbox) Toggle() {
	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
}

func (c *Checkbox) Draw(s tcell.Screen) {
	style := c.theme.GetOrDefault("Checkbox")
	if c.focused {
		style = c.theme.GetOrDefault("CheckboxFocused")
	}
	mark := ' '
	if c.Checked {
		mark = 'x'
	}
	col := DrawStr(s, c.x, c.y, "[", style)
	s.SetContent(col, c.y, mark, nil, style)
	DrawStr(s, col+1, c.y, "] "+c.Label, style)
}

func (c *Checkbox) GetMinSize() (int, int) {
	return runewidth.StringWidth(c.Label) + 4, 1
}

func (c *Checkbox) GetSize() (int, int) {
	return c.GetMinSize()
}

func (c *Checkbox) SetSize(width, height int) {
	c.width, c.height = c.GetMinSize()
}

func (c *Checkbox) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventMouse:
		x, y, ok := mousePress(ev)
		if !ok || !c.contains(x, y) {
			return false
		}
		c.Toggle()
		return true
	case *tcell.EventKey:
		if !c.focused {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			c.Toggle()
			return true
		}
	}
	return false
}
