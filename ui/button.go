package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type Button struct {
	Text     string
	Callback func()
	baseComponent
}

func NewButton(text string, theme *Theme, callback func()) *Button {
	b := &Button{
		Text:          text,
		Callback:      callback,
		baseComponent: baseComponent{theme: theme},
	}
	b.SetSize(0, 0)
	return b
}

func (b *Button) Draw(s tcell.Screen) {
	var str string
	if b.focused {
		str = fmt.Sprintf("🭬 %s 🭮", b.Text)
	} else {
		str = fmt.Sprintf("  %s  ", b.Text)
	}
	DrawStr(s, b.x, b.y, str, b.theme.GetOrDefault("Button"))
}

func (b *Button) GetMinSize() (int, int) {
	return runewidth.StringWidth(b.Text) + 4, 1
}

func (b *Button) GetSize() (int, int) {
	return b.GetMinSize()
}

func (b *Button) SetSize(width, height int) {
	b.width, b.height = b.GetMinSize()
}

func (b *Button) press() {
	if b.Callback != nil {
		b.Callback()
	}
}

func (b *Button) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventMouse:
		x, y, ok := mousePress(ev)
		if !ok || !b.contains(x, y) {
			return false
		}
		b.press()
		return true
	case *tcell.EventKey:
		if b.focused && ev.Key() == tcell.KeyEnter {
			b.press()
			return true
		}
	}
	return false
}
