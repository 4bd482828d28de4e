package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type MessageDialogKind uint8

const (
	MessageKindNormal MessageDialogKind = iota
	MessageKindWarning
	MessageKindError
)

// Index of messageDialogKindTitles is any MessageDialogKind.
var messageDialogKindTitles [3]string = [3]string{
	"Message",
	"Warning!",
	"Error!",
}

// A MessageDialog shows a message with one or more buttons. Callback receives
// the text of the button that was chosen.
type MessageDialog struct {
	Title    string
	Kind     MessageDialogKind
	Callback func(string)

	message        string
	messageWrapped string

	buttons     []*Button
	selectedIdx int

	baseComponent
}

func NewMessageDialog(title string, message string, kind MessageDialogKind, options []string, theme *Theme, callback func(string)) *MessageDialog {
	if title == "" {
		title = messageDialogKindTitles[kind] // Use default title
	}

	if len(options) == 0 {
		options = []string{"OK"}
	}

	dialog := &MessageDialog{
		Title:         title,
		Kind:          kind,
		Callback:      callback,
		baseComponent: baseComponent{theme: theme},
	}

	dialog.buttons = make([]*Button, len(options))
	for i := range options {
		text := options[i]
		dialog.buttons[i] = NewButton(text, theme, func() {
			if dialog.Callback != nil {
				dialog.Callback(text)
			}
		})
	}

	// Set the dialog's size to its minimum size
	dialog.SetSize(0, 0)
	dialog.SetMessage(message)

	return dialog
}

func (d *MessageDialog) SetMessage(message string) {
	d.message = message
	d.messageWrapped = runewidth.Wrap(message, d.width-2)
	// Update height:
	_, minHeight := d.GetMinSize()
	d.height = Max(d.height, minHeight)
}

func (d *MessageDialog) Draw(s tcell.Screen) {
	DrawWindow(s, d.x, d.y, d.width, d.height, d.Title, d.theme)

	// DrawStr will handle '\n' characters for us.
	DrawStr(s, d.x+1, d.y+2, d.messageWrapped, d.theme.GetOrDefault("Window"))

	col := d.width // Start from the right side
	for i := range d.buttons {
		width, _ := d.buttons[i].GetSize()
		col -= width + 1 // Move left enough for each button (1 for padding)
		d.buttons[i].SetPos(d.x+col, d.y+d.height-2)
		d.buttons[i].Draw(s)
	}
}

func (d *MessageDialog) SetFocused(v bool) {
	d.focused = v
	d.buttons[d.selectedIdx].SetFocused(v)
}

func (d *MessageDialog) SetTheme(theme *Theme) {
	d.theme = theme
	for i := range d.buttons {
		d.buttons[i].SetTheme(theme)
	}
}

func (d *MessageDialog) GetMinSize() (int, int) {
	lines := strings.Count(d.messageWrapped, "\n") + 1

	return Max(runewidth.StringWidth(d.Title)+2, 40), 2 + lines + 3
}

func (d *MessageDialog) SetSize(width, height int) {
	minWidth, minHeight := d.GetMinSize()
	d.width, d.height = Max(width, minWidth), Max(height, minHeight)
}

func (d *MessageDialog) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyTab, tcell.KeyRight, tcell.KeyLeft:
			d.buttons[d.selectedIdx].SetFocused(false)
			if ev.Key() == tcell.KeyLeft {
				d.selectedIdx = (d.selectedIdx + 1) % len(d.buttons)
			} else {
				d.selectedIdx = (d.selectedIdx + len(d.buttons) - 1) % len(d.buttons)
			}
			d.buttons[d.selectedIdx].SetFocused(d.focused)
			return true
		case tcell.KeyEsc:
			if d.Callback != nil {
				d.Callback("")
			}
			return true
		}
	case *tcell.EventMouse:
		for i := range d.buttons {
			if d.buttons[i].HandleEvent(ev) {
				return true
			}
		}
		return false
	}
	return d.buttons[d.selectedIdx].HandleEvent(event)
}
