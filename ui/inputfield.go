package ui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zyedidia/rope"
)

// A Clipboard is where an InputField copies to and pastes from.
type Clipboard interface {
	Read() (string, error)
	Write(string) error
}

// An InputField is a single-line input box. Its contents live in a rope so
// that edits at the cursor do not copy the whole string.
type InputField struct {
	// OnChange is called after every edit with the new text.
	OnChange  func(string)
	Clipboard Clipboard

	buf       *rope.Node
	cursorPos int // Byte offset into buf
	scrollPos int // Column of the first visible cell
	screen    *tcell.Screen

	baseComponent
}

func NewInputField(screen *tcell.Screen, text string, theme *Theme) *InputField {
	f := &InputField{
		buf:           rope.New([]byte(text)),
		screen:        screen,
		baseComponent: baseComponent{theme: theme},
	}
	f.cursorPos = f.buf.Len()
	return f
}

// Text returns the contents of the field.
func (f *InputField) Text() string {
	return string(f.buf.Value())
}

// SetText replaces the contents and moves the cursor to the end. OnChange is
// not called.
func (f *InputField) SetText(text string) {
	f.buf = rope.New([]byte(text))
	f.cursorPos = f.buf.Len()
	f.scrollPos = 0
}

func (f *InputField) GetCursorPos() int {
	return f.cursorPos
}

// SetCursorPos sets the cursor byte offset. Offset is clamped to possible values
// and snapped back to the start of a rune. The InputField is scrolled to show
// the new cursor position.
func (f *InputField) SetCursorPos(offset int) {
	offset = Clamp(offset, 0, f.buf.Len())
	text := f.buf.Value()
	for offset > 0 && offset < len(text) && !utf8.RuneStart(text[offset]) {
		offset--
	}
	f.cursorPos = offset

	// Scrolling, in columns
	visible := Max(f.width-2, 1)
	col := runewidth.StringWidth(string(text[:offset]))
	if col >= f.scrollPos+visible { // If cursor position is out of view to the right...
		f.scrollPos = col - visible + 1 // Scroll just enough to view that column
	} else if col < f.scrollPos { // If cursor position is out of view to the left...
		f.scrollPos = col
	}

	if f.focused && f.screen != nil {
		(*f.screen).ShowCursor(f.x+1+col-f.scrollPos, f.y)
	}
}

// Insert puts `str` at the cursor and moves the cursor past it.
func (f *InputField) Insert(str string) {
	if len(str) == 0 {
		return
	}
	f.buf.Insert(f.cursorPos, []byte(str))
	f.SetCursorPos(f.cursorPos + len(str))
	f.changed()
}

// Delete removes the rune after the cursor if `forward` is true, or the rune
// before it otherwise.
func (f *InputField) Delete(forward bool) {
	text := f.buf.Value()
	if forward {
		if f.cursorPos >= len(text) {
			return
		}
		_, size := utf8.DecodeRune(text[f.cursorPos:])
		f.buf.Remove(f.cursorPos, f.cursorPos+size)
	} else {
		if f.cursorPos <= 0 {
			return
		}
		_, size := utf8.DecodeLastRune(text[:f.cursorPos])
		f.buf.Remove(f.cursorPos-size, f.cursorPos)
		f.cursorPos -= size
	}
	f.SetCursorPos(f.cursorPos)
	f.changed()
}

func (f *InputField) changed() {
	if f.OnChange != nil {
		f.OnChange(f.Text())
	}
}

func (f *InputField) moveRune(forward bool) {
	text := f.buf.Value()
	if forward {
		if f.cursorPos < len(text) {
			_, size := utf8.DecodeRune(text[f.cursorPos:])
			f.SetCursorPos(f.cursorPos + size)
		}
	} else if f.cursorPos > 0 {
		_, size := utf8.DecodeLastRune(text[:f.cursorPos])
		f.SetCursorPos(f.cursorPos - size)
	}
}

func (f *InputField) Draw(s tcell.Screen) {
	style := f.theme.GetOrDefault("InputField")
	if f.focused {
		style = f.theme.GetOrDefault("InputFieldFocused")
	}

	DrawRect(s, f.x, f.y, f.width, f.height, ' ', style) // Draw background
	s.SetContent(f.x, f.y, '[', nil, style)
	s.SetContent(f.x+f.width-1, f.y, ']', nil, style)

	// Draw the visible columns of the text
	col := 0
	visible := f.width - 2
	for _, r := range f.Text() {
		w := Max(runewidth.RuneWidth(r), 1)
		if col >= f.scrollPos && col+w-f.scrollPos <= visible {
			s.SetContent(f.x+1+col-f.scrollPos, f.y, r, nil, style)
		}
		col += w
	}

	// Update cursor
	f.SetCursorPos(f.cursorPos)
}

func (f *InputField) SetFocused(v bool) {
	f.focused = v
	if v {
		f.SetCursorPos(f.cursorPos)
	} else if f.screen != nil {
		(*f.screen).HideCursor()
	}
}

func (f *InputField) GetMinSize() (int, int) {
	return 3, 1
}

func (f *InputField) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventMouse:
		x, y, ok := mousePress(ev)
		if !ok || !f.contains(x, y) {
			return false
		}
		return true
	case *tcell.EventKey:
		if !f.focused {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			f.moveRune(false)
		case tcell.KeyRight:
			f.moveRune(true)
		case tcell.KeyHome:
			f.SetCursorPos(0)
		case tcell.KeyEnd:
			f.SetCursorPos(f.buf.Len())
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			f.Delete(false)
		case tcell.KeyDelete:
			f.Delete(true)
		case tcell.KeyCtrlV:
			if f.Clipboard == nil {
				return false
			}
			contents, err := f.Clipboard.Read()
			if err != nil {
				return false
			}
			f.Insert(firstLine(contents))
		case tcell.KeyCtrlC:
			if f.Clipboard == nil {
				return false
			}
			_ = f.Clipboard.Write(f.Text())
		case tcell.KeyRune:
			f.Insert(string(ev.Rune()))
		default:
			return false
		}
		return true
	}
	return false
}

// firstLine cuts `s` at its first line break; the field holds a single line.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
