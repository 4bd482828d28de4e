package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type memClipboard struct {
	contents string
	err      error
}

func (c *memClipboard) Read() (string, error) { return c.contents, c.err }

func (c *memClipboard) Write(s string) error {
	c.contents = s
	return nil
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestField(text string) (*InputField, *[]string) {
	var changes []string
	f := NewInputField(nil, text, nil)
	f.SetPos(0, 0)
	f.SetSize(12, 1)
	f.SetFocused(true)
	f.OnChange = func(s string) { changes = append(changes, s) }
	return f, &changes
}

func TestInputFieldTyping(t *testing.T) {
	f, changes := newTestField("")

	for _, r := range "héllo" {
		f.HandleEvent(typeRune(r))
	}

	if f.Text() != "héllo" {
		t.Errorf("Expected \"héllo\", got %#v", f.Text())
	}
	if len(*changes) != 5 {
		t.Errorf("Expected 5 change notifications, got %v", len(*changes))
	}
}

func TestInputFieldDeleteUnicode(t *testing.T) {
	f, changes := newTestField("aé")

	f.HandleEvent(key(tcell.KeyBackspace2))
	if f.Text() != "a" {
		t.Errorf("Expected \"a\" after backspace, got %#v", f.Text())
	}

	f.HandleEvent(key(tcell.KeyHome))
	f.HandleEvent(key(tcell.KeyDelete))
	if f.Text() != "" {
		t.Errorf("Expected empty text, got %#v", f.Text())
	}
	if last := (*changes)[len(*changes)-1]; last != "" {
		t.Errorf("Expected last change to be empty, got %#v", last)
	}

	// Nothing left to delete; no further notifications
	n := len(*changes)
	f.HandleEvent(key(tcell.KeyBackspace2))
	f.HandleEvent(key(tcell.KeyDelete))
	if len(*changes) != n {
		t.Errorf("Expected no change notifications on empty field")
	}
}

func TestInputFieldInsertAtCursor(t *testing.T) {
	f, _ := newTestField("ac")

	f.HandleEvent(key(tcell.KeyLeft))
	f.HandleEvent(typeRune('b'))

	if f.Text() != "abc" {
		t.Errorf("Expected \"abc\", got %#v", f.Text())
	}
	if f.GetCursorPos() != 2 {
		t.Errorf("Expected cursor at 2, got %v", f.GetCursorPos())
	}
}

func TestInputFieldClipboard(t *testing.T) {
	f, _ := newTestField("x")
	clip := &memClipboard{contents: "pasted\nsecond line"}
	f.Clipboard = clip

	f.HandleEvent(key(tcell.KeyCtrlV))
	if f.Text() != "xpasted" {
		t.Errorf("Expected \"xpasted\", got %#v", f.Text())
	}

	f.HandleEvent(key(tcell.KeyCtrlC))
	if clip.contents != "xpasted" {
		t.Errorf("Expected clipboard to hold \"xpasted\", got %#v", clip.contents)
	}

	clip.err = errors.New("unavailable")
	if f.HandleEvent(key(tcell.KeyCtrlV)) {
		t.Errorf("Expected failed paste to go unhandled")
	}
}

func TestInputFieldIgnoresKeysWhenUnfocused(t *testing.T) {
	f, changes := newTestField("")
	f.SetFocused(false)

	if f.HandleEvent(typeRune('a')) {
		t.Errorf("Expected unfocused field to ignore keys")
	}
	if len(*changes) != 0 {
		t.Errorf("Expected no changes, got %v", *changes)
	}
}

func TestInputFieldDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Fini()
	s.SetSize(20, 2)

	var screen tcell.Screen = s
	f := NewInputField(&screen, "hi", nil)
	f.SetPos(0, 0)
	f.SetSize(6, 1)
	f.Draw(s)

	r, _, _, _ := s.GetContent(1, 0)
	if r != 'h' {
		t.Errorf("Expected 'h' at column 1, got %q", r)
	}
	r, _, _, _ = s.GetContent(5, 0)
	if r != ']' {
		t.Errorf("Expected ']' at column 5, got %q", r)
	}
}
