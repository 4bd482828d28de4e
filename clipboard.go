package main

import (
	"log"

	"github.com/zyedidia/clipboard"
)

type ClipMethod uint8

const (
	ClipExternal ClipMethod = iota
	ClipInternal
)

// A Clipboard reads and writes the system clipboard, or a string held in
// memory when no system clipboard is available. It satisfies ui.Clipboard.
type Clipboard struct {
	Method   ClipMethod
	internal string
}

// NewClipboard tries the system clipboard first and falls back to an internal
// one. The returned error explains why the fallback was chosen; it is not
// fatal because the internal method always works.
func NewClipboard() (*Clipboard, error) {
	if err := clipboard.Initialize(); err != nil {
		return &Clipboard{Method: ClipInternal}, err
	}
	return &Clipboard{Method: ClipExternal}, nil
}

// Read receives the clipboard contents.
func (c *Clipboard) Read() (string, error) {
	if c.Method == ClipExternal {
		contents, err := clipboard.ReadAll("clipboard")
		if err == nil {
			return contents, nil
		}
		log.Printf("Couldn't read system clipboard, using internal: %v\n", err)
	}
	return c.internal, nil
}

// Write sets the clipboard contents. The internal copy is always kept so a
// later failed read can still paste it.
func (c *Clipboard) Write(content string) error {
	c.internal = content
	if c.Method == ClipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	return nil
}
