package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/qoverlay/ui"
)

// A RenderDialog asks where to write the rendered composition. The path's
// extension picks the output format.
type RenderDialog struct {
	PathChosenCallback func(string)

	x, y          int
	width, height int
	focused       bool
	screen        *tcell.Screen
	theme         *ui.Theme

	tabOrder    []ui.Component
	tabOrderIdx int

	inputField   *ui.InputField
	acceptButton *ui.Button
	cancelButton *ui.Button
}

func NewRenderDialog(s *tcell.Screen, theme *ui.Theme, path string, clip ui.Clipboard, pathChosenCallback func(string), cancelCallback func()) *RenderDialog {
	dialog := &RenderDialog{
		PathChosenCallback: pathChosenCallback,
		screen:             s,
		theme:              theme,
	}

	dialog.inputField = ui.NewInputField(s, path, theme)
	dialog.inputField.Clipboard = clip
	dialog.acceptButton = ui.NewButton("Render", theme, dialog.onConfirm)
	dialog.cancelButton = ui.NewButton("Cancel", theme, cancelCallback)
	dialog.tabOrder = []ui.Component{dialog.inputField, dialog.cancelButton, dialog.acceptButton}

	return dialog
}

func (d *RenderDialog) onConfirm() {
	if d.PathChosenCallback != nil {
		if path := strings.TrimSpace(d.inputField.Text()); path != "" {
			d.PathChosenCallback(path)
		}
	}
}

func (d *RenderDialog) Draw(s tcell.Screen) {
	ui.DrawWindow(s, d.x, d.y, d.width, d.height, "Render to", d.theme)

	btnWidth, _ := d.acceptButton.GetSize()
	d.acceptButton.SetPos(d.x+d.width-btnWidth-1, d.y+4) // Place "Render" button on right, bottom

	d.inputField.Draw(s)
	d.acceptButton.Draw(s)
	d.cancelButton.Draw(s)
}

func (d *RenderDialog) SetFocused(v bool) {
	d.focused = v
	d.tabOrder[d.tabOrderIdx].SetFocused(v)
}

func (d *RenderDialog) SetTheme(theme *ui.Theme) {
	d.theme = theme
	d.inputField.SetTheme(theme)
	d.acceptButton.SetTheme(theme)
	d.cancelButton.SetTheme(theme)
}

func (d *RenderDialog) GetPos() (int, int) {
	return d.x, d.y
}

func (d *RenderDialog) SetPos(x, y int) {
	d.x, d.y = x, y
	d.inputField.SetPos(d.x+1, d.y+2)
	d.cancelButton.SetPos(d.x+1, d.y+4) // Place "Cancel" button on left, bottom
}

func (d *RenderDialog) GetMinSize() (int, int) {
	return 40, 6
}

func (d *RenderDialog) GetSize() (int, int) {
	return d.width, d.height
}

func (d *RenderDialog) SetSize(width, height int) {
	minX, minY := d.GetMinSize()
	d.width, d.height = ui.Max(width, minX), ui.Max(height, minY)

	d.inputField.SetSize(d.width-2, 1)
	d.cancelButton.SetSize(d.cancelButton.GetMinSize())
	d.acceptButton.SetSize(d.acceptButton.GetMinSize())
}

func (d *RenderDialog) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyTab:
			d.tabOrder[d.tabOrderIdx].SetFocused(false)

			d.tabOrderIdx++
			if d.tabOrderIdx >= len(d.tabOrder) {
				d.tabOrderIdx = 0
			}

			d.tabOrder[d.tabOrderIdx].SetFocused(true)

			return true
		case tcell.KeyEsc:
			if d.cancelButton.Callback != nil {
				d.cancelButton.Callback()
			}
			return true
		case tcell.KeyEnter:
			if d.tabOrder[d.tabOrderIdx] == d.inputField {
				d.onConfirm()
				return true
			}
		}
	case *tcell.EventMouse:
		for _, c := range d.tabOrder {
			if c.HandleEvent(ev) {
				return true
			}
		}
		return false
	}
	return d.tabOrder[d.tabOrderIdx].HandleEvent(event)
}
