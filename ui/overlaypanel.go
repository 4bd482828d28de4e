package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/fivemoreminix/qoverlay/ui/overlay"
	"github.com/fivemoreminix/qoverlay/ui/pointer"
)

// Columns reserved on the right of the text field for the background toggle
// and color picker.
const panelSideWidth = 32

// PanelOptions configures an OverlayPanel.
type PanelOptions struct {
	Palette []string
	// Background is the stored color before the user picks one.
	Background string
	Clipboard  Clipboard
	OnUpdate   overlay.UpdateFunc
}

// An OverlayPanel edits one overlay: its text, an optional background color,
// and its position on a Surface. The panel is mounted when it is created and
// must be closed with Close.
type OverlayPanel struct {
	editor *overlay.Editor

	inputField *InputField
	checkbox   *Checkbox
	picker     *ColorPicker
	hexField   *InputField
	surface    *Surface

	tabOrder    []Component
	tabOrderIdx int

	baseComponent
}

func NewOverlayPanel(screen *tcell.Screen, index int, hub *pointer.Hub, theme *Theme, opts PanelOptions) *OverlayPanel {
	p := &OverlayPanel{baseComponent: baseComponent{theme: theme}}

	p.surface = NewSurface(theme)
	p.editor = overlay.NewEditor(index, hub, p.surface.Rect, opts.OnUpdate)

	p.inputField = NewInputField(screen, "", theme)
	p.inputField.Clipboard = opts.Clipboard
	p.inputField.OnChange = p.editor.SetText

	p.checkbox = NewCheckbox("Apply Text Background", theme, p.editor.SetBackgroundEnabled)
	p.picker = NewColorPicker(opts.Palette, theme, p.pickColor)
	p.hexField = NewInputField(screen, "", theme)
	p.hexField.Clipboard = opts.Clipboard
	p.hexField.OnChange = p.typeColor

	p.surface.Position = func() (float64, float64) {
		raw := p.editor.Raw()
		return raw.XPercent, raw.YPercent
	}
	p.surface.Dragging = func() bool { return p.editor.State() == overlay.StateDragging }
	p.surface.OnHandlePress = func() { p.editor.PointerDown() }
	p.surface.OnClick = p.editor.Click

	p.tabOrder = []Component{p.inputField, p.checkbox, p.picker, p.hexField}

	p.editor.Mount()
	if opts.Background != "" {
		p.editor.SetBackgroundColor(opts.Background)
		p.picker.Select(opts.Background)
	}
	p.hexField.SetText(strings.TrimPrefix(p.editor.Raw().BackgroundColor, "#"))
	return p
}

// pickColor applies a swatch and shows its digits in the hex field.
func (p *OverlayPanel) pickColor(hex string) {
	p.editor.SetBackgroundColor(hex)
	p.hexField.SetText(strings.TrimPrefix(hex, "#"))
}

// typeColor applies the hex field's contents once they form a valid color.
// Three-digit shorthand is expanded. Anything else is left in the field
// without changing the background.
func (p *OverlayPanel) typeColor(text string) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(digits) != 3 && len(digits) != 6 {
		return
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return
	}
	hex := strings.ToUpper(c.Hex())
	p.editor.SetBackgroundColor(hex)
	p.picker.Select(hex)
}

// Index returns the overlay index this panel edits.
func (p *OverlayPanel) Index() int {
	return p.editor.Index()
}

// Editor exposes the panel's overlay editor.
func (p *OverlayPanel) Editor() *overlay.Editor {
	return p.editor
}

// Close unmounts the editor, ending any drag in progress.
func (p *OverlayPanel) Close() {
	p.editor.Unmount()
}

func (p *OverlayPanel) backgroundOn() bool {
	return p.editor.Raw().BackgroundEnabled
}

func (p *OverlayPanel) Draw(s tcell.Screen) {
	DrawRect(s, p.x, p.y, p.width, p.height, ' ', p.theme.GetOrDefault("Normal"))

	label := p.theme.GetOrDefault("Label")
	DrawStrClipped(s, p.x, p.y, p.width, fmt.Sprintf("Text Overlay %d", p.Index()), label)
	p.inputField.Draw(s)
	p.checkbox.Draw(s)
	if p.backgroundOn() {
		p.picker.Draw(s)
		DrawStr(s, p.x+p.width-panelSideWidth, p.y+4, "Hex #", label)
		p.hexField.Draw(s)
	}

	DrawStrClipped(s, p.x, p.y+5, p.width, fmt.Sprintf("Text %d Position", p.Index()), label)
	p.surface.Draw(s)
}

func (p *OverlayPanel) SetFocused(v bool) {
	p.focused = v
	p.tabOrder[p.tabOrderIdx].SetFocused(v)
}

func (p *OverlayPanel) SetTheme(theme *Theme) {
	p.theme = theme
	p.inputField.SetTheme(theme)
	p.checkbox.SetTheme(theme)
	p.picker.SetTheme(theme)
	p.hexField.SetTheme(theme)
	p.surface.SetTheme(theme)
}

func (p *OverlayPanel) SetPos(x, y int) {
	p.x, p.y = x, y
	p.layout()
}

func (p *OverlayPanel) GetMinSize() (int, int) {
	return panelSideWidth + 12, 10
}

func (p *OverlayPanel) SetSize(width, height int) {
	minX, minY := p.GetMinSize()
	p.width, p.height = Max(width, minX), Max(height, minY)
	p.layout()
}

func (p *OverlayPanel) layout() {
	side := p.x + p.width - panelSideWidth

	p.inputField.SetPos(p.x, p.y+1)
	p.inputField.SetSize(p.width-panelSideWidth-1, 1)
	p.checkbox.SetPos(side, p.y+1)
	p.picker.SetPos(side, p.y+2)
	p.hexField.SetPos(side+5, p.y+4)
	p.hexField.SetSize(8, 1) // six digits between the brackets

	p.surface.SetPos(p.x, p.y+6)
	p.surface.SetSize(p.width, p.height-6)
}

// backgroundControl reports whether c is only shown while the background is on.
func (p *OverlayPanel) backgroundControl(c Component) bool {
	return c == p.picker || c == p.hexField
}

func (p *OverlayPanel) focus(c Component) {
	for i := range p.tabOrder {
		if p.tabOrder[i] == c {
			p.tabOrder[p.tabOrderIdx].SetFocused(false)
			p.tabOrderIdx = i
			c.SetFocused(p.focused)
			return
		}
	}
}

func (p *OverlayPanel) nextFocus() {
	p.tabOrder[p.tabOrderIdx].SetFocused(false)
	for {
		p.tabOrderIdx++
		if p.tabOrderIdx >= len(p.tabOrder) {
			p.tabOrderIdx = 0
		}
		if !p.backgroundControl(p.tabOrder[p.tabOrderIdx]) || p.backgroundOn() {
			break
		}
	}
	p.tabOrder[p.tabOrderIdx].SetFocused(true)
}

func (p *OverlayPanel) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventMouse:
		for _, c := range p.tabOrder {
			if p.backgroundControl(c) && !p.backgroundOn() {
				continue
			}
			if c.HandleEvent(ev) {
				p.focus(c)
				return true
			}
		}
		return p.surface.HandleEvent(ev)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyTab {
			p.nextFocus()
			return true
		}
	}

	handled := p.tabOrder[p.tabOrderIdx].HandleEvent(event)
	if p.backgroundControl(p.tabOrder[p.tabOrderIdx]) && !p.backgroundOn() {
		p.nextFocus()
	}
	return handled
}
