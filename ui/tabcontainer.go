package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A Tab is a child of a TabContainer; has a name and child Component.
type Tab struct {
	Name  string
	Child Component
}

// A TabContainer organizes children by showing only one of them at a time.
type TabContainer struct {
	children []Tab
	selected int

	baseComponent
}

func NewTabContainer(theme *Theme) *TabContainer {
	return &TabContainer{
		children:      make([]Tab, 0, 4),
		baseComponent: baseComponent{theme: theme},
	}
}

func (c *TabContainer) AddTab(name string, child Component) {
	c.children = append(c.children, Tab{Name: name, Child: child})
	// Update new child's size and position
	child.SetPos(c.x+1, c.y+1)
	child.SetSize(c.width-2, c.height-2)
	child.SetTheme(c.theme)
}

// RemoveTab deletes the tab at `idx`. Returns the removed tab and true if the
// tab was found, false otherwise.
func (c *TabContainer) RemoveTab(idx int) (Tab, bool) {
	if idx < 0 || idx >= len(c.children) {
		return Tab{}, false
	}
	removed := c.children[idx]
	if c.selected == idx {
		removed.Child.SetFocused(false)
	}

	copy(c.children[idx:], c.children[idx+1:])  // Shift all items after idx to the left
	c.children = c.children[:len(c.children)-1] // Shrink slice by one

	if c.selected > idx || (c.selected == idx && c.selected >= len(c.children)) {
		c.selected = Max(c.selected-1, 0) // Keep the cursor within the bounds of available tabs
	}
	if len(c.children) > 0 {
		c.layoutSelected()
		c.children[c.selected].Child.SetFocused(c.focused)
	}
	return removed, true
}

// FocusTab sets the visible tab to the one at `idx`. FocusTab clamps `idx`
// between 0 and tab_count - 1. If no tabs are present, the function does nothing.
func (c *TabContainer) FocusTab(idx int) {
	if len(c.children) < 1 {
		return
	}
	idx = Clamp(idx, 0, len(c.children)-1)

	c.children[c.selected].Child.SetFocused(false) // Unfocus old tab
	c.selected = idx
	c.layoutSelected()
	c.children[idx].Child.SetFocused(c.focused) // Focus new tab
}

func (c *TabContainer) GetSelectedTabIdx() int {
	return c.selected
}

func (c *TabContainer) GetTabCount() int {
	return len(c.children)
}

func (c *TabContainer) GetTab(idx int) *Tab {
	return &c.children[idx]
}

// tabLabel is the text drawn for a tab's name in the header.
func tabLabel(tab Tab) string {
	return fmt.Sprintf(" %s ", tab.Name)
}

// tabStartCol returns the column of the first tab label.
func (c *TabContainer) tabStartCol() int {
	combinedTabLength := 0
	for i := range c.children {
		combinedTabLength += runewidth.StringWidth(tabLabel(c.children[i]))
	}
	combinedTabLength += len(c.children) - 1 // add for spacing between tabs
	return c.x + c.width/2 - combinedTabLength/2
}

// Draw draws the outline and tab names, then the selected child.
func (c *TabContainer) Draw(s tcell.Screen) {
	var styFocused tcell.Style
	if c.focused {
		styFocused = c.theme.GetOrDefault("TabContainerFocused")
	} else {
		styFocused = c.theme.GetOrDefault("TabContainer")
	}

	// Draw outline
	DrawRectOutlineDefault(s, c.x, c.y, c.width, c.height, styFocused)

	// Draw tabs
	col := c.tabStartCol()
	for i, tab := range c.children {
		sty := c.theme.GetOrDefault("Tab")
		if c.selected == i {
			sty = c.theme.GetOrDefault("TabSelected")
		}
		col = DrawStr(s, col, c.y, tabLabel(tab), sty) + 1 // Add one for spacing between tabs
	}

	// Draw selected child in center
	if c.selected < len(c.children) {
		c.children[c.selected].Child.Draw(s)
	}
}

// SetFocused calls SetFocused on the visible child Component.
func (c *TabContainer) SetFocused(v bool) {
	c.focused = v
	if len(c.children) > 0 {
		c.children[c.selected].Child.SetFocused(v)
	}
}

// SetTheme sets the theme.
func (c *TabContainer) SetTheme(theme *Theme) {
	c.theme = theme
	for _, tab := range c.children {
		tab.Child.SetTheme(theme) // Update the theme for all children
	}
}

// SetPos sets the position of the container and updates the child Component.
func (c *TabContainer) SetPos(x, y int) {
	c.x, c.y = x, y
	c.layoutSelected()
}

// SetSize sets the size of the container and updates the size of the child Component.
func (c *TabContainer) SetSize(width, height int) {
	c.width, c.height = width, height
	c.layoutSelected()
}

func (c *TabContainer) layoutSelected() {
	if c.selected < len(c.children) {
		child := c.children[c.selected].Child
		child.SetPos(c.x+1, c.y+1)
		child.SetSize(c.width-2, c.height-2)
	}
}

// tabAt returns the index of the tab label under the cell `x`, `y`, or -1.
func (c *TabContainer) tabAt(x, y int) int {
	if y != c.y {
		return -1
	}
	col := c.tabStartCol()
	for i := range c.children {
		w := runewidth.StringWidth(tabLabel(c.children[i]))
		if x >= col && x < col+w {
			return i
		}
		col += w + 1
	}
	return -1
}

// HandleEvent forwards the event to the child Component and returns whether it was handled.
func (c *TabContainer) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlE {
			newIdx := c.selected + 1
			if newIdx >= len(c.children) {
				newIdx = 0
			}
			c.FocusTab(newIdx)
			return true
		} else if ev.Key() == tcell.KeyCtrlW {
			newIdx := c.selected - 1
			if newIdx < 0 {
				newIdx = len(c.children) - 1
			}
			c.FocusTab(newIdx)
			return true
		}
	case *tcell.EventMouse:
		if x, y, ok := mousePress(ev); ok {
			if idx := c.tabAt(x, y); idx >= 0 {
				c.FocusTab(idx)
				return true
			}
		}
	}

	if c.selected < len(c.children) {
		return c.children[c.selected].Child.HandleEvent(event)
	}

	return false
}
