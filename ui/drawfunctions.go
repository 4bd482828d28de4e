package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawRect renders a filled box at `x` and `y`, of size `width` and `height`.
// Will not call `Show()`.
func DrawRect(s tcell.Screen, x, y, width, height int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		for row := y; row < y+height; row++ {
			s.SetContent(col, row, char, nil, style)
		}
	}
}

// DrawStr will render each character of a string at `x` and `y`. Wide runes
// take two columns. A '\n' moves to the start of the next row. Returns the
// column after the last rune drawn.
func DrawStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	col := x
	for _, r := range str {
		if r == '\n' {
			col = x
			y++
			continue
		}
		s.SetContent(col, y, r, nil, style)
		col += Max(runewidth.RuneWidth(r), 1)
	}
	return col
}

// DrawStrClipped is DrawStr but stops before `maxWidth` columns are used.
func DrawStrClipped(s tcell.Screen, x, y, maxWidth int, str string, style tcell.Style) {
	DrawStr(s, x, y, runewidth.Truncate(str, maxWidth, ""), style)
}

// DrawRectOutline draws only the outline of a rectangle, using `ul`, `ur`, `bl`, and `br`
// for the corner runes, and `hor` and `vert` for the horizontal and vertical runes, respectively.
func DrawRectOutline(s tcell.Screen, x, y, _width, _height int, ul, ur, bl, br, hor, vert rune, style tcell.Style) {
	width := x + _width - 1   // Length across
	height := y + _height - 1 // Length top-to-bottom

	// Horizontals and verticals
	for col := x + 1; col < width; col++ {
		s.SetContent(col, y, hor, nil, style)      // Top line
		s.SetContent(col, height, hor, nil, style) // Bottom line
	}
	for row := y + 1; row < height; row++ {
		s.SetContent(x, row, vert, nil, style)     // Left line
		s.SetContent(width, row, vert, nil, style) // Right line
	}
	// Corners
	s.SetContent(x, y, ul, nil, style)
	s.SetContent(width, y, ur, nil, style)
	s.SetContent(x, height, bl, nil, style)
	s.SetContent(width, height, br, nil, style)
}

// DrawRectOutlineDefault calls DrawRectOutline with the default edge runes.
func DrawRectOutlineDefault(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	DrawRectOutline(s, x, y, width, height, '┌', '┐', '└', '┘', '─', '│', style)
}

// DrawWindow draws a window body with a centered title in its header row.
func DrawWindow(s tcell.Screen, x, y, width, height int, title string, theme *Theme) {
	headerStyle := theme.GetOrDefault("WindowHeader")

	DrawRect(s, x, y, width, 1, ' ', headerStyle)
	DrawStr(s, x+width/2-runewidth.StringWidth(title)/2, y, title, headerStyle)
	DrawRect(s, x, y+1, width, height-1, ' ', theme.GetOrDefault("Window"))
}
