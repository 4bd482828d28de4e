package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// A Theme is a map of string names to styles. Themes can be passed by reference to components
// to set their styles. Some components will depend upon the basic keys, but most components
// may use keys specific to their component. If a theme value cannot be found, then the
// `DefaultTheme` value will be used, instead. An updated list of theme keys can be found on
// the default theme.
type Theme map[string]tcell.Style

func (theme *Theme) GetOrDefault(key string) tcell.Style {
	if theme != nil {
		if val, ok := (*theme)[key]; ok {
			return val
		}
	}

	if val, ok := DefaultTheme[key]; ok {
		return val
	} else {
		panic(fmt.Sprintf("key \"%v\" not present in default theme", key))
	}
}

// DefaultTheme uses only the first 16 colors present in most colored terminals.
var DefaultTheme = Theme{
	"Normal":              tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"Label":               tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	"Button":              tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	"Checkbox":            tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"CheckboxFocused":     tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"ColorPicker":         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"ColorPickerFocused":  tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	"InputField":          tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	"InputFieldFocused":   tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"StatusBar":           tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"Surface":             tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	"SurfaceHandle":       tcell.Style{}.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack),
	"SurfaceHandleActive": tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true),
	"Tab":                 tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"TabContainer":        tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"TabContainerFocused": tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	"TabSelected":         tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"Window":              tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"WindowHeader":        tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
}
