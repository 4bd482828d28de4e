package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/fivemoreminix/qoverlay/compose"
	"github.com/fivemoreminix/qoverlay/ui"
	"github.com/fivemoreminix/qoverlay/ui/overlay"
	"github.com/fivemoreminix/qoverlay/ui/pointer"
)

type options struct {
	configPath string
	overlays   int
	output     string
	manifest   string
	logFile    string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "qoverlay [base-image]",
	Short: "Position text overlays on an image from the terminal",
	Long: `qoverlay edits one or more text overlays, each with optional background
color and a position chosen by dragging on a surface. The overlays can be
rendered onto the base image as PDF or PNG, and written out as a YAML manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := setupLogging(opts.logFile)
		if err != nil {
			return err
		}
		defer closeLog()

		conf, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("overlays") && opts.overlays > 0 {
			conf.Overlays = opts.overlays
		}
		if opts.output != "" {
			conf.Output = opts.output
		}
		if opts.manifest != "" {
			conf.Manifest = opts.manifest
		}

		var baseImage image.Image
		var baseImagePath string
		if len(args) > 0 {
			baseImagePath = args[0]
			if baseImage, err = compose.LoadImage(baseImagePath); err != nil {
				return err
			}
		}

		comp := compose.New(compose.Options{
			BaseImage:     baseImage,
			BaseImagePath: baseImagePath,
			PageWidth:     conf.PageWidth,
			PageHeight:    conf.PageHeight,
			FontSize:      conf.FontSize,
			TextColor:     conf.TextColor,
		})
		return run(conf, comp)
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qoverlay/config.toml)")
	rootCmd.Flags().IntVar(&opts.overlays, "overlays", 0, "number of overlay tabs to open")
	rootCmd.Flags().StringVar(&opts.output, "out", "", "render output path, .pdf or .png")
	rootCmd.Flags().StringVar(&opts.manifest, "manifest", "", "overlay manifest output path")
	rootCmd.Flags().StringVar(&opts.logFile, "log", "", "write debug logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the log to `path`, or discards it when path is empty.
// The terminal belongs to the UI while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	overlay.SetLogger(log.New(f, "overlay: ", log.LstdFlags))
	return func() { f.Close() }, nil
}

func loadConfig(path string) (*config, error) {
	if path == "" {
		path = configPath()
		if err := initializeConfigIfNot(path); err != nil {
			return nil, err
		}
	}
	return readConfig(path)
}

// renderFiles writes the composition to `output` in the format its extension
// names, then writes the manifest to `manifest` if one is given.
func renderFiles(comp *compose.Composition, output, manifest string) error {
	format, err := compose.FormatFromPath(output)
	if err != nil {
		return err
	}
	if err := writeFile(output, func(w io.Writer) error { return comp.Render(w, format) }); err != nil {
		return err
	}
	if manifest == "" {
		return nil
	}
	return writeFile(manifest, comp.WriteManifest)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func statusText(panel *ui.OverlayPanel) string {
	spec, ok := panel.Editor().Last()
	if !ok {
		return fmt.Sprintf("Overlay %d", panel.Index())
	}
	bg := "none"
	if hex, ok := spec.BackgroundColor(); ok {
		bg = hex
	}
	return fmt.Sprintf("Overlay %d  text=%q  x=%.2f  y=%.2f  bg=%s", spec.Index, spec.Text, spec.X, spec.Y, bg)
}

const helpText = "^N new  ^D close  ^E/^W switch  ^R render  ^Q quit"

type app struct {
	screen tcell.Screen
	theme  ui.Theme
	conf   *config
	comp   *compose.Composition
	clip   *Clipboard

	hub    *pointer.Hub
	router *ui.MouseRouter
	tabs   *ui.TabContainer

	dialog           ui.Component // Shown over the tabs when not nil
	focusedComponent ui.Component
	nextIndex        int
	sizex, sizey     int
}

func (a *app) changeFocus(to ui.Component) {
	if a.focusedComponent != nil {
		a.focusedComponent.SetFocused(false)
	}
	a.focusedComponent = to
	to.SetFocused(true)
}

func (a *app) addOverlay() {
	index := a.nextIndex
	a.nextIndex++
	panel := ui.NewOverlayPanel(&a.screen, index, a.hub, &a.theme, ui.PanelOptions{
		Palette:    a.conf.Palette,
		Background: a.conf.DefaultBackground,
		Clipboard:  a.clip,
		OnUpdate:   a.comp.Update,
	})
	a.tabs.AddTab(fmt.Sprintf("Overlay %d", index), panel)
	a.tabs.FocusTab(a.tabs.GetTabCount() - 1)
	log.Printf("Opened overlay %d\n", index)
}

func (a *app) closeOverlay() {
	if a.tabs.GetTabCount() == 0 {
		return
	}
	tab, ok := a.tabs.RemoveTab(a.tabs.GetSelectedTabIdx())
	if !ok {
		return
	}
	panel := tab.Child.(*ui.OverlayPanel)
	panel.Close()
	a.comp.Remove(panel.Index())
	log.Printf("Closed overlay %d\n", panel.Index())
}

func (a *app) closeDialog() {
	a.dialog = nil
	a.screen.HideCursor()
	a.changeFocus(a.tabs)
}

func (a *app) showMessage(kind ui.MessageDialogKind, message string) {
	a.dialog = ui.NewMessageDialog("", message, kind, nil, &a.theme, func(string) {
		a.closeDialog()
	})
	a.changeFocus(a.dialog)
}

func (a *app) showRenderDialog() {
	a.dialog = NewRenderDialog(&a.screen, &a.theme, a.conf.Output, a.clip, func(path string) {
		a.conf.Output = path
		if err := renderFiles(a.comp, path, a.conf.Manifest); err != nil {
			log.Printf("Render failed: %v\n", err)
			a.showMessage(ui.MessageKindError, err.Error())
			return
		}
		msg := "Rendered " + path
		if a.conf.Manifest != "" {
			msg += " and " + a.conf.Manifest
		}
		log.Println(msg)
		a.showMessage(ui.MessageKindNormal, msg)
	}, a.closeDialog)
	a.changeFocus(a.dialog)
}

func (a *app) layout() {
	// Two rows for the tab border, six for the fields above the surface
	height := ui.Min(a.sizey-1, a.conf.SurfaceHeight+6+2)
	a.tabs.SetPos(0, 0)
	a.tabs.SetSize(a.sizex, height)
}

func (a *app) draw() {
	s := a.screen
	s.Clear()

	ui.DrawRect(s, 0, 0, a.sizex, a.sizey, ' ', a.theme.GetOrDefault("Normal"))
	if a.tabs.GetTabCount() > 0 {
		a.tabs.Draw(s)
	}

	status := helpText
	if a.tabs.GetTabCount() > 0 {
		panel := a.tabs.GetTab(a.tabs.GetSelectedTabIdx()).Child.(*ui.OverlayPanel)
		status = statusText(panel) + "  |  " + helpText
	}
	statusStyle := a.theme.GetOrDefault("StatusBar")
	ui.DrawRect(s, 0, a.sizey-1, a.sizex, 1, ' ', statusStyle)
	ui.DrawStrClipped(s, 0, a.sizey-1, a.sizex, status, statusStyle)

	if a.dialog != nil {
		diagMinX, diagMinY := a.dialog.GetMinSize()
		a.dialog.SetSize(diagMinX, diagMinY)
		a.dialog.SetPos(a.sizex/2-diagMinX/2, a.sizey/2-diagMinY/2) // Center
		a.dialog.Draw(s)
	}

	s.Show()
}

// handleEvent processes one event and returns false when the app should quit.
func (a *app) handleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		a.sizex, a.sizey = a.screen.Size()
		a.layout()
		a.screen.Sync() // Redraw everything
	case *tcell.EventMouse:
		if !a.router.Route(ev) {
			return true
		}
		if a.dialog != nil {
			a.dialog.HandleEvent(ev)
		} else {
			a.tabs.HandleEvent(ev)
		}
	case *tcell.EventKey:
		if a.dialog == nil {
			switch ev.Key() {
			case tcell.KeyCtrlQ:
				return false
			case tcell.KeyCtrlN:
				a.addOverlay()
				return true
			case tcell.KeyCtrlD:
				a.closeOverlay()
				return true
			case tcell.KeyCtrlR:
				a.showRenderDialog()
				return true
			}
		}
		if a.focusedComponent != nil {
			a.focusedComponent.HandleEvent(ev)
		}
	}
	return true
}

func (a *app) closeAll() {
	for a.tabs.GetTabCount() > 0 {
		a.closeOverlay()
	}
}

func newApp(s tcell.Screen, conf *config, comp *compose.Composition, clip *Clipboard) *app {
	hub := pointer.NewHub()
	a := &app{
		screen: s,
		theme:  ui.Theme{},
		conf:   conf,
		comp:   comp,
		clip:   clip,
		hub:    hub,
		router: ui.NewMouseRouter(hub),
	}
	a.tabs = ui.NewTabContainer(&a.theme)
	a.sizex, a.sizey = s.Size()
	a.layout()

	for i := 0; i < conf.Overlays; i++ {
		a.addOverlay()
	}
	a.tabs.FocusTab(0)
	a.changeFocus(a.tabs) // TabContainer is focused by default
	return a
}

func run(conf *config, comp *compose.Composition) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini() // Useful for handling panics
	s.EnableMouse()

	clip, err := NewClipboard()
	if err != nil {
		log.Printf("System clipboard unavailable, using internal: %v\n", err)
	}

	a := newApp(s, conf, comp, clip)
	for {
		a.draw()
		if !a.handleEvent(s.PollEvent()) {
			break
		}
	}
	a.closeAll()
	return nil
}
