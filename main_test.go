package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivemoreminix/qoverlay/compose"
	"github.com/fivemoreminix/qoverlay/ui"
	"github.com/fivemoreminix/qoverlay/ui/overlay"
)

func newTestApp(t *testing.T, overlays int) *app {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)

	conf := defaultConfig()
	conf.Overlays = overlays
	conf.Output = filepath.Join(t.TempDir(), "out.pdf")
	conf.Manifest = filepath.Join(t.TempDir(), "out.yaml")
	comp := compose.New(compose.Options{PageWidth: 100, PageHeight: 50})
	return newApp(s, &conf, comp, &Clipboard{Method: ClipInternal})
}

func ctrlKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestAppOpensConfiguredOverlays(t *testing.T) {
	a := newTestApp(t, 2)

	assert.Equal(t, 2, a.tabs.GetTabCount())
	specs := a.comp.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, overlay.Spec{Index: 0, Text: " "}, specs[0])
	assert.Equal(t, overlay.Spec{Index: 1, Text: " "}, specs[1])
}

func TestAppNewAndCloseTabs(t *testing.T) {
	a := newTestApp(t, 1)

	assert.True(t, a.handleEvent(ctrlKey(tcell.KeyCtrlN)))
	assert.Equal(t, 2, a.tabs.GetTabCount())
	assert.Equal(t, 1, a.tabs.GetSelectedTabIdx())

	assert.True(t, a.handleEvent(ctrlKey(tcell.KeyCtrlD)))
	assert.Equal(t, 1, a.tabs.GetTabCount())
	_, ok := a.comp.Get(1)
	assert.False(t, ok, "closed overlay leaves the composition")

	a.closeAll()
	assert.Equal(t, 0, a.tabs.GetTabCount())
	assert.Empty(t, a.comp.Specs())
	assert.Equal(t, 0, a.hub.Count())
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, 1)
	assert.False(t, a.handleEvent(ctrlKey(tcell.KeyCtrlQ)))
}

func TestAppDragUpdatesComposition(t *testing.T) {
	a := newTestApp(t, 1)
	a.draw()

	// The panel sits inside the tab border at (1, 1); its surface starts six
	// rows lower, and the handle starts in the first inner cell.
	a.handleEvent(mouse(2, 8, tcell.Button1))
	assert.Equal(t, 1, a.hub.Count())
	a.handleEvent(mouse(200, 10, tcell.Button1))
	a.handleEvent(mouse(200, 10, tcell.ButtonNone))
	assert.Equal(t, 0, a.hub.Count())

	spec, ok := a.comp.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1.0, spec.X)
	assert.InDelta(t, 0.4, spec.Y, 1e-9)
}

func TestAppCloseDuringDragReleasesListeners(t *testing.T) {
	a := newTestApp(t, 1)

	a.handleEvent(mouse(2, 8, tcell.Button1))
	require.Equal(t, 1, a.hub.Count())

	a.handleEvent(ctrlKey(tcell.KeyCtrlD))
	assert.Equal(t, 0, a.hub.Count())
	a.handleEvent(mouse(30, 10, tcell.Button1))
	a.handleEvent(mouse(30, 10, tcell.ButtonNone))
	assert.Empty(t, a.comp.Specs())
}

func TestAppRenderDialog(t *testing.T) {
	a := newTestApp(t, 1)
	out := a.conf.Output

	a.handleEvent(ctrlKey(tcell.KeyCtrlR))
	require.IsType(t, &RenderDialog{}, a.dialog)
	a.draw()

	// Ctrl+N is not a shortcut while a dialog is open
	a.handleEvent(ctrlKey(tcell.KeyCtrlN))
	assert.Equal(t, 1, a.tabs.GetTabCount())

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.IsType(t, &ui.MessageDialog{}, a.dialog)
	assert.Equal(t, ui.MessageKindNormal, a.dialog.(*ui.MessageDialog).Kind)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	_, err = os.Stat(a.conf.Manifest)
	assert.NoError(t, err)

	a.handleEvent(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	assert.Nil(t, a.dialog)
}

func TestAppRenderDialogCancel(t *testing.T) {
	a := newTestApp(t, 1)

	a.handleEvent(ctrlKey(tcell.KeyCtrlR))
	a.handleEvent(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	assert.Nil(t, a.dialog)
	_, err := os.Stat(a.conf.Output)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderFilesRejectsUnknownFormat(t *testing.T) {
	comp := compose.New(compose.Options{})
	err := renderFiles(comp, filepath.Join(t.TempDir(), "out.svg"), "")
	assert.Error(t, err)
}

func TestRenderFilesWritesManifest(t *testing.T) {
	dir := t.TempDir()
	comp := compose.New(compose.Options{PageWidth: 40, PageHeight: 20})
	comp.Update(overlay.Spec{Index: 0, Text: "hi", X: 0.5, Y: 0.5, Background: "FF6900", HasBackground: true})

	manifest := filepath.Join(dir, "m.yaml")
	require.NoError(t, renderFiles(comp, filepath.Join(dir, "out.png"), manifest))

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Len(t, got["overlays"], 1)
}

func TestStatusText(t *testing.T) {
	a := newTestApp(t, 1)
	panel := a.tabs.GetTab(0).Child.(*ui.OverlayPanel)

	assert.Equal(t, `Overlay 0  text=" "  x=0.00  y=0.00  bg=none`, statusText(panel))

	panel.Editor().SetText("Hi")
	panel.Editor().SetBackgroundEnabled(true)
	assert.Equal(t, `Overlay 0  text="Hi"  x=0.00  y=0.00  bg=FFFFFF`, statusText(panel))
}
