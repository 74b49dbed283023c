// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"
	"time"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sinkLog is a [system.Sink] that records event names.
type sinkLog struct {
	got []string
}

func (s *sinkLog) add(name string) { s.got = append(s.got, name) }

func (s *sinkLog) Resized(size geom.Size)                          { s.add("resized " + size.String()) }
func (s *sinkLog) ScaleChanged(scale geom.Scale)                   { s.add("scale " + scale.String()) }
func (s *sinkLog) Moved(pos geom.Point)                            { s.add("moved " + pos.String()) }
func (s *sinkLog) Exposed(r geom.Rect)                             { s.add("exposed") }
func (s *sinkLog) Focused(focused bool)                            { s.add("focused") }
func (s *sinkLog) Mouse(t events.Types, ev *events.MouseEvent)     { s.add(t.String()) }
func (s *sinkLog) Pointer(t events.Types, ev *events.PointerEvent) { s.add(t.String()) }
func (s *sinkLog) Key(ev *key.Event)                               { s.add("key " + ev.Key.String()) }
func (s *sinkLog) Command(id uint32)                               { s.add("command") }
func (s *sinkLog) Zoomed(delta float64)                            { s.add("zoomed") }
func (s *sinkLog) CloseRequested()                                 { s.add("close requested") }
func (s *sinkLog) Destroyed()                                      { s.add("destroyed") }

func (s *sinkLog) FileDialogDone(tok system.FileDialogToken, save bool, info *system.FileInfo) {
	s.add("dialog")
}

func newWindow(t *testing.T, d *Driver) (*Window, *sinkLog) {
	t.Helper()
	opts := system.DefaultWindowOptions()
	sl := &sinkLog{}
	nw, err := d.NewWindow(&opts, sl)
	require.NoError(t, err)
	return nw.(*Window), sl
}

func TestValidate(t *testing.T) {
	d := New(Options{Unsupported: []string{"Transparent", "Menu", "Resizable"}})
	opts := system.DefaultWindowOptions()
	assert.NoError(t, d.Validate(&opts))

	opts.Transparent = true
	var ce *system.ConfigError
	require.ErrorAs(t, d.Validate(&opts), &ce)
	assert.Equal(t, "Transparent", ce.Option)

	opts = system.DefaultWindowOptions()
	opts.Resizable = false
	require.ErrorAs(t, d.Validate(&opts), &ce)
	assert.Equal(t, "Resizable", ce.Option)
}

func TestEventsInOrder(t *testing.T) {
	d := New(Options{})
	require.NoError(t, d.Init(nil))
	w, sl := newWindow(t, d)
	w.InjectResize(geom.Sz(10, 20))
	w.InjectMove(geom.Pt(1, 2))
	w.InjectKeyPress(key.CodeA, 0)
	w.InjectMouse(events.MouseMove, &events.MouseEvent{})
	w.InjectCloseRequest()

	d.WaitEvents(-1)
	assert.Equal(t, []string{"resized 10x20", "moved (1, 2)", "key a", "key a", "MouseMove", "close requested"}, sl.got)
	assert.Equal(t, geom.Sz(10, 20), w.Size())
	assert.Equal(t, geom.Pt(1, 2), w.Position())
}

func TestCloseDropsLaterEvents(t *testing.T) {
	d := New(Options{})
	w, sl := newWindow(t, d)
	w.InjectFocus(true)
	w.Close()
	w.Close()
	w.InjectZoom(2)
	d.WaitEvents(0)
	assert.Equal(t, []string{"focused", "destroyed"}, sl.got)
	assert.Empty(t, d.Windows())
	assert.True(t, w.IsClosed())
}

func TestWaitEventsTimeout(t *testing.T) {
	d := New(Options{})
	start := time.Now()
	d.WaitEvents(20 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	start = time.Now()
	d.WaitEvents(0)
	assert.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestWakeIsSticky(t *testing.T) {
	d := New(Options{})
	d.Wake()
	d.Wake()
	start := time.Now()
	d.WaitEvents(-1)
	assert.Less(t, time.Since(start), time.Second)

	go func() {
		time.Sleep(10 * time.Millisecond)
		d.Wake()
	}()
	d.WaitEvents(-1)
}

func TestSetSizeReports(t *testing.T) {
	d := New(Options{})
	w, sl := newWindow(t, d)
	w.SetSize(geom.Sz(30, 40))
	w.SetPosition(geom.Pt(5, 6))
	assert.Equal(t, geom.Sz(30, 40), w.Size())
	d.WaitEvents(0)
	assert.Equal(t, []string{"resized 30x40", "moved (5, 6)"}, sl.got)
}

func TestFileDialogCancelled(t *testing.T) {
	d := New(Options{})
	w, sl := newWindow(t, d)
	require.NoError(t, w.OpenFile(system.NextFileDialogToken(), system.FileDialogOptions{}))
	d.WaitEvents(0)
	assert.Equal(t, []string{"dialog"}, sl.got)
}

func TestDriverQueries(t *testing.T) {
	d := New(Options{Scale: geom.UniformScale(2), Locale: "ja_JP"})
	assert.Equal(t, Name, d.Name())
	assert.Equal(t, "ja_JP", d.Locale())
	assert.Equal(t, time.Second/60, d.RefreshInterval())
	ms := d.Screens()
	require.Len(t, ms, 1)
	assert.Equal(t, geom.UniformScale(2), ms[0].Scale)
	assert.InDelta(t, 60, ms[0].RefreshRate, 0.01)
	assert.True(t, d.Clipboard().IsEmpty())

	assert.ErrorIs(t, New(Options{InitErr: assert.AnError}).Init(nil), assert.AnError)
	d.Terminate()
	assert.True(t, d.Terminated())
}

func TestSetScaleOverride(t *testing.T) {
	d := New(Options{Scale: geom.UniformScale(2)})
	w, sl := newWindow(t, d)
	px := w.Size().ToPx(w.Scale())

	d.SetScaleOverride(4)
	assert.Equal(t, geom.UniformScale(4), w.Scale())
	assert.Equal(t, px, w.Size().ToPx(w.Scale()))

	d.SetScaleOverride(0)
	assert.Equal(t, geom.UniformScale(2), w.Scale())
	assert.Equal(t, px, w.Size().ToPx(w.Scale()))

	d.WaitEvents(0)
	assert.Empty(t, sl.got)
}
