package splitter

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/pointer"
)

func keyed(keys ...string) []pane.Pane {
	out := make([]pane.Pane, len(keys))
	for i, k := range keys {
		out[i] = pane.Pane{Key: k}
	}
	return out
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestNew_InitialSizes(t *testing.T) {
	tests := []struct {
		name  string
		panes []pane.Pane
		opts  Options
		want  []float64
	}{
		{
			name:  "two equal panes",
			panes: keyed("a", "b"),
			want:  []float64{50, 50},
		},
		{
			name: "weighted three panes",
			panes: []pane.Pane{
				{Key: "a", DefaultSize: pane.Float(1)},
				{Key: "b", DefaultSize: pane.Float(2)},
				{Key: "c", DefaultSize: pane.Float(1)},
			},
			want: []float64{25, 50, 25},
		},
		{
			name: "min size on first pane",
			panes: []pane.Pane{
				{Key: "a", MinSize: pane.Float(40), DefaultSize: pane.Float(1)},
				{Key: "b", DefaultSize: pane.Float(2)},
			},
			want: []float64{40, 60},
		},
		{
			name:  "controlled sizes adopted",
			panes: keyed("a", "b"),
			opts:  Options{Sizes: []float64{20, 80}},
			want:  []float64{20, 80},
		},
		{
			name:  "controlled length mismatch ignored",
			panes: keyed("a", "b", "c"),
			opts:  Options{Sizes: []float64{10, 90}},
			want:  []float64{100.0 / 3, 100.0 / 3, 100.0 / 3},
		},
		{
			name:  "splitter-wide min applies to panes without bounds",
			panes: []pane.Pane{{Key: "a", DefaultSize: pane.Float(1)}, {Key: "b", DefaultSize: pane.Float(9)}},
			opts:  Options{ItemMinSize: pane.Float(20)},
			want:  []float64{20, 80},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.panes, tt.opts)
			require.InDeltaSlice(t, tt.want, s.Sizes(), 1e-9)
		})
	}
}

func TestNew_ControlledMismatchLogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(keyed("a", "b", "c"), Options{Sizes: []float64{10, 90}, Logger: logger})

	require.Contains(t, buf.String(), "ignoring controlled sizes")
	require.Contains(t, buf.String(), "splitter="+s.ID())
}

func TestUpdate_MouseDragClampsToMax(t *testing.T) {
	var ends [][]float64
	panes := []pane.Pane{{Key: "a", MaxSize: pane.Float(70)}, {Key: "b"}}
	s := New(panes, Options{OnResizeEnd: func(v []float64) { ends = append(ends, v) }})
	s.SetRect(Rect{Width: 101, Height: 10})

	require.Equal(t, []int{50, 50}, s.Cells())
	require.Equal(t, 0, s.DividerAt(50, 3))

	require.True(t, s.Update(press(50, 3)))
	idx, dragging := s.Dragging()
	require.True(t, dragging)
	require.Equal(t, 0, idx)

	// The pointer leaves the divider entirely; the drag still tracks it.
	require.True(t, s.Update(motion(80, 9)))
	require.InDeltaSlice(t, []float64{70, 30}, s.Sizes(), 1e-9)

	require.True(t, s.Update(release(80, 9)))
	_, dragging = s.Dragging()
	require.False(t, dragging)
	require.Equal(t, [][]float64{{70, 30}}, ends)
	require.Equal(t, 0, s.Window().Len())
}

func TestUpdate_VerticalDrag(t *testing.T) {
	s := New(keyed("top", "bottom"), Options{Direction: pane.Vertical})
	s.SetRect(Rect{X: 0, Y: 2, Width: 40, Height: 21})

	require.Equal(t, 0, s.DividerAt(5, 12))
	require.True(t, s.Update(press(5, 12)))
	s.Update(motion(5, 7))
	require.InDeltaSlice(t, []float64{25, 75}, s.Sizes(), 1e-9)
	s.Update(release(5, 7))
}

func TestUpdate_PressOutsideDividerIgnored(t *testing.T) {
	s := New(keyed("a", "b"), Options{})
	s.SetRect(Rect{Width: 101, Height: 10})

	require.False(t, s.Update(press(10, 3)))
	require.False(t, s.Update(press(50, 30)))
	_, dragging := s.Dragging()
	require.False(t, dragging)
}

func TestUpdate_DisabledDividersIgnoreInput(t *testing.T) {
	s := New(keyed("a", "b"), Options{Disabled: true})
	s.SetRect(Rect{Width: 101, Height: 10})

	s.Update(press(50, 0))
	s.Update(motion(70, 0))
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.InDeltaSlice(t, []float64{50, 50}, s.Sizes(), 1e-9)
}

func TestUpdate_BlurCancelsDrag(t *testing.T) {
	ends := 0
	s := New(keyed("a", "b"), Options{OnResizeEnd: func([]float64) { ends++ }})
	s.SetRect(Rect{Width: 101, Height: 10})

	s.Update(press(50, 0))
	s.Update(tea.BlurMsg{})
	_, dragging := s.Dragging()
	require.False(t, dragging)
	require.Equal(t, 1, ends)
	require.False(t, s.Window().SelectionSuppressed())
}

func TestUpdate_KeyboardStepsFocusedDivider(t *testing.T) {
	s := New(keyed("a", "b", "c"), Options{KeyboardStep: 5})
	require.Equal(t, 0, s.FocusedDivider())

	s.FocusNext()
	require.Equal(t, 1, s.FocusedDivider())
	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyLeft}))
	got := s.Sizes()
	require.InDelta(t, 100.0/3, got[0], 1e-9)
	require.InDelta(t, 100.0/3-5, got[1], 1e-9)
	require.InDelta(t, 100.0/3+5, got[2], 1e-9)

	s.FocusNext()
	require.Equal(t, 0, s.FocusedDivider())
	s.FocusPrev()
	require.Equal(t, 1, s.FocusedDivider())
}

func TestUpdate_ArrowRightDefaultStep(t *testing.T) {
	var resized [][]float64
	s := New(keyed("a", "b"), Options{OnResize: func(v []float64) { resized = append(resized, v) }})
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, [][]float64{{52, 48}}, resized)
}

func TestSetPanes_StructuralChangeResetsAndReleasesDrag(t *testing.T) {
	s := New(keyed("a", "b"), Options{})
	s.SetRect(Rect{Width: 101, Height: 10})
	s.Update(press(50, 0))
	s.Update(motion(60, 0))
	require.InDeltaSlice(t, []float64{60, 40}, s.Sizes(), 1e-9)

	s.SetPanes(keyed("a", "b"), nil)
	require.InDeltaSlice(t, []float64{60, 40}, s.Sizes(), 1e-9)

	s.SetPanes(keyed("a", "b", "c"), nil)
	require.InDeltaSlice(t, []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}, s.Sizes(), 1e-9)
	_, dragging := s.Dragging()
	require.False(t, dragging)
	require.Equal(t, 0, s.Window().Len())

	s.FocusNext()
	s.SetPanes(keyed("a"), nil)
	require.Equal(t, -1, s.FocusedDivider())
}

func TestSharedWindowIsDispatchedByOwner(t *testing.T) {
	hub := pointer.NewHub()
	s := New(keyed("a", "b"), Options{Window: hub})
	s.SetRect(Rect{Width: 101, Height: 10})

	s.Update(press(50, 0))
	require.Equal(t, 3, hub.Len())

	// The splitter does not dispatch motion on a hub it does not own.
	s.Update(motion(70, 0))
	require.InDeltaSlice(t, []float64{50, 50}, s.Sizes(), 1e-9)

	ev, ok := pointer.FromMouse(motion(70, 0))
	require.True(t, ok)
	hub.Dispatch(ev)
	require.InDeltaSlice(t, []float64{70, 30}, s.Sizes(), 1e-9)

	s.Close()
	require.Equal(t, 0, hub.Len())
}

func TestView_Dimensions(t *testing.T) {
	render := func(i int, p pane.Pane, w, h int) string {
		return p.Key
	}

	s := New(keyed("a", "b"), Options{})
	s.SetRect(Rect{Width: 21, Height: 3})
	out := s.View(render)
	require.Equal(t, 21, lipgloss.Width(out))
	require.Equal(t, 3, lipgloss.Height(out))
	require.Contains(t, out, "│")

	v := New(keyed("a", "b"), Options{Direction: pane.Vertical})
	v.SetRect(Rect{Width: 10, Height: 7})
	out = v.View(render)
	require.Equal(t, 10, lipgloss.Width(out))
	require.Equal(t, 7, lipgloss.Height(out))
	require.Contains(t, out, strings.Repeat("─", 10))
}

func TestView_PassesCellSizesToRenderer(t *testing.T) {
	var got [][2]int
	s := New([]pane.Pane{{Key: "a", DefaultSize: pane.Float(1)}, {Key: "b", DefaultSize: pane.Float(3)}}, Options{})
	s.SetRect(Rect{Width: 41, Height: 5})
	s.View(func(i int, p pane.Pane, w, h int) string {
		got = append(got, [2]int{w, h})
		return ""
	})
	require.Equal(t, [][2]int{{10, 5}, {30, 5}}, got)
}

func TestView_EmptyRect(t *testing.T) {
	s := New(keyed("a", "b"), Options{})
	require.Equal(t, "", s.View(nil))
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		avail int
		want  []int
	}{
		{"even", []float64{50, 50}, 10, []int{5, 5}},
		{"remainder to largest fraction", []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}, 10, []int{4, 3, 3}},
		{"uneven", []float64{25, 75}, 7, []int{2, 5}},
		{"no space", []float64{50, 50}, 0, []int{0, 0}},
		{"zero sizes", []float64{0, 0}, 5, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.sizes, tt.avail)
			require.Equal(t, tt.want, got)
		})
	}
}
