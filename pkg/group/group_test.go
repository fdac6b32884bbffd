package group

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/observability"
)

func newGroup(t *testing.T, opts ...Option) *Group {
	t.Helper()
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(opts...)
}

func register(t *testing.T, g *Group, specs ...layout.Spec) {
	t.Helper()
	for _, s := range specs {
		_, err := g.RegisterPanel(s)
		require.NoError(t, err)
	}
}

func pairSpecs() []layout.Spec {
	return []layout.Spec{
		layout.Collapsible("1", 20, layout.WithMaxSize(80)),
		layout.Collapsible("2", 20, layout.WithMaxSize(80)),
	}
}

func TestRegisterPanelResolves(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"), layout.Fixed("b"), layout.Fixed("c"))

	assert.Equal(t, []float64{33.3333, 33.3333, 33.3333}, g.Sizes())

	size, ok := g.Size("b")
	assert.True(t, ok)
	assert.Equal(t, 33.3333, size)
}

func TestRegisterPanelGeneratesID(t *testing.T) {
	g := newGroup(t)

	id, err := g.RegisterPanel(layout.Fixed(""))
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, g.Panels()[0].ID)
}

func TestRegisterPanelAt(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"), layout.Fixed("c"))

	_, err := g.RegisterPanelAt(layout.Fixed("b", layout.WithSize(50)), 1)
	require.NoError(t, err)
	_, err = g.RegisterPanelAt(layout.Fixed("z"), 99)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "z"}, g.Panels().IDs())
}

func TestRegisterPanelRejects(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"))

	_, err := g.RegisterPanel(layout.Fixed("a"))
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicatePanel), "got %v", err)

	_, err = g.RegisterPanel(layout.Spec{ID: "x", Collapsible: true})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidSpec), "got %v", err)

	assert.Equal(t, []string{"a"}, g.Panels().IDs())
}

func TestUnregisterPanel(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"), layout.Fixed("b"), layout.Fixed("c"))

	require.NoError(t, g.UnregisterPanel("b"))
	assert.Equal(t, []string{"a", "c"}, g.Panels().IDs())
	assert.Equal(t, []float64{50, 50}, g.Sizes())

	err := g.UnregisterPanel("b")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownPanel), "got %v", err)
}

func TestSetSpecsIsAtomic(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"))

	err := g.SetSpecs([]layout.Spec{layout.Fixed("x"), layout.Fixed("x")})
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicatePanel), "got %v", err)
	assert.Equal(t, []string{"a"}, g.Panels().IDs())

	require.NoError(t, g.SetSpecs(pairSpecs()))
	assert.Equal(t, []string{"1", "2"}, g.Panels().IDs())
	assert.Len(t, g.Specs(), 2)
}

func TestResizeGesture(t *testing.T) {
	tests := []struct {
		name      string
		direction gesture.Direction
		moves     []gesture.Point
		want      []float64
	}{
		{
			name:      "row",
			direction: gesture.Row,
			moves:     []gesture.Point{{X: 260}, {X: 310}, {X: 300}},
			want:      []float64{60, 40},
		},
		{
			name:      "back to the start",
			direction: gesture.Row,
			moves:     []gesture.Point{{X: 300}, {X: 250}},
			want:      []float64{50, 50},
		},
		{
			name:      "column uses the vertical axis",
			direction: gesture.Column,
			moves:     []gesture.Point{{X: 999, Y: 75}},
			want:      []float64{40, 60},
		},
		{
			name:      "row reverse flips the sign",
			direction: gesture.RowReverse,
			moves:     []gesture.Point{{X: 300}},
			want:      []float64{40, 60},
		},
		{
			name:      "clamped at the bounds",
			direction: gesture.Row,
			moves:     []gesture.Point{{X: 600}},
			want:      []float64{80, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGroup(t,
				WithDirection(tt.direction),
				WithExtent(func() float64 { return 500 }),
			)
			register(t, g, pairSpecs()...)

			r := g.BeginResize("1", gesture.Point{X: 250, Y: 125})
			for _, p := range tt.moves {
				r.Move(p)
			}
			r.End()

			assert.Equal(t, tt.want, g.Sizes())
		})
	}
}

func TestResizeWithCorrection(t *testing.T) {
	g := newGroup(t,
		WithCorrection(gesture.Correction{Zoom: 2, Scale: 1}),
		WithExtent(func() float64 { return 500 }),
	)
	register(t, g, pairSpecs()...)

	r := g.BeginResize("1", gesture.Point{X: 200})
	r.Move(gesture.Point{X: 300}) // 100 raw pixels at zoom 2 is 50 pixels, 10%
	r.End()

	assert.Equal(t, []float64{60, 40}, g.Sizes())
}

func TestResizeIgnoresMovesAfterEnd(t *testing.T) {
	g := newGroup(t, WithExtent(func() float64 { return 500 }))
	register(t, g, pairSpecs()...)

	r := g.BeginResize("1", gesture.Point{X: 0})
	r.Move(gesture.Point{X: 50})
	r.End()
	r.Move(gesture.Point{X: 100})

	assert.Equal(t, []float64{60, 40}, g.Sizes())
}

func TestResizeUnknownPanel(t *testing.T) {
	g := newGroup(t)
	register(t, g, pairSpecs()...)

	r := g.BeginResize("gone", gesture.Point{})
	r.Move(gesture.Point{X: 10})
	r.End()

	assert.Equal(t, []float64{50, 50}, g.Sizes())
}

func TestResizeSurvivesPanelRemoval(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"), layout.Fixed("b"), layout.Fixed("c"))

	r := g.BeginResize("a", gesture.Point{})
	require.NoError(t, g.UnregisterPanel("c"))
	r.Move(gesture.Point{X: 10})
	r.End()

	assert.Equal(t, []float64{50, 50}, g.Sizes())
}

func TestImperativeAPI(t *testing.T) {
	g := newGroup(t)
	register(t, g,
		layout.Collapsible("a", 10, layout.WithSize(30)),
		layout.Collapsible("b", 20, layout.WithSize(40)),
		layout.Fixed("c", layout.WithMinSize(10)),
	)

	g.Collapse("b")
	assert.Equal(t, []float64{30, 0, 70}, g.Layout())

	g.ExpandTo("b", 40)
	assert.Equal(t, []float64{30, 40, 30}, g.Layout())

	require.NoError(t, g.SetLayout([]float64{20, 30, 50}))
	assert.Equal(t, []float64{20, 30, 50}, g.Layout())

	err := g.SetLayout([]float64{20, 30})
	assert.True(t, errors.Is(err, errors.ErrCodeLengthMismatch), "got %v", err)

	g.Collapse("a")
	g.Expand("a")
	size, _ := g.Size("a")
	assert.Positive(t, size)
}

func TestCollapseCallbacks(t *testing.T) {
	g := newGroup(t)
	register(t, g,
		layout.Collapsible("a", 10, layout.WithSize(30)),
		layout.Collapsible("b", 20, layout.WithSize(40)),
		layout.Fixed("c", layout.WithMinSize(10)),
	)

	var events []string
	stopCollapse := g.OnCollapse("b", func() { events = append(events, "collapse") })
	g.OnExpand("b", func() { events = append(events, "expand") })

	start := g.Store().Snapshot()
	g.Store().ApplyDelta("a", 5, start) // b shrinks, stays open
	g.Collapse("b")
	g.Collapse("b")
	g.Expand("b")

	stopCollapse()
	g.Collapse("b")

	assert.Equal(t, []string{"collapse", "expand"}, events)
}

func TestCollapseCallbacksIgnoreRegistration(t *testing.T) {
	g := newGroup(t)
	register(t, g, layout.Fixed("a"))

	calls := 0
	g.OnCollapse("b", func() { calls++ })
	g.OnExpand("b", func() { calls++ })

	register(t, g, layout.Collapsible("b", 10, layout.WithSize(0)))
	require.NoError(t, g.UnregisterPanel("b"))

	assert.Zero(t, calls)
}

func TestOnLayoutChange(t *testing.T) {
	var got [][]float64
	g := newGroup(t, WithOnLayoutChange(func(sizes []float64) { got = append(got, sizes) }))

	register(t, g, pairSpecs()...)
	g.Collapse("2")

	assert.Equal(t, [][]float64{{100}, {50, 50}, {80, 20}}, got)
}

type recordingGestureHooks struct {
	mu     sync.Mutex
	starts []string
	ends   []int
}

func (h *recordingGestureHooks) OnGestureStart(pivot string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, pivot)
}

func (h *recordingGestureHooks) OnGestureEnd(_ string, moves int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ends = append(h.ends, moves)
}

func TestResizeReportsHooks(t *testing.T) {
	hooks := &recordingGestureHooks{}
	observability.SetGestureHooks(hooks)
	t.Cleanup(observability.Reset)

	g := newGroup(t)
	register(t, g, pairSpecs()...)

	r := g.BeginResize("1", gesture.Point{})
	r.Move(gesture.Point{X: 1})
	r.Move(gesture.Point{X: 2})
	r.End()
	r.End()

	assert.Equal(t, []string{"1"}, hooks.starts)
	assert.Equal(t, []int{2}, hooks.ends)
}
