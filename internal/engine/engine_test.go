package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/panelboard/internal/core"
)

type recorder struct {
	updated []BoxView
	closed  []BoxID
}

func (r *recorder) BoxUpdated(v BoxView) { r.updated = append(r.updated, v) }
func (r *recorder) BoxClosed(id BoxID)   { r.closed = append(r.closed, id) }

func (r *recorder) ids() []BoxID {
	out := make([]BoxID, len(r.updated))
	for i, v := range r.updated {
		out[i] = v.ID
	}
	return out
}

func (r *recorder) reset() {
	r.updated = nil
	r.closed = nil
}

func immediateConfig() Config {
	cfg := DefaultConfig()
	cfg.ResizeDebounce = 0
	return cfg
}

// place puts a box at r directly, bypassing the gesture pipeline.
func place(t *testing.T, e *Engine, id BoxID, r core.Rect) {
	t.Helper()
	b, ok := e.boxes.Get(id)
	require.True(t, ok, "box %d missing", id)
	b.Rect = r
	require.True(t, e.boxes.Replace(b))
	e.boxes.DetectCollisions(id)
}

func rectOf(t *testing.T, e *Engine, id BoxID) core.Rect {
	t.Helper()
	v, ok := e.Box(id)
	require.True(t, ok, "box %d missing", id)
	return v.Rect()
}

func TestAddBoxCentered(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())

	v := e.AddBox()

	assert.Equal(t, BoxID(1), v.ID)
	assert.Equal(t, core.NewRect(300, 225, 200, 150), v.Rect())
	assert.True(t, v.Selected)
	assert.Equal(t, 100, v.Z)
	assert.Equal(t, 1, e.Stats().Added)
}

func TestAddBoxTinyContainer(t *testing.T) {
	e := New(Container{W: 100, H: 60}, DefaultConfig())

	v := e.AddBox()

	assert.Equal(t, core.NewRect(25, 5, 50, 50), v.Rect())
}

func TestOverlappingBoxesArePartners(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	a, b := e.AddBox().ID, e.AddBox().ID

	place(t, e, a, core.NewRect(100, 100, 200, 100))
	place(t, e, b, core.NewRect(290, 100, 200, 100))

	va, _ := e.Box(a)
	vb, _ := e.Box(b)
	assert.Equal(t, b, va.Partner.ID)
	assert.Equal(t, a, vb.Partner.ID)
}

func TestDragPastEdgeStaysInside(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(0, 0, 100, 100))

	require.NoError(t, e.PointerDown(id, 50, 50, ModeMove))
	e.PointerMove(0, 50)

	assert.Equal(t, core.NewRect(0, 0, 100, 100), rectOf(t, e, id))
}

func TestDragFollowsPointerOnGrid(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID

	require.NoError(t, e.PointerDown(id, 400, 300, ModeMove))
	e.PointerMove(455, 300)

	assert.Equal(t, core.NewRect(360, 230, 200, 150), rectOf(t, e, id))
}

func TestDragMagneticSnap(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	a, b := e.AddBox().ID, e.AddBox().ID
	place(t, e, a, core.NewRect(100, 100, 100, 100))
	place(t, e, b, core.NewRect(300, 100, 100, 100))

	require.NoError(t, e.PointerDown(b, 350, 150, ModeMove))
	e.PointerMove(290, 150)
	assert.Equal(t, core.NewRect(240, 100, 100, 100), rectOf(t, e, b))
	assert.Zero(t, e.Stats().Snaps)

	// Both magnet branches fire on this offset and push the box diagonally.
	e.PointerMove(230, 150)
	assert.Equal(t, core.NewRect(200, 200, 100, 100), rectOf(t, e, b))
	assert.Equal(t, 1, e.Stats().Snaps)
}

func TestMoveSelectsOnPointerDown(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	a := e.AddBox().ID
	e.AddBox()

	require.NoError(t, e.PointerDown(a, 400, 300, ModeMove))
	assert.Equal(t, a, e.Selected())
}

func TestResizeSelectsOnFirstMove(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	a := e.AddBox().ID
	b := e.AddBox().ID

	require.NoError(t, e.PointerDown(a, 500, 300, ModeResizeE))
	assert.Equal(t, b, e.Selected())

	e.PointerMove(550, 300)
	assert.Equal(t, a, e.Selected())
	assert.Equal(t, core.NewRect(300, 230, 250, 150), rectOf(t, e, a))
}

func TestResizeKeepsFarEdge(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(100, 100, 200, 100))

	require.NoError(t, e.PointerDown(id, 100, 150, ModeResizeW))
	e.PointerMove(53, 150)

	r := rectOf(t, e, id)
	assert.Equal(t, core.NewRect(50, 100, 250, 100), r)
	assert.Equal(t, 300.0, r.Right())
}

func TestPointerDownErrors(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID

	assert.ErrorIs(t, e.PointerDown(99, 0, 0, ModeMove), ErrUnknownBox)
	assert.ErrorIs(t, e.PointerDown(id, 0, 0, ModeHover), ErrInvalidMode)
	assert.ErrorIs(t, e.PointerDown(id, 0, 0, ModeIdle), ErrInvalidMode)

	_, open := e.Session()
	assert.False(t, open)
}

func TestPointerUp(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected Mode
	}{
		{"released over the box", 400, 300, ModeHover},
		{"released elsewhere", 10, 10, ModeIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Container{W: 800, H: 600}, DefaultConfig())
			id := e.AddBox().ID

			require.NoError(t, e.PointerDown(id, 400, 300, ModeMove))
			v, _ := e.Box(id)
			assert.Equal(t, ModeMove, v.Mode)

			e.PointerUp(tt.x, tt.y)

			v, _ = e.Box(id)
			assert.Equal(t, tt.expected, v.Mode)
			_, open := e.Session()
			assert.False(t, open)
			assert.Equal(t, 1, e.Stats().Moves)
		})
	}
}

func TestHoverTracking(t *testing.T) {
	e := New(Container{X: 10, Y: 10, W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID

	e.PointerMove(410, 310)
	v, _ := e.Box(id)
	assert.Equal(t, ModeHover, v.Mode)

	e.PointerMove(15, 15)
	v, _ = e.Box(id)
	assert.Equal(t, ModeIdle, v.Mode)
}

func TestBoxAtUsesClientCoordinates(t *testing.T) {
	e := New(Container{X: 100, Y: 50, W: 800, H: 600}, DefaultConfig())
	id := e.AddBox().ID

	v, ok := e.BoxAt(400, 275)
	require.True(t, ok)
	assert.Equal(t, id, v.ID)

	_, ok = e.BoxAt(300, 275)
	assert.False(t, ok)
}

func TestCloseBox(t *testing.T) {
	rec := &recorder{}
	e := New(Container{W: 800, H: 600}, DefaultConfig(), WithListener(rec))
	a, b := e.AddBox().ID, e.AddBox().ID

	va, _ := e.Box(a)
	require.Equal(t, b, va.Partner.ID)
	require.NoError(t, e.PointerDown(b, 400, 300, ModeMove))

	rec.reset()
	require.NoError(t, e.CloseBox(b))

	assert.Equal(t, []BoxID{b}, rec.closed)
	assert.Equal(t, []BoxID{a}, rec.ids())
	va, _ = e.Box(a)
	assert.False(t, va.Partner.Valid())
	assert.Zero(t, e.Selected())
	_, open := e.Session()
	assert.False(t, open)
	assert.Equal(t, 1, e.Stats().Closed)

	assert.ErrorIs(t, e.CloseBox(b), ErrUnknownBox)
}

func TestListenerEmitsChangedBoxesInOrder(t *testing.T) {
	rec := &recorder{}
	e := New(Container{W: 800, H: 600}, DefaultConfig(), WithListener(rec))

	e.AddBox()
	assert.Equal(t, []BoxID{1}, rec.ids())

	rec.reset()
	e.AddBox()
	assert.Equal(t, []BoxID{1, 2}, rec.ids())

	rec.reset()
	require.NoError(t, e.SelectBox(2))
	assert.Empty(t, rec.updated)
}

func TestCycleSelection(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	assert.Zero(t, e.CycleSelection())

	e.AddBox()
	e.AddBox()
	e.AddBox()

	assert.Equal(t, BoxID(1), e.CycleSelection())
	assert.Equal(t, BoxID(2), e.CycleSelection())
	assert.Equal(t, BoxID(3), e.CycleSelection())

	stack := e.Stack()
	assert.Equal(t, BoxID(3), stack[len(stack)-1].ID)
}

func TestRescaleImmediate(t *testing.T) {
	e := New(Container{W: 800, H: 600}, immediateConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(100, 100, 100, 100))

	e.ContainerResized(1600, 600)

	assert.Equal(t, core.NewRect(200, 100, 200, 100), rectOf(t, e, id))
	assert.Equal(t, Container{W: 1600, H: 600}, e.Container())
	assert.Equal(t, 1, e.Stats().Rescales)
}

func TestRescaleClampsBeforeSnapping(t *testing.T) {
	e := New(Container{W: 800, H: 600}, immediateConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(30, 300, 200, 100))

	// x scales to 18, inside the 20 margin: the clamp pins it to 0. Snapping
	// first would round it to 20 and let it escape the margin.
	e.ContainerResized(480, 600)

	assert.Equal(t, core.NewRect(0, 300, 120, 100), rectOf(t, e, id))
}

func TestRescaleScalesSessionAnchor(t *testing.T) {
	e := New(Container{W: 800, H: 600}, immediateConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(105, 300, 200, 100))
	require.NoError(t, e.PointerDown(id, 150, 350, ModeMove))

	e.ContainerResized(400, 600)

	s, ok := e.Session()
	require.True(t, ok)
	assert.Equal(t, core.NewRect(52.5, 300, 100, 100), s.Anchor)
}

func TestRescaleRatiosCompose(t *testing.T) {
	e := New(Container{W: 800, H: 600}, immediateConfig())
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(100, 100, 100, 100))

	e.ContainerResized(1600, 1200)
	e.ContainerResized(800, 600)

	assert.Equal(t, core.NewRect(100, 100, 100, 100), rectOf(t, e, id))
}

func TestRescaleDebounce(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	e := New(Container{W: 800, H: 600}, DefaultConfig(), WithClock(func() time.Time { return now }))
	id := e.AddBox().ID
	place(t, e, id, core.NewRect(100, 100, 100, 100))

	e.ContainerResized(1000, 600)
	now = t0.Add(50 * time.Millisecond)
	e.ContainerResized(1600, 600)

	assert.Equal(t, core.NewRect(100, 100, 100, 100), rectOf(t, e, id), "applied inside the window")
	assert.False(t, e.SettleResize(t0.Add(100*time.Millisecond)))
	assert.True(t, e.SettleResize(t0.Add(250*time.Millisecond)))
	assert.False(t, e.SettleResize(t0.Add(500*time.Millisecond)))

	assert.Equal(t, core.NewRect(200, 100, 200, 100), rectOf(t, e, id))
	assert.Equal(t, 1, e.Stats().Rescales)
}

func TestFlushResize(t *testing.T) {
	e := New(Container{W: 800, H: 600}, DefaultConfig())
	assert.False(t, e.FlushResize())

	e.ContainerResized(400, 300)
	assert.True(t, e.FlushResize())
	assert.Equal(t, 400.0, e.Container().W)
}

func TestRescaleAdoptsFromEmptyContainer(t *testing.T) {
	e := New(Container{}, immediateConfig())

	e.ContainerResized(800, 600)
	v := e.AddBox()

	assert.Equal(t, Container{W: 800, H: 600}, e.Container())
	assert.Equal(t, core.NewRect(300, 225, 200, 150), v.Rect())
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	cfg := immediateConfig()
	e := New(Container{X: 5, Y: 5, W: 800, H: 600}, cfg)
	rng := rand.New(rand.NewSource(42))
	modes := []Mode{
		ModeMove, ModeResizeN, ModeResizeE, ModeResizeS, ModeResizeW,
		ModeResizeNE, ModeResizeNW, ModeResizeSE, ModeResizeSW,
	}
	pick := func() BoxID {
		boxes := e.Boxes()
		return boxes[rng.Intn(len(boxes))].ID
	}

	for step := 0; step < 3000; step++ {
		switch op := rng.Intn(12); {
		case op == 0 || e.Len() == 0:
			e.AddBox()
		case op == 1 && e.Len() > 1:
			require.NoError(t, e.CloseBox(pick()))
		case op == 2:
			e.ContainerResized(float64(100+rng.Intn(1900)), float64(100+rng.Intn(1100)))
		case op == 3:
			require.NoError(t, e.PointerDown(pick(), rng.Float64()*1000, rng.Float64()*800, modes[rng.Intn(len(modes))]))
		case op == 4:
			e.PointerUp(rng.Float64()*1000, rng.Float64()*800)
		case op == 5:
			e.CycleSelection()
		default:
			e.PointerMove(rng.Float64()*2800-600, rng.Float64()*2000-600)
		}
		checkInvariants(t, e, step)
	}
}

func checkInvariants(t *testing.T, e *Engine, step int) {
	t.Helper()
	const eps = 1e-9
	c := e.Container()
	cfg := e.Config()

	zs := map[int]BoxID{}
	for _, b := range e.boxes.All() {
		r := b.Rect
		if r.X < -eps || r.Y < -eps || r.Right() > c.W+eps || r.Bottom() > c.H+eps {
			t.Fatalf("step %d: box %d %v escapes container %vx%v", step, b.ID, r, c.W, c.H)
		}
		if r.W < cfg.MinWidth-eps || r.H < cfg.MinHeight-eps {
			t.Fatalf("step %d: box %d %v under minimum size", step, b.ID, r)
		}
		if other, dup := zs[b.Z]; dup {
			t.Fatalf("step %d: boxes %d and %d share z %d", step, other, b.ID, b.Z)
		}
		zs[b.Z] = b.ID
	}
	assertSymmetricPartners(t, e.boxes.All())
}
