// Package engine implements the box board: a collection of rectangles the
// user drags, resizes, stacks and magnetically aligns inside a resizable
// container.
//
// The engine is synchronous and not safe for concurrent use. Hosts feed it
// pointer and container notifications in the order they arrive and receive
// the resulting box state through a Listener. It never touches a terminal or
// any other output device.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panelboard/internal/core"
)

var (
	// ErrUnknownBox is returned when an operation names a box that is not live.
	ErrUnknownBox = errors.New("engine: unknown box")
	// ErrInvalidMode is returned when a gesture is started with a mode that
	// is not a move or resize mode.
	ErrInvalidMode = errors.New("engine: invalid interaction mode")
)

// Listener receives the outbound box state.
type Listener interface {
	// BoxUpdated is called once per box whose view changed during an
	// operation, in collection order.
	BoxUpdated(BoxView)
	// BoxClosed is called when a box leaves the collection.
	BoxClosed(BoxID)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Updated func(BoxView)
	Closed  func(BoxID)
}

// BoxUpdated implements Listener.
func (f ListenerFuncs) BoxUpdated(v BoxView) {
	if f.Updated != nil {
		f.Updated(v)
	}
}

// BoxClosed implements Listener.
func (f ListenerFuncs) BoxClosed(id BoxID) {
	if f.Closed != nil {
		f.Closed(id)
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithListener sets the receiver of box updates.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listener = l
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the time source used to stamp resize notifications.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// Engine owns a board and applies inbound events to it.
type Engine struct {
	cfg       Config
	lim       core.Limits
	container Container
	boxes     *Collection
	nextID    BoxID
	session   *Session
	hover     BoxID
	rescale   *rescaler

	listener Listener
	logger   *log.Logger
	clock    func() time.Time
	stats    Stats
}

// New creates an empty board inside container c.
func New(c Container, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		lim:       cfg.limits(),
		container: c,
		boxes:     NewCollection(),
		rescale:   newRescaler(cfg.ResizeDebounce, c.Extent()),
		listener:  ListenerFuncs{},
		logger:    log.New(io.Discard),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Container returns the current container.
func (e *Engine) Container() Container {
	return e.container
}

// SetOrigin moves the container's page position without resizing it.
// Box geometry is container-relative and does not change.
func (e *Engine) SetOrigin(x, y float64) {
	e.container.X = x
	e.container.Y = y
}

// Stats returns the interaction counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Selected returns the id of the selected box, or 0.
func (e *Engine) Selected() BoxID {
	return e.boxes.Selected()
}

// Session returns the open interaction session, if any.
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Len returns the number of live boxes.
func (e *Engine) Len() int {
	return e.boxes.Len()
}

// Box returns the view of a single box.
func (e *Engine) Box(id BoxID) (BoxView, bool) {
	b, ok := e.boxes.Get(id)
	if !ok {
		return BoxView{}, false
	}
	return b.View(e.boxes.Selected()), true
}

// Boxes returns every box in collection order.
func (e *Engine) Boxes() []BoxView {
	return e.views(e.boxes.All())
}

// Stack returns every box ordered bottom to top.
func (e *Engine) Stack() []BoxView {
	return e.views(e.boxes.ByZ())
}

// BoxAt returns the topmost box under the client point (x, y).
func (e *Engine) BoxAt(x, y float64) (BoxView, bool) {
	lx, ly := e.container.Local(x, y)
	b, ok := e.boxes.TopmostAt(lx, ly)
	if !ok {
		return BoxView{}, false
	}
	return b.View(e.boxes.Selected()), true
}

// AddBox creates a box centred in the container at the configured fraction
// of its size and selects it. The size is raised to the minimum first. The
// new box is not snapped to the grid until it is first moved or rescaled.
func (e *Engine) AddBox() BoxView {
	defer e.emit(e.snapshot())

	ext := e.container.Extent()
	r := core.NewRect(0, 0, ext.W*e.cfg.InitialFraction, ext.H*e.cfg.InitialFraction)
	r = core.Contain(r, ext, e.lim)
	r.X = (ext.W - r.W) / 2
	r.Y = (ext.H - r.H) / 2

	e.nextID++
	id := e.nextID
	e.boxes.Add(Box{ID: id, Rect: r})
	e.boxes.Select(id)
	e.boxes.DetectCollisions(id)
	e.stats.Added++

	e.logger.Debug("box added", "box", id, "x", r.X, "y", r.Y, "w", r.W, "h", r.H)
	v, _ := e.Box(id)
	return v
}

// CloseBox removes a box. Any gesture or hover on it ends, and the
// collision partners of the remaining boxes are recomputed.
func (e *Engine) CloseBox(id BoxID) error {
	before := e.snapshot()

	if _, ok := e.boxes.Remove(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBox, id)
	}
	if e.session != nil && e.session.BoxID == id {
		e.session = nil
	}
	if e.hover == id {
		e.hover = 0
	}
	e.boxes.DetectCollisions(0)
	e.stats.Closed++

	e.logger.Debug("box closed", "box", id, "remaining", e.boxes.Len())
	e.listener.BoxClosed(id)
	e.emit(before)
	return nil
}

// SelectBox raises a box to the top of the stack.
func (e *Engine) SelectBox(id BoxID) error {
	defer e.emit(e.snapshot())

	if _, ok := e.boxes.Get(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBox, id)
	}
	e.boxes.Select(id)
	return nil
}

// CycleSelection raises the bottom box and returns its id, 0 when the board
// is empty.
func (e *Engine) CycleSelection() BoxID {
	defer e.emit(e.snapshot())

	id := e.boxes.Lowest()
	if id != 0 {
		e.boxes.Select(id)
	}
	return id
}

// PointerDown opens a gesture on box id. (x, y) is the pointer in client
// coordinates and mode selects move or one of the resize handles. A move
// selects the box immediately; a resize selects it on the first pointer
// movement. An open gesture on another box is abandoned.
func (e *Engine) PointerDown(id BoxID, x, y float64, mode Mode) error {
	if !mode.Active() {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if _, ok := e.boxes.Get(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBox, id)
	}
	defer e.emit(e.snapshot())

	if e.session != nil {
		e.setMode(e.session.BoxID, ModeIdle)
		e.session = nil
	}
	if e.hover != 0 && e.hover != id {
		e.setMode(e.hover, ModeIdle)
	}
	e.hover = 0

	b, _ := e.boxes.Get(id)
	b.Mode = mode
	e.boxes.Replace(b)
	e.session = &Session{
		BoxID:    id,
		Mode:     mode,
		PointerX: x,
		PointerY: y,
		Anchor:   b.Rect,
	}
	if mode == ModeMove {
		e.boxes.Select(id)
	}

	e.logger.Debug("gesture start", "box", id, "mode", mode, "x", x, "y", y)
	return nil
}

// PointerMove routes a pointer movement. With a gesture open it drags or
// resizes the gesture's box; otherwise it tracks which box is hovered.
func (e *Engine) PointerMove(x, y float64) {
	defer e.emit(e.snapshot())

	if e.session == nil {
		e.track(x, y)
		return
	}

	b, ok := e.boxes.Get(e.session.BoxID)
	if !ok {
		e.session = nil
		return
	}
	if e.session.Mode == ModeMove {
		e.drag(b, x, y)
	} else {
		e.resize(b, x, y)
	}
	e.boxes.Select(b.ID)
}

// PointerUp ends the open gesture. The box stays hovered when the pointer is
// still over it.
func (e *Engine) PointerUp(x, y float64) {
	if e.session == nil {
		return
	}
	defer e.emit(e.snapshot())

	s := *e.session
	e.session = nil

	b, ok := e.boxes.Get(s.BoxID)
	if !ok {
		return
	}
	if s.Mode == ModeMove {
		e.stats.Moves++
	} else {
		e.stats.Resizes++
	}
	if b.Partner.Valid() {
		e.stats.Collisions++
	}

	lx, ly := e.container.Local(x, y)
	if b.Rect.Contains(lx, ly) {
		b.Mode = ModeHover
		e.hover = b.ID
	} else {
		b.Mode = ModeIdle
	}
	e.boxes.Replace(b)

	e.logger.Debug("gesture end", "box", b.ID, "mode", s.Mode, "partner", b.Partner.ID)
}

// ContainerResized records a new container size. With a positive debounce
// window the rescale is deferred until SettleResize or FlushResize; otherwise
// it is applied at once.
func (e *Engine) ContainerResized(w, h float64) {
	if e.rescale.notify(core.Extent{W: w, H: h}, e.clock()) {
		e.applyRescale()
	}
}

// SettleResize applies a pending rescale once no notification has arrived
// for the whole debounce window. Reports whether a rescale was applied.
func (e *Engine) SettleResize(now time.Time) bool {
	if !e.rescale.due(now) {
		return false
	}
	return e.applyRescale()
}

// FlushResize applies a pending rescale immediately.
func (e *Engine) FlushResize() bool {
	return e.applyRescale()
}

// drag applies one pointer movement of a move gesture.
func (e *Engine) drag(b Box, x, y float64) {
	ext := e.container.Extent()

	r := moveRect(*e.session, b.Rect, x, y, e.container, e.cfg)
	b.Rect = core.Settle(r, ext, e.lim)
	e.boxes.Replace(b)
	e.boxes.DetectCollisions(b.ID)

	b, _ = e.boxes.Get(b.ID)
	if !b.Partner.Valid() {
		return
	}
	aligned, fired := Align(b.Rect, b.Partner.Rect)
	if !fired {
		return
	}
	aligned = core.Settle(aligned, ext, e.lim)
	if aligned == b.Rect {
		return
	}
	b.Rect = aligned
	e.boxes.Replace(b)
	e.boxes.DetectCollisions(b.ID)
	e.stats.Snaps++
}

// resize applies one pointer movement of a resize gesture.
func (e *Engine) resize(b Box, x, y float64) {
	r := resizeRect(*e.session, b.Rect, x, y, e.container, e.cfg)
	b.Rect = core.Settle(r, e.container.Extent(), e.lim)
	e.boxes.Replace(b)
	e.boxes.DetectCollisions(b.ID)
}

// track moves the hover mark to the topmost box under the pointer.
func (e *Engine) track(x, y float64) {
	var target BoxID
	if b, ok := e.BoxAt(x, y); ok {
		target = b.ID
	}
	if target == e.hover {
		return
	}
	if e.hover != 0 {
		e.setMode(e.hover, ModeIdle)
	}
	if target != 0 {
		e.setMode(target, ModeHover)
	}
	e.hover = target
}

func (e *Engine) applyRescale() bool {
	ext, xr, yr, adopt, ok := e.rescale.take()
	if !ok {
		return false
	}
	defer e.emit(e.snapshot())

	old := e.container.Extent()
	e.container.W, e.container.H = ext.W, ext.H

	for _, b := range e.boxes.All() {
		r := b.Rect
		if !adopt {
			r = scaleRect(r, xr, yr)
		}
		b.Rect = core.Settle(r, ext, e.lim)
		e.boxes.Replace(b)
	}
	if e.session != nil && !adopt {
		e.session.Anchor = scaleRect(e.session.Anchor, xr, yr)
	}
	e.boxes.DetectCollisions(0)
	e.stats.Rescales++

	e.logger.Debug("container rescaled",
		"from", fmt.Sprintf("%gx%g", old.W, old.H),
		"to", fmt.Sprintf("%gx%g", ext.W, ext.H),
		"boxes", e.boxes.Len())
	return true
}

func (e *Engine) setMode(id BoxID, m Mode) {
	if b, ok := e.boxes.Get(id); ok && b.Mode != m {
		b.Mode = m
		e.boxes.Replace(b)
	}
}

func (e *Engine) views(boxes []Box) []BoxView {
	sel := e.boxes.Selected()
	out := make([]BoxView, len(boxes))
	for i, b := range boxes {
		out[i] = b.View(sel)
	}
	return out
}

// snapshot captures every view before an operation so emit can diff.
func (e *Engine) snapshot() map[BoxID]BoxView {
	sel := e.boxes.Selected()
	m := make(map[BoxID]BoxView, e.boxes.Len())
	for _, b := range e.boxes.All() {
		m[b.ID] = b.View(sel)
	}
	return m
}

// emit reports every box whose view differs from before.
func (e *Engine) emit(before map[BoxID]BoxView) {
	sel := e.boxes.Selected()
	for _, b := range e.boxes.All() {
		v := b.View(sel)
		if old, ok := before[b.ID]; ok && old == v {
			continue
		}
		e.listener.BoxUpdated(v)
	}
}
