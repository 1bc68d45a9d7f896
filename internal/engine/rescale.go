package engine

import (
	"time"

	"github.com/vovakirdan/panelboard/internal/core"
)

// rescaler debounces container resize notifications.
//
// observed is the extent as of the last applied rescale. Ratios are always
// taken against it, so a burst of notifications inside the window applies
// once with the composed ratio.
type rescaler struct {
	window     time.Duration
	observed   core.Extent
	pending    core.Extent
	hasPending bool
	lastNotify time.Time
}

func newRescaler(window time.Duration, initial core.Extent) *rescaler {
	return &rescaler{window: window, observed: initial}
}

// notify records a new extent. It reports whether the change should be
// applied right away, which is the case when debouncing is disabled.
func (r *rescaler) notify(ext core.Extent, now time.Time) bool {
	r.pending = ext
	r.hasPending = true
	r.lastNotify = now
	return r.window <= 0
}

// due reports whether a pending extent has been quiet for the whole window.
func (r *rescaler) due(now time.Time) bool {
	return r.hasPending && now.Sub(r.lastNotify) >= r.window
}

// take consumes the pending extent and returns the ratios to apply. ok is
// false when nothing is pending. adopt is true when the previous extent was
// degenerate and the new one should simply be adopted without scaling.
func (r *rescaler) take() (ext core.Extent, xRatio, yRatio float64, adopt, ok bool) {
	if !r.hasPending {
		return core.Extent{}, 0, 0, false, false
	}
	ext = r.pending
	old := r.observed
	r.observed = ext
	r.hasPending = false

	if old.W <= 0 || old.H <= 0 {
		return ext, 1, 1, true, true
	}
	return ext, ext.W / old.W, ext.H / old.H, false, true
}

// scaleRect applies rescale ratios to a box. The result is not snapped: it
// goes through Settle, which clamps before it rounds to the grid.
func scaleRect(r core.Rect, xRatio, yRatio float64) core.Rect {
	return r.Scale(xRatio, yRatio)
}
