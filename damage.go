package gfx

// DamageStrategy selects how a DamageTracker reports accumulated
// damage.
type DamageStrategy uint8

const (
	// DamageExactRects reports a set of non-overlapping rectangles
	// covering all damage.
	DamageExactRects DamageStrategy = iota
	// DamageBoundingBox reports a single bounding rectangle.
	DamageBoundingBox
)

// String returns the strategy name.
func (s DamageStrategy) String() string {
	switch s {
	case DamageExactRects:
		return "ExactRects"
	case DamageBoundingBox:
		return "BoundingBox"
	}
	return "Unknown"
}

// DamageHint classifies a frame's damage for fast-path decisions
// before any rectangles are examined.
type DamageHint uint8

const (
	// DamageFull means damage is unknown; assume the whole surface.
	DamageFull DamageHint = iota
	// DamageNone means nothing changed.
	DamageNone
	// DamagePartial means a rectangle list describes the damage.
	DamagePartial
	// DamageScroll means a region moved by a fixed offset.
	DamageScroll
)

// String returns the hint name.
func (h DamageHint) String() string {
	switch h {
	case DamageFull:
		return "Full"
	case DamageNone:
		return "None"
	case DamagePartial:
		return "Partial"
	case DamageScroll:
		return "Scroll"
	}
	return "Unknown"
}

// NeedsCompose reports whether the hint requires any recomposition.
func (h DamageHint) NeedsCompose() bool {
	return h != DamageNone
}

// Tunables for rectangle coalescing. Merging two rects trades overdraw
// (the merged bounding box may cover clean pixels) against per-rect
// compositing cost. Over-reporting damage only costs performance;
// under-reporting would be a correctness bug, so merging always uses
// the bounding box and never drops area.
const (
	// damageMergeBias merges two disjoint rects when their bounding
	// box area is at most this factor times the sum of their areas.
	damageMergeBias = 1.3
	// maxDamageRects caps the tracked rect count; beyond it the
	// tracker collapses to a single bounding box.
	maxDamageRects = 16
)

// DamageTracker accumulates the dirty rectangles of a single frame and
// coalesces them into a compact region. A producer creates the tracker
// (or Resets one) per frame, Adds damage as it draws, and the
// compositor consumes the result once via Finalize.
//
// The finalized region is always a superset of every added rectangle.
// With the DamageExactRects strategy the reported rectangles are
// pairwise non-overlapping, because overlapping rects are merged
// unconditionally on Add.
type DamageTracker struct {
	strategy DamageStrategy
	rects    []Rect
	bounds   Rect
	added    int
	overflow bool
}

// NewDamageTracker creates an empty tracker with the given strategy.
func NewDamageTracker(strategy DamageStrategy) *DamageTracker {
	return &DamageTracker{
		strategy: strategy,
		rects:    make([]Rect, 0, maxDamageRects),
	}
}

// Strategy returns the configured reporting strategy.
func (t *DamageTracker) Strategy() DamageStrategy {
	return t.strategy
}

// IsEmpty reports whether no damage has been added since the last
// Reset.
func (t *DamageTracker) IsEmpty() bool {
	return t.bounds.IsEmpty()
}

// Bounds returns the bounding box of all added damage.
func (t *DamageTracker) Bounds() Rect {
	return t.bounds
}

// Add merges a dirty rectangle into the tracked region. Empty
// rectangles are ignored. A rect that overlaps existing damage is
// merged into it unconditionally; disjoint rects are merged when the
// combined bounding box wastes little area (damageMergeBias), and kept
// separate otherwise.
func (t *DamageTracker) Add(r Rect) {
	if r.IsEmpty() {
		return
	}
	t.added++
	t.bounds = t.bounds.Union(r)

	if t.strategy == DamageBoundingBox || t.overflow {
		return
	}

	// Merge r with every tracked rect it overlaps or cheaply absorbs,
	// repeating until the grown rect stops touching anything: a merge
	// can bring r into range of rects it was previously disjoint from.
	for {
		merged := false
		for i := 0; i < len(t.rects); i++ {
			other := t.rects[i]
			if !r.Intersects(other) && !shouldMerge(r, other) {
				continue
			}
			r = r.Union(other)
			t.rects[i] = t.rects[len(t.rects)-1]
			t.rects = t.rects[:len(t.rects)-1]
			merged = true
			i--
		}
		if !merged {
			break
		}
	}

	if len(t.rects) >= maxDamageRects {
		// Too fragmented; fall back to the bounding box for the rest
		// of the frame.
		t.overflow = true
		t.rects = t.rects[:0]
		return
	}
	t.rects = append(t.rects, r)
}

// shouldMerge reports whether two disjoint rects are cheaper to
// composite as one: the union bounding box must not be significantly
// larger than the rects it replaces.
func shouldMerge(a, b Rect) bool {
	u := a.Union(b)
	return float64(u.Area()) <= damageMergeBias*float64(a.Area()+b.Area())
}

// Finalize returns the coalesced damage for compositing. With
// DamageExactRects it returns the merged non-overlapping rect set;
// with DamageBoundingBox (or after rect-count overflow) it returns the
// single bounding rect. An empty tracker returns nil. The returned
// slice aliases tracker state and is valid until the next Add or
// Reset.
func (t *DamageTracker) Finalize() []Rect {
	if t.IsEmpty() {
		return nil
	}
	var out []Rect
	if t.strategy == DamageBoundingBox || t.overflow {
		out = []Rect{t.bounds}
	} else {
		out = t.rects
	}
	Logger().Debug("damage coalesced",
		"strategy", t.strategy.String(),
		"added", t.added,
		"rects", len(out),
		"bounds_w", t.bounds.Width,
		"bounds_h", t.bounds.Height)
	return out
}

// Reset clears the tracker for the next frame, keeping the backing
// storage.
func (t *DamageTracker) Reset() {
	t.rects = t.rects[:0]
	t.bounds = Rect{}
	t.added = 0
	t.overflow = false
}
