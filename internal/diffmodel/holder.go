package diffmodel

// Holder owns the reference to the current diff model, not the model
// itself. Set replaces the reference unconditionally (including with nil
// or with the value already held) and notifies subscribers synchronously,
// in subscription order, exactly once per replacement.
type Holder struct {
	model     *Model
	listeners []*listener
	nextID    int
}

type listener struct {
	fn      func(*Model)
	removed bool
}

func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the held model, which may be nil.
func (h *Holder) Get() *Model {
	return h.model
}

// Set replaces the held model and fires the change notification before
// returning. Subscribers added during notification are not called for
// this replacement.
func (h *Holder) Set(m *Model) {
	h.model = m

	// Snapshot so callbacks can subscribe/unsubscribe without disturbing
	// this delivery round.
	snapshot := make([]*listener, len(h.listeners))
	copy(snapshot, h.listeners)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(m)
	}
}

// Subscribe registers fn for model replacements and returns its
// unsubscribe function. Unsubscribing twice is harmless.
func (h *Holder) Subscribe(fn func(*Model)) func() {
	l := &listener{fn: fn}
	h.listeners = append(h.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, cand := range h.listeners {
			if cand == l {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				break
			}
		}
	}
}
