package logic

// Sentinel watches the visibility of one row, identified by key, and
// reports each transition from hidden to visible exactly once. Observing a
// different key re-attaches the sentinel and forgets the previous state, so
// a freshly appended last row that is already on screen triggers again.
type Sentinel struct {
	key      string
	attached bool
	visible  bool
}

// Observe attaches the sentinel to the row identified by key
func (s *Sentinel) Observe(key string) {
	if s.attached && s.key == key {
		return
	}
	s.key = key
	s.attached = true
	s.visible = false
}

// Detach stops observing
func (s *Sentinel) Detach() {
	*s = Sentinel{}
}

// Attached reports whether a row is being observed
func (s *Sentinel) Attached() bool {
	return s.attached
}

// Key returns the observed row key
func (s *Sentinel) Key() string {
	return s.key
}

// Update records the current visibility of the observed row and returns true
// when it has just become visible.
func (s *Sentinel) Update(visible bool) bool {
	if !s.attached {
		return false
	}
	fired := visible && !s.visible
	s.visible = visible
	return fired
}
