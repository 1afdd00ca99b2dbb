package softgl

// table hands out object names. Names start at 1, so 0 never names an
// object, and released names are reused most recent first.
type table[T any] struct {
	entries []slot[T]
	free    []uint32
	live    int
	// limit caps live names; 0 means no limit.
	limit int
}

type slot[T any] struct {
	value T
	valid bool
}

// alloc stores v under a fresh name. It returns 0 when the table is full.
func (t *table[T]) alloc(v T) uint32 {
	if t.limit > 0 && t.live >= t.limit {
		return 0
	}
	t.live++
	s := slot[T]{value: v, valid: true}
	if n := len(t.free); n > 0 {
		name := t.free[n-1]
		t.free = t.free[:n-1]
		t.entries[name-1] = s
		return name
	}
	t.entries = append(t.entries, s)
	return uint32(len(t.entries))
}

func (t *table[T]) get(name uint32) (T, bool) {
	if name == 0 || int(name) > len(t.entries) {
		var zero T
		return zero, false
	}
	s := t.entries[name-1]
	return s.value, s.valid
}

// ref returns the value stored under name for in-place updates, nil if
// name is not live.
func (t *table[T]) ref(name uint32) *T {
	if name == 0 || int(name) > len(t.entries) || !t.entries[name-1].valid {
		return nil
	}
	return &t.entries[name-1].value
}

// release frees name. It reports false if name was not live.
func (t *table[T]) release(name uint32) bool {
	if name == 0 || int(name) > len(t.entries) || !t.entries[name-1].valid {
		return false
	}
	t.entries[name-1] = slot[T]{}
	t.free = append(t.free, name)
	t.live--
	return true
}

func (t *table[T]) len() int { return t.live }
