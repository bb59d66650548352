package calc

// Entry is one successful evaluation.
type Entry struct {
	Expr   string
	Result string
}

// Tape keeps the most recent evaluations in a fixed-size ring.
type Tape struct {
	slots []Entry
	head  int
	n     int
}

// NewTape returns a tape holding up to capacity entries (at least one).
func NewTape(capacity int) *Tape {
	if capacity < 1 {
		capacity = 1
	}
	return &Tape{slots: make([]Entry, capacity)}
}

// Cap returns the ring size.
func (t *Tape) Cap() int { return len(t.slots) }

// Len returns the number of stored entries.
func (t *Tape) Len() int { return t.n }

// Push records e, dropping the oldest entry when full.
func (t *Tape) Push(e Entry) {
	t.slots[t.head] = e
	t.head = (t.head + 1) % len(t.slots)
	if t.n < len(t.slots) {
		t.n++
	}
}

// At returns the i-th stored entry, 0 being the oldest.
func (t *Tape) At(i int) (Entry, bool) {
	if i < 0 || i >= t.n {
		return Entry{}, false
	}
	start := (t.head - t.n + len(t.slots)) % len(t.slots)
	return t.slots[(start+i)%len(t.slots)], true
}

// Last returns up to n of the newest entries, oldest first.
func (t *Tape) Last(n int) []Entry {
	if n > t.n {
		n = t.n
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := t.n - n; i < t.n; i++ {
		e, _ := t.At(i)
		out = append(out, e)
	}
	return out
}

// Reset drops every entry.
func (t *Tape) Reset() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
	t.head = 0
	t.n = 0
}
