package calc

import "testing"

func TestTapeDropsOldest(t *testing.T) {
	tp := NewTape(3)
	for _, r := range []string{"1", "2", "3", "4", "5"} {
		tp.Push(Entry{Expr: r + "+0", Result: r})
	}
	if tp.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", tp.Len())
	}

	got := tp.Last(10)
	want := []string{"3", "4", "5"}
	if len(got) != len(want) {
		t.Fatalf("Last(10) len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Result != want[i] {
			t.Fatalf("Last(10)[%d]=%q, want %q", i, got[i].Result, want[i])
		}
	}

	if e, ok := tp.At(0); !ok || e.Result != "3" {
		t.Fatalf("At(0)=(%v,%v), want 3", e, ok)
	}
	if _, ok := tp.At(3); ok {
		t.Fatal("At(3) ok, want false")
	}
	if last := tp.Last(1); len(last) != 1 || last[0].Result != "5" {
		t.Fatalf("Last(1)=%v, want [5]", last)
	}
}

func TestTapeReset(t *testing.T) {
	tp := NewTape(0)
	if tp.Cap() != 1 {
		t.Fatalf("Cap()=%d, want 1", tp.Cap())
	}
	tp.Push(Entry{Expr: "1+1", Result: "2"})
	tp.Reset()
	if tp.Len() != 0 || tp.Last(5) != nil {
		t.Fatal("tape not empty after Reset")
	}
}
