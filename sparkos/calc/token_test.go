package calc

import "testing"

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   rune
		want Operator
		ok   bool
	}{
		{in: '+', want: OpAdd, ok: true},
		{in: '-', want: OpSub, ok: true},
		{in: '*', want: OpMul, ok: true},
		{in: 'x', want: OpMul, ok: true},
		{in: '×', want: OpMul, ok: true},
		{in: '/', want: OpDiv, ok: true},
		{in: '÷', want: OpDiv, ok: true},
		{in: '%', ok: false},
		{in: '.', ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseOperator(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseOperator(%q)=(%v,%v), want (%v,%v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOperatorGlyph(t *testing.T) {
	want := map[Operator]string{OpAdd: "+", OpSub: "-", OpMul: "×", OpDiv: "÷", Operator(0): "?"}
	for op, g := range want {
		if got := op.String(); got != g {
			t.Fatalf("Operator(%d).String()=%q, want %q", op, got, g)
		}
	}
}

func TestParseDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		d, ok := ParseDigit(r)
		if !ok || d.Rune() != r {
			t.Fatalf("ParseDigit(%q)=(%v,%v)", r, d, ok)
		}
	}
	if _, ok := ParseDigit('a'); ok {
		t.Fatal("ParseDigit('a') ok, want false")
	}
}
