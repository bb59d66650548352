package calc

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 4.0, want: "4"},
		{in: 5.12, want: "5.12"},
		{in: 5.123456, want: "5.1235"},
		{in: 1.0 / 3.0, want: "0.3333"},
		{in: 2.0 / 3.0, want: "0.6667"},
		{in: 0.5, want: "0.5"},
		{in: -2.5, want: "-2.5"},
		{in: 2.00004, want: "2"},
		{in: -0.00001, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 0.0001, want: "0.0001"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1234567.891, want: "1234567.891"},

		// Exact binary ties at the fourth place round away from zero.
		{in: 1.03125, want: "1.0313"},
		{in: -1.03125, want: "-1.0313"},
		{in: 2.00005, want: "2.0001"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Fatalf("Format(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOutputIsAValidBuffer(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159, 1e16, -123.45678, 7.0 / 2} {
		checkInvariants(t, Format(v))
	}
}
