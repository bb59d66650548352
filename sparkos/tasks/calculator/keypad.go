package calculator

import "sparkcalc/sparkos/calc"

type buttonKind uint8

const (
	btnDigit buttonKind = iota
	btnOperator
	btnDecimal
	btnBackspace
	btnClear
	btnEquals
)

type button struct {
	label string
	kind  buttonKind
	digit calc.Digit
	op    calc.Operator

	col, row         int
	colSpan, rowSpan int
}

const (
	gridCols = 4
	gridRows = 5
)

// keypad is laid out on a 4x5 grid:
//
//	AC  DEL  ÷  ×
//	7   8    9  -
//	4   5    6  +
//	1   2    3  =
//	0 0      .  =
var keypad = []button{
	{label: "AC", kind: btnClear, col: 0, row: 0},
	{label: "DEL", kind: btnBackspace, col: 1, row: 0},
	{label: "÷", kind: btnOperator, op: calc.OpDiv, col: 2, row: 0},
	{label: "×", kind: btnOperator, op: calc.OpMul, col: 3, row: 0},

	{label: "7", kind: btnDigit, digit: 7, col: 0, row: 1},
	{label: "8", kind: btnDigit, digit: 8, col: 1, row: 1},
	{label: "9", kind: btnDigit, digit: 9, col: 2, row: 1},
	{label: "-", kind: btnOperator, op: calc.OpSub, col: 3, row: 1},

	{label: "4", kind: btnDigit, digit: 4, col: 0, row: 2},
	{label: "5", kind: btnDigit, digit: 5, col: 1, row: 2},
	{label: "6", kind: btnDigit, digit: 6, col: 2, row: 2},
	{label: "+", kind: btnOperator, op: calc.OpAdd, col: 3, row: 2},

	{label: "1", kind: btnDigit, digit: 1, col: 0, row: 3},
	{label: "2", kind: btnDigit, digit: 2, col: 1, row: 3},
	{label: "3", kind: btnDigit, digit: 3, col: 2, row: 3},
	{label: "=", kind: btnEquals, col: 3, row: 3, rowSpan: 2},

	{label: "0", kind: btnDigit, digit: 0, col: 0, row: 4, colSpan: 2},
	{label: ".", kind: btnDecimal, col: 2, row: 4},
}

func (b button) spans() (cols, rows int) {
	cols, rows = b.colSpan, b.rowSpan
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (b button) covers(col, row int) bool {
	cs, rs := b.spans()
	return col >= b.col && col < b.col+cs && row >= b.row && row < b.row+rs
}

// buttonAt returns the index of the button covering a grid cell, or -1.
func buttonAt(col, row int) int {
	for i, b := range keypad {
		if b.covers(col, row) {
			return i
		}
	}
	return -1
}

// buttonForRune returns the button a typed character corresponds to, or -1.
func buttonForRune(r rune) int {
	for i, b := range keypad {
		switch b.kind {
		case btnDigit:
			if d, ok := calc.ParseDigit(r); ok && d == b.digit {
				return i
			}
		case btnOperator:
			if op, ok := calc.ParseOperator(r); ok && op == b.op {
				return i
			}
		case btnDecimal:
			if r == '.' {
				return i
			}
		case btnEquals:
			if r == '=' {
				return i
			}
		}
	}
	return -1
}

func buttonForKind(kind buttonKind) int {
	for i, b := range keypad {
		if b.kind == kind {
			return i
		}
	}
	return -1
}

// move walks the selection one button in direction (dc, dr), skipping cells
// covered by the current button. It stays put at the grid edge.
func move(sel, dc, dr int) int {
	if sel < 0 || sel >= len(keypad) {
		return buttonForKind(btnEquals)
	}
	b := keypad[sel]
	col, row := b.col, b.row
	cs, rs := b.spans()
	if dc > 0 {
		col += cs - 1
	}
	if dr > 0 {
		row += rs - 1
	}
	for {
		col += dc
		row += dr
		if col < 0 || col >= gridCols || row < 0 || row >= gridRows {
			return sel
		}
		if i := buttonAt(col, row); i >= 0 && i != sel {
			return i
		}
	}
}
