package calc

// Digit is a decimal digit key, 0..9.
type Digit uint8

// Rune returns the digit's character.
func (d Digit) Rune() rune { return rune('0' + d) }

func (d Digit) valid() bool { return d <= 9 }

// ParseDigit maps a key rune to a Digit.
func ParseDigit(r rune) (Digit, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return Digit(r - '0'), true
}

// Operator is one of the four binary operator keys.
type Operator uint8

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
)

// Display glyphs. Multiply and divide are shown as × and ÷ but evaluated as * and /.
const (
	glyphAdd = '+'
	glyphSub = '-'
	glyphMul = '×'
	glyphDiv = '÷'
)

// Glyph returns the display glyph written into the buffer.
func (op Operator) Glyph() rune {
	switch op {
	case OpAdd:
		return glyphAdd
	case OpSub:
		return glyphSub
	case OpMul:
		return glyphMul
	case OpDiv:
		return glyphDiv
	default:
		return 0
	}
}

func (op Operator) String() string {
	if g := op.Glyph(); g != 0 {
		return string(g)
	}
	return "?"
}

func (op Operator) valid() bool { return op >= OpAdd && op <= OpDiv }

// ParseOperator maps a key rune to an Operator.
//
// Both display glyphs and the usual keyboard spellings are accepted:
// '*', 'x' and 'X' multiply, '/' divides.
func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*', 'x', 'X', glyphMul:
		return OpMul, true
	case '/', glyphDiv:
		return OpDiv, true
	default:
		return 0, false
	}
}

func isOperatorGlyph(r rune) bool {
	switch r {
	case glyphAdd, glyphSub, glyphMul, glyphDiv:
		return true
	default:
		return false
	}
}
