package calc

// Engine holds the expression buffer and applies key edits to it.
//
// The buffer is never empty; "0" is the initial state. Edits that would break
// the grammar (two operators in a row, an operator after '.', a second '.'
// in one number) are dropped silently, the way a disabled key would be.
type Engine struct {
	text []rune
}

// New returns an engine in the initial "0" state.
func New() *Engine {
	return &Engine{text: []rune{'0'}}
}

// Display returns the buffer verbatim.
func (e *Engine) Display() string { return string(e.text) }

// Clear resets the buffer to "0".
func (e *Engine) Clear() {
	e.text = append(e.text[:0], '0')
}

func (e *Engine) isInitial() bool {
	return len(e.text) == 1 && e.text[0] == '0'
}

func (e *Engine) last() rune {
	return e.text[len(e.text)-1]
}

// AppendDigit appends d, or replaces the buffer when it is still "0".
func (e *Engine) AppendDigit(d Digit) {
	if !d.valid() {
		return
	}
	if e.isInitial() {
		e.text[0] = d.Rune()
		return
	}
	e.text = append(e.text, d.Rune())
}

// AppendOperator appends op unless the buffer ends in an operator or '.'.
//
// "0" is a valid left operand here, so "0" followed by + gives "0+".
func (e *Engine) AppendOperator(op Operator) {
	if !op.valid() {
		return
	}
	if r := e.last(); isOperatorGlyph(r) || r == '.' {
		return
	}
	e.text = append(e.text, op.Glyph())
}

// AppendDecimal appends '.' unless the open number already has one.
func (e *Engine) AppendDecimal() {
	if e.openRunHasDecimal() {
		return
	}
	e.text = append(e.text, '.')
}

// openRunHasDecimal scans back from the end to the nearest operator only.
func (e *Engine) openRunHasDecimal() bool {
	for i := len(e.text) - 1; i >= 0; i-- {
		switch r := e.text[i]; {
		case r == '.':
			return true
		case isOperatorGlyph(r):
			return false
		}
	}
	return false
}

// Backspace removes the last character; a single character resets to "0".
func (e *Engine) Backspace() {
	if len(e.text) <= 1 {
		e.Clear()
		return
	}
	e.text = e.text[:len(e.text)-1]
}

// Evaluate computes the buffer and, on success, replaces it with the
// formatted result, which is also returned. On error the buffer is left as is.
func (e *Engine) Evaluate() (string, error) {
	v, err := evaluate(string(e.text))
	if err != nil {
		return "", err
	}
	out := Format(v)
	e.text = append(e.text[:0], []rune(out)...)
	return out, nil
}
