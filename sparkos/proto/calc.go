package proto

// CalcStatus is the outcome of one evaluation reported by the calc task.
type CalcStatus uint8

const (
	CalcOK CalcStatus = iota
	CalcMalformed
	CalcDivByZero
	CalcOutOfRange
)

func (s CalcStatus) String() string {
	switch s {
	case CalcOK:
		return "ok"
	case CalcMalformed:
		return "malformed"
	case CalcDivByZero:
		return "div_by_zero"
	case CalcOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// CalcResultPayload encodes a MsgCalcResult payload.
//
// Layout:
//   - u8: status
//   - u8: expression length n
//   - n bytes: expression (UTF-8, display glyphs)
//   - rest: result display string (empty unless status is CalcOK)
//
// Strings are truncated so the payload fits max bytes; truncation never
// splits a UTF-8 sequence.
func CalcResultPayload(status CalcStatus, expr, result string, max int) []byte {
	if max < 2 {
		return nil
	}
	room := max - 2
	expr = truncateUTF8(expr, min(room, 255))
	room -= len(expr)
	result = truncateUTF8(result, room)

	buf := make([]byte, 0, 2+len(expr)+len(result))
	buf = append(buf, byte(status), byte(len(expr)))
	buf = append(buf, expr...)
	buf = append(buf, result...)
	return buf
}

// DecodeCalcResultPayload decodes a CalcResultPayload.
func DecodeCalcResultPayload(b []byte) (status CalcStatus, expr, result string, ok bool) {
	if len(b) < 2 {
		return 0, "", "", false
	}
	n := int(b[1])
	if 2+n > len(b) {
		return 0, "", "", false
	}
	return CalcStatus(b[0]), string(b[2 : 2+n]), string(b[2+n:]), true
}

func truncateUTF8(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	// Back off continuation bytes (10xxxxxx) so the cut lands on a rune start.
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
