package calculator

import (
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8) {
	p := rgb565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}
func (f *testFB) Present() error {
	f.presents++
	return nil
}

type testDisplay struct{ fb hal.Framebuffer }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

func newTestTask() *Task {
	return New(nil, kernel.Capability{}, kernel.Capability{}, 4)
}

func TestTypedExpressionEvaluates(t *testing.T) {
	task := newTestTask()
	task.handleInput(nil, []byte("2+3*4\n"))

	if got := task.eng.Display(); got != "14" {
		t.Fatalf("display=%q, want %q", got, "14")
	}
	if task.status != "" {
		t.Fatalf("status=%q, want empty", task.status)
	}
	e, ok := task.tape.At(0)
	if !ok || e.Expr != "2+3×4" || e.Result != "14" {
		t.Fatalf("tape[0]=%+v ok=%v", e, ok)
	}
}

func TestEqualsRuneEvaluates(t *testing.T) {
	task := newTestTask()
	task.handleInput(nil, []byte("7/2="))
	if got := task.eng.Display(); got != "3.5" {
		t.Fatalf("display=%q, want %q", got, "3.5")
	}
}

func TestArrowNavigation(t *testing.T) {
	task := newTestTask()
	// Up from "=" lands on "+", Left from there on "6".
	task.handleInput(nil, []byte("\x1b[A\x1b[D\n\n"))
	if got := labelOf(task.sel); got != "6" {
		t.Fatalf("sel=%s, want 6", got)
	}
	if got := task.eng.Display(); got != "66" {
		t.Fatalf("display=%q, want %q", got, "66")
	}
}

func TestSplitEscapeSequence(t *testing.T) {
	task := newTestTask()
	task.handleInput(nil, []byte("\x1b["))
	task.handleInput(nil, []byte("A"))
	if got := labelOf(task.sel); got != "+" {
		t.Fatalf("sel=%s, want +", got)
	}
	if got := task.eng.Display(); got != "0" {
		t.Fatalf("display=%q, want %q", got, "0")
	}
}

func TestErrorKeepsBuffer(t *testing.T) {
	tests := []struct {
		in     string
		status string
	}{
		{"5/0\n", "Error: division by zero"},
		{"8+\n", "Error: incomplete expression"},
	}
	for _, tc := range tests {
		task := newTestTask()
		task.handleInput(nil, []byte(tc.in))
		want := tc.in[:len(tc.in)-1]
		want = replaceGlyphs(want)
		if got := task.eng.Display(); got != want {
			t.Fatalf("%q: display=%q, want %q", tc.in, got, want)
		}
		if task.status != tc.status {
			t.Fatalf("%q: status=%q, want %q", tc.in, task.status, tc.status)
		}
		if task.tape.Len() != 0 {
			t.Fatalf("%q: tape len=%d, want 0", tc.in, task.tape.Len())
		}

		task.handleInput(nil, []byte{0x7f})
		if task.status != "" {
			t.Fatalf("%q: status not cleared by next edit: %q", tc.in, task.status)
		}
	}
}

func replaceGlyphs(s string) string {
	out := []rune(s)
	for i, r := range out {
		switch r {
		case '*':
			out[i] = '×'
		case '/':
			out[i] = '÷'
		}
	}
	return string(out)
}

func TestClearAndBackspace(t *testing.T) {
	task := newTestTask()
	task.handleInput(nil, []byte("12+3"))
	task.handleInput(nil, []byte{0x7f})
	if got := task.eng.Display(); got != "12+" {
		t.Fatalf("after backspace display=%q", got)
	}
	task.handleInput(nil, []byte("\x1b[3~"))
	if got := task.eng.Display(); got != "12" {
		t.Fatalf("after delete display=%q", got)
	}
	task.handleInput(nil, []byte{0x1b})
	if got := task.eng.Display(); got != "0" {
		t.Fatalf("after escape display=%q", got)
	}
	task.handleInput(nil, []byte("9c"))
	if got := task.eng.Display(); got != "0" {
		t.Fatalf("after c display=%q", got)
	}
}

func TestTapeKeepsNewest(t *testing.T) {
	task := newTestTask()
	for _, in := range []string{"1+1\n", "2+2\n", "3+3\n", "4+4\n", "5+5\n"} {
		task.handleInput(nil, []byte{0x1b})
		task.handleInput(nil, []byte(in))
	}
	if task.tape.Len() != 4 {
		t.Fatalf("tape len=%d, want 4", task.tape.Len())
	}
	last := task.tape.Last(1)
	if len(last) != 1 || last[0].Result != "10" {
		t.Fatalf("last=%+v", last)
	}
	first, _ := task.tape.At(0)
	if first.Expr != "2+2" {
		t.Fatalf("oldest=%+v, want 2+2", first)
	}
}

func TestRenderDrawsAndPresents(t *testing.T) {
	fb := newTestFB(320, 320)
	task := New(testDisplay{fb: fb}, kernel.Capability{}, kernel.Capability{}, 4)
	task.fb = fb
	task.initFont()

	task.handleInput(nil, []byte("12345678901234567890123456789*9\n"))
	task.render()

	if fb.presents != 1 {
		t.Fatalf("presents=%d, want 1", fb.presents)
	}
	bg := rgb565From888(colorBG.R, colorBG.G, colorBG.B)
	sel := rgb565From888(colorSelBG.R, colorSelBG.G, colorSelBG.B)
	var sawBG, sawSel bool
	for i := 0; i+1 < len(fb.buf); i += 2 {
		p := uint16(fb.buf[i]) | uint16(fb.buf[i+1])<<8
		switch p {
		case bg:
			sawBG = true
		case sel:
			sawSel = true
		}
	}
	if !sawBG || !sawSel {
		t.Fatalf("sawBG=%v sawSel=%v", sawBG, sawSel)
	}
}

func TestRenderWithoutFramebuffer(t *testing.T) {
	task := newTestTask()
	task.initFont()
	task.render()
}

func TestFitLeft(t *testing.T) {
	task := newTestTask()
	task.initFont()
	s := "1234567890+1234567890"
	if got := fitLeft(task.font, s, 1000); got != s {
		t.Fatalf("fitLeft wide=%q", got)
	}
	narrow := textWidth(task.font, "…7890")
	got := fitLeft(task.font, s, narrow)
	if got != "…7890" {
		t.Fatalf("fitLeft narrow=%q, want %q", got, "…7890")
	}
	if got := fitLeft(task.font, s, 0); got != "" {
		t.Fatalf("fitLeft zero=%q", got)
	}
}
