package calculator

import (
	"errors"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"tinygo.org/x/tinyfont"
)

// DefaultTapeSize is the number of past evaluations kept when New gets 0.
const DefaultTapeSize = 16

// logRetryTicks bounds how long a result report waits on a full logger queue.
const logRetryTicks = 100

// Task is the calculator app: a keypad and a display driving one calc.Engine.
type Task struct {
	disp   hal.Display
	ep     kernel.Capability
	logCap kernel.Capability

	fb hal.Framebuffer

	font      tinyfont.Fonter
	largeFont tinyfont.Fonter

	eng  *calc.Engine
	tape *calc.Tape

	sel    int
	status string
	inbuf  []byte
}

// New returns a calculator reading MsgTermInput from ep and reporting to logCap.
func New(disp hal.Display, ep kernel.Capability, logCap kernel.Capability, tapeSize int) *Task {
	if tapeSize <= 0 {
		tapeSize = DefaultTapeSize
	}
	return &Task{
		disp:   disp,
		ep:     ep,
		logCap: logCap,
		eng:    calc.New(),
		tape:   calc.NewTape(tapeSize),
		sel:    buttonForKind(btnEquals),
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	t.initFont()
	t.render()
	_ = logclient.Log(ctx, t.logCap, "calc: ready")

	for msg := range ch {
		if proto.Kind(msg.Kind) != proto.MsgTermInput {
			continue
		}
		t.handleInput(ctx, msg.Payload())
		t.render()
	}
}

func (t *Task) handleInput(ctx *kernel.Context, b []byte) {
	t.inbuf = append(t.inbuf, b...)
	buf := t.inbuf
	for len(buf) > 0 {
		n, k, ok := nextKey(buf)
		if !ok {
			break
		}
		buf = buf[n:]
		t.handleKey(ctx, k)
	}
	t.inbuf = append(t.inbuf[:0], buf...)
}

func (t *Task) handleKey(ctx *kernel.Context, k key) {
	switch k.kind {
	case keyEsc:
		t.press(ctx, buttonForKind(btnClear))
	case keyBackspace, keyDelete:
		t.press(ctx, buttonForKind(btnBackspace))
	case keyEnter:
		t.press(ctx, t.sel)
	case keyUp:
		t.sel = move(t.sel, 0, -1)
	case keyDown:
		t.sel = move(t.sel, 0, 1)
	case keyLeft:
		t.sel = move(t.sel, -1, 0)
	case keyRight:
		t.sel = move(t.sel, 1, 0)
	case keyRune:
		t.handleRune(ctx, k.r)
	}
}

func (t *Task) handleRune(ctx *kernel.Context, r rune) {
	switch r {
	case 'c', 'C':
		t.press(ctx, buttonForKind(btnClear))
		return
	}
	if i := buttonForRune(r); i >= 0 {
		t.press(ctx, i)
	}
}

// press applies one keypad button to the engine. The highlight only follows
// the arrow keys, so Enter keeps pressing whatever was last selected.
func (t *Task) press(ctx *kernel.Context, i int) {
	if i < 0 || i >= len(keypad) {
		return
	}
	b := keypad[i]
	if b.kind != btnEquals {
		t.status = ""
	}

	switch b.kind {
	case btnDigit:
		t.eng.AppendDigit(b.digit)
	case btnOperator:
		t.eng.AppendOperator(b.op)
	case btnDecimal:
		t.eng.AppendDecimal()
	case btnBackspace:
		t.eng.Backspace()
	case btnClear:
		t.eng.Clear()
	case btnEquals:
		t.evaluate(ctx)
	}
}

func (t *Task) evaluate(ctx *kernel.Context) {
	expr := t.eng.Display()
	result, err := t.eng.Evaluate()
	st := statusOf(err)
	if err != nil {
		t.status = statusText(st)
	} else {
		t.status = ""
		t.tape.Push(calc.Entry{Expr: expr, Result: result})
	}

	payload := proto.CalcResultPayload(st, expr, result, kernel.MaxMessageBytes)
	_ = ctx.SendToCapRetry(t.logCap, uint16(proto.MsgCalcResult), payload, kernel.Capability{}, logRetryTicks)
}

func statusOf(err error) proto.CalcStatus {
	switch {
	case err == nil:
		return proto.CalcOK
	case errors.Is(err, calc.ErrDivisionByZero):
		return proto.CalcDivByZero
	case errors.Is(err, calc.ErrOutOfRange):
		return proto.CalcOutOfRange
	default:
		return proto.CalcMalformed
	}
}

func statusText(st proto.CalcStatus) string {
	switch st {
	case proto.CalcDivByZero:
		return "Error: division by zero"
	case proto.CalcOutOfRange:
		return "Error: out of range"
	case proto.CalcMalformed:
		return "Error: incomplete expression"
	default:
		return ""
	}
}
