package hal

// Key script characters with a special meaning; any other rune is typed as is.
const (
	ScriptEnter     = '\n'
	ScriptBackspace = '<'
	ScriptEscape    = '!'
)

type hostKeyboard struct {
	ch     chan KeyEvent
	script []KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// queueScript appends scripted key presses, each followed by its release.
func (k *hostKeyboard) queueScript(script string) {
	k.script = append(k.script, ParseKeyScript(script)...)
}

// pumpScript emits the next scripted key, if any. It returns false once the
// script is exhausted.
func (k *hostKeyboard) pumpScript() bool {
	if len(k.script) == 0 {
		return false
	}
	select {
	case k.ch <- k.script[0]:
		k.script = k.script[1:]
	default:
	}
	return true
}

// ParseKeyScript turns a key script into press/release event pairs.
func ParseKeyScript(script string) []KeyEvent {
	var out []KeyEvent
	for _, r := range script {
		var ev KeyEvent
		switch r {
		case ScriptEnter, '\r':
			ev.Code = KeyEnter
		case ScriptBackspace:
			ev.Code = KeyBackspace
		case ScriptEscape:
			ev.Code = KeyEscape
		default:
			if r < 0x20 {
				continue
			}
			ev.Rune = r
		}
		press := ev
		press.Press = true
		out = append(out, press, ev)
	}
	return out
}
