package calculator

import (
	"image/color"
	"strings"

	"sparkcalc/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG       = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorFG       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorErr      = color.RGBA{R: 0xff, G: 0x66, B: 0x55, A: 0xff}
	colorHeaderBG = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	colorDigitBG  = color.RGBA{R: 0x33, G: 0x33, B: 0x3a, A: 0xff}
	colorOpBG     = color.RGBA{R: 0xd0, G: 0x80, B: 0x20, A: 0xff}
	colorFuncBG   = color.RGBA{R: 0x60, G: 0x60, B: 0x68, A: 0xff}
	colorSelBG    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorSelFG    = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

const (
	headerH   = 14
	cellGap   = 2
	textInset = 6
	tapeLines = 4
)

func (t *Task) initFont() {
	t.font = &proggy.TinySZ8pt7b
	t.largeFont = &freemono.Regular12pt7b
}

// glyphText maps display glyphs the bundled fonts lack onto ASCII stand-ins.
var glyphText = strings.NewReplacer("×", "x", "÷", "/", "…", "..")

func textWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, glyphText.Replace(s))
	return int(outbox)
}

func lineHeight(f tinyfont.Fonter) int {
	return int(f.GetYAdvance())
}

// fitLeft drops leading characters until s fits in maxW pixels, marking the
// cut with an ellipsis. The newest input is at the end, so the end stays visible.
func fitLeft(f tinyfont.Fonter, s string, maxW int) string {
	if textWidth(f, s) <= maxW {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[1:]
		cand := "…" + string(rs)
		if textWidth(f, cand) <= maxW {
			return cand
		}
	}
	return ""
}

func (t *Task) render() {
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 || t.font == nil {
		return
	}
	w, h := t.fb.Width(), t.fb.Height()
	if w <= 0 || h <= 0 {
		return
	}
	d := &fbDisplay{fb: t.fb}

	fillRect(t.fb, 0, 0, w, h, colorBG)

	fillRect(t.fb, 0, 0, w, headerH, colorHeaderBG)
	t.drawText(d, t.font, textInset, headerH-3, "Calc", colorFG)
	hint := "Esc AC  Bksp DEL  Enter press"
	t.drawText(d, t.font, w-textInset-textWidth(t.font, hint), headerH-3, hint, colorDim)

	keypadTop := h * 2 / 5
	small := lineHeight(t.font)
	large := lineHeight(t.largeFont)

	// Display line sits right above the status line, which sits above the keypad.
	statusBase := keypadTop - cellGap - 2
	displayBase := statusBase - small - 2
	avail := w - 2*textInset

	if t.status != "" {
		s := fitLeft(t.font, t.status, avail)
		t.drawText(d, t.font, w-textInset-textWidth(t.font, s), statusBase, s, colorErr)
	}

	disp := fitLeft(t.largeFont, t.eng.Display(), avail)
	t.drawText(d, t.largeFont, w-textInset-textWidth(t.largeFont, disp), displayBase, disp, colorFG)

	tapeBottom := displayBase - large
	entries := t.tape.Last(tapeLines)
	y := tapeBottom
	for i := len(entries) - 1; i >= 0 && y-small >= headerH; i-- {
		line := fitLeft(t.font, entries[i].Expr+" = "+entries[i].Result, avail)
		t.drawText(d, t.font, w-textInset-textWidth(t.font, line), y, line, colorDim)
		y -= small
	}

	t.renderKeypad(d, keypadTop, w, h)
	_ = t.fb.Present()
}

func (t *Task) renderKeypad(d *fbDisplay, top, w, h int) {
	cellW := w / gridCols
	cellH := (h - top) / gridRows
	if cellW <= 2*cellGap || cellH <= 2*cellGap {
		return
	}
	for i, b := range keypad {
		cs, rs := b.spans()
		x := b.col*cellW + cellGap
		y := top + b.row*cellH + cellGap
		bw := cs*cellW - 2*cellGap
		bh := rs*cellH - 2*cellGap

		bg, fg := buttonColors(b.kind), colorFG
		if i == t.sel {
			bg, fg = colorSelBG, colorSelFG
		}
		fillRect(t.fb, x, y, bw, bh, bg)

		lw := textWidth(t.largeFont, b.label)
		lh := lineHeight(t.largeFont)
		base := y + (bh+lh)/2 - lh/4
		t.drawText(d, t.largeFont, x+(bw-lw)/2, base, b.label, fg)
	}
}

func buttonColors(kind buttonKind) color.RGBA {
	switch kind {
	case btnOperator, btnEquals:
		return colorOpBG
	case btnClear, btnBackspace:
		return colorFuncBG
	default:
		return colorDigitBG
	}
}

// drawText writes s with its baseline at y.
func (t *Task) drawText(d *fbDisplay, f tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, f, int16(x), int16(y), glyphText.Replace(s), c)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func fillRect(fb hal.Framebuffer, x, y, w, h int, c color.RGBA) {
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	stride := fb.StrideBytes()
	fw, fh := fb.Width(), fb.Height()
	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)

	for py := y; py < y+h; py++ {
		if py < 0 || py >= fh {
			continue
		}
		row := py * stride
		for px := x; px < x+w; px++ {
			if px < 0 || px >= fw {
				continue
			}
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// fbDisplay adapts a hal.Framebuffer to the tinyfont drawing target.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fillRect(d.fb, int(x), int(y), 1, 1, c)
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
