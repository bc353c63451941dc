package ui

import (
	"image/color"

	"slate/expr"
	"slate/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorHeaderBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorStatusBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorPanelBG  = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorGrid     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorPlot     = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorCursor   = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colorError    = color.RGBA{R: 0xFF, G: 0x6A, B: 0x6A, A: 0xFF}

	colorBtnDigit    = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xFF}
	colorBtnOperator = color.RGBA{R: 0x28, G: 0x40, B: 0x58, A: 0xFF}
	colorBtnFunction = color.RGBA{R: 0x38, G: 0x30, B: 0x50, A: 0xFF}
	colorBtnControl  = color.RGBA{R: 0x58, G: 0x30, B: 0x30, A: 0xFF}
	colorBtnEquals   = color.RGBA{R: 0x28, G: 0x50, B: 0x38, A: 0xFF}
	colorBtnSelected = color.RGBA{R: 0x70, G: 0x70, B: 0x90, A: 0xFF}
	colorBtnHover    = color.RGBA{R: 0x48, G: 0x48, B: 0x58, A: 0xFF}
)

func buttonColor(k buttonKind) color.RGBA {
	switch k {
	case btnOperator:
		return colorBtnOperator
	case btnFunction:
		return colorBtnFunction
	case btnControl:
		return colorBtnControl
	case btnEquals:
		return colorBtnEquals
	default:
		return colorBtnDigit
	}
}

// fbDisplay adapts hal.Framebuffer to the drivers.Displayer contract that
// tinyfont draws against.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

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
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *App) initFont() bool {
	a.font = &freemono.Regular9pt7b
	a.fontHeight = 18
	a.fontOffset = 13
	_, outboxWidth := tinyfont.LineWidth(a.font, "0")
	a.fontWidth = int16(outboxWidth)
	return a.fontWidth > 0 && a.fontHeight > 0
}

func (a *App) drawStringClipped(x, y int16, s string, fg color.RGBA, cols int) {
	col := int16(0)
	for _, r := range s {
		if int(col) >= cols {
			return
		}
		tinyfont.DrawChar(a.d, a.font, x+col*a.fontWidth, y+a.fontOffset, r, fg)
		col++
	}
}

func (a *App) drawStringCentered(x, y, w int16, s string, fg color.RGBA) {
	tw := int16(len([]rune(s))) * a.fontWidth
	sx := x + (w-tw)/2
	if sx < x {
		sx = x
	}
	maxCols := int(w / a.fontWidth)
	a.drawStringClipped(sx, y, s, fg, maxCols)
}

// drawStringRight right-aligns s inside [x, x+w).
func (a *App) drawStringRight(x, y, w int16, s string, fg color.RGBA) {
	rs := []rune(s)
	tw := int16(len(rs)) * a.fontWidth
	sx := x + w - tw
	if sx < x {
		drop := int((x - sx + a.fontWidth - 1) / a.fontWidth)
		if drop >= len(rs) {
			return
		}
		rs = rs[drop:]
		sx = x + w - int16(len(rs))*a.fontWidth
	}
	a.drawStringClipped(sx, y, string(rs), fg, len(rs))
}

func (a *App) render() {
	if a.fb == nil || a.d == nil {
		return
	}
	w := int16(a.fb.Width())
	h := int16(a.fb.Height())
	if w <= 0 || h <= 0 {
		return
	}

	_ = a.d.FillRectangle(0, 0, w, h, colorBG)

	headerH := a.fontHeight + 4
	statusH := a.fontHeight + 4
	statusY := h - statusH

	_ = a.d.FillRectangle(0, 0, w, headerH, colorHeaderBG)
	a.drawStringClipped(4, 2, a.headerText(), colorFG, int((w-8)/a.fontWidth))

	_ = a.d.FillRectangle(0, statusY, w, statusH, colorStatusBG)
	a.drawStringClipped(4, statusY+2, a.statusText(), colorFG, int((w-8)/a.fontWidth))

	bodyY := int16(headerH)
	bodyH := statusY - bodyY

	if a.state == stateGraph {
		a.renderGraph(0, bodyY, w, bodyH)
	} else {
		a.renderCalculator(bodyY, w, bodyH)
	}

	if a.showHelp {
		a.renderHelp(w, h)
	}

	_ = a.fb.Present()
}

func (a *App) renderCalculator(bodyY, w, bodyH int16) {
	// Display pane: expression on top, preview or error underneath.
	paneH := 2*a.fontHeight + 12
	_ = a.d.FillRectangle(0, bodyY, w, paneH, colorPanelBG)

	exprText := a.calc.Expression()
	if a.state == stateTyping {
		exprText += "_"
	}
	a.drawStringRight(4, bodyY+4, w-8, exprText, colorFG)
	if a.calc.Err() != "" {
		a.drawStringRight(4, bodyY+4+a.fontHeight+4, w-8, a.calc.Err(), colorError)
	} else {
		a.drawStringRight(4, bodyY+4+a.fontHeight+4, w-8, a.calc.Preview(), colorDim)
	}

	gridY := bodyY + paneH + 4
	gridH := bodyH - paneH - 8
	gridW := w - 8
	if a.showHistory {
		gridW = w * 6 / 10
		a.renderHistory(gridW+8, gridY, w-gridW-12, gridH)
	}

	g := grid(a.calc.Mode(), a.second)
	layout := a.currentLayout()
	for r := range g {
		for col := range g[r] {
			b := g[r][col]
			x, y, cw, ch := layout.cellRect(r, col)
			bg := buttonColor(b.kind)
			if a.state == stateButtons && r == a.selRow && col == a.selCol {
				bg = colorBtnSelected
			} else if r == a.hoverRow && col == a.hoverCol {
				bg = colorBtnHover
			}
			_ = a.d.FillRectangle(x, y, cw, ch, bg)
			a.drawStringCentered(x, y+(ch-a.fontHeight)/2, cw, b.label, colorFG)
		}
	}
}

func (a *App) renderHistory(x, y, w, h int16) {
	_ = a.d.FillRectangle(x, y, w, h, colorPanelBG)
	cols := int(w / a.fontWidth)
	a.drawStringClipped(x+2, y+2, "History", colorDim, cols)

	entries := a.calc.History()
	rowH := a.fontHeight + 2
	maxRows := int((h - a.fontHeight - 6) / rowH)
	if maxRows <= 0 {
		return
	}
	selIdx := len(entries) - 1 - a.histSel
	start := len(entries) - maxRows
	if start < 0 {
		start = 0
	}
	// Scroll so the selected entry is always on screen.
	if selIdx >= 0 && selIdx < start {
		start = selIdx
	}
	ry := y + a.fontHeight + 4
	for i := start; i < len(entries) && i < start+maxRows; i++ {
		e := entries[i]
		line := e.At.Format("15:04") + " " + e.Expression + " = " + e.Result
		if i == selIdx {
			_ = a.d.FillRectangle(x, ry-1, w, rowH, colorBtnSelected)
		}
		a.drawStringClipped(x+2, ry, line, colorFG, cols)
		ry += rowH
	}
	if len(entries) == 0 {
		a.drawStringClipped(x+2, ry, "(empty)", colorDim, cols)
	}
}

func (a *App) renderHelp(w, h int16) {
	lines := []string{
		"Slate help",
		"",
		"Calculator",
		"  arrows: move between buttons",
		"  Enter/Space: press button",
		"  `: toggle typing mode",
		"  m: Basic/Scientific",
		"  2: 2nd functions",
		"  h: history (arrows select, Enter recall)",
		"  r: recall last result",
		"  Ctrl+G: graph expression",
		"  Ctrl+L: clear all",
		"  q/Esc: quit",
		"",
		"Typing",
		"  type an expression, Enter evaluates",
		"  Esc: back to buttons",
		"",
		"Graph",
		"  arrows: pan   +/-: zoom",
		"  wheel: zoom at cursor",
		"  r: reset view  c: cursor readout",
		"  Esc: back",
		"",
		"Functions",
	}
	lines = append(lines, wrapWords(expr.FunctionNames(), 44)...)

	boxW := w - 8*a.fontWidth
	boxH := int16(len(lines)+2) * a.fontHeight
	if boxH > h-2*a.fontHeight {
		boxH = h - 2*a.fontHeight
	}
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	_ = a.d.FillRectangle(x, y, boxW, boxH, colorHeaderBG)
	_ = a.d.FillRectangle(x+2, y+2, boxW-4, boxH-4, colorPanelBG)

	cols := int((boxW - 2*a.fontWidth) / a.fontWidth)
	maxRows := int(boxH/a.fontHeight) - 2
	for i, s := range lines {
		if i >= maxRows {
			break
		}
		fg := colorFG
		switch s {
		case "", "Calculator", "Typing", "Graph", "Functions", "Slate help":
			fg = colorDim
		}
		a.drawStringClipped(x+a.fontWidth, y+int16(i+1)*a.fontHeight, s, fg, cols)
	}
}

// wrapWords packs words into indented lines of at most width runes.
func wrapWords(words []string, width int) []string {
	var out []string
	line := " "
	for _, w := range words {
		if len(line)+1+len(w) > width && line != " " {
			out = append(out, line)
			line = " "
		}
		line += " " + w
	}
	if line != " " {
		out = append(out, line)
	}
	return out
}
