// Package ui is the calculator application: button grids, typing mode,
// history, help and the graph view, all drawn into a hal.Framebuffer.
package ui

import (
	"errors"
	"time"

	"slate/expr"
	"slate/graph"
	"slate/hal"

	"tinygo.org/x/tinyfont"
)

// ErrQuit is returned by the app step when the user asks to exit.
var ErrQuit = errors.New("quit")

type state uint8

const (
	stateButtons state = iota
	stateTyping
	stateGraph
)

// Arrow keys auto-repeat at the host rate; the gate keeps button
// navigation at a comfortable speed.
const navRepeatDelay = 120 * time.Millisecond

// App wires calculator state, input and rendering together. One step()
// call per host tick drains input and redraws when something changed.
type App struct {
	log   hal.Logger
	fb    hal.Framebuffer
	d     *fbDisplay
	keys  <-chan hal.KeyEvent
	mouse <-chan hal.MouseEvent

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	calc *Calculator

	state    state
	second   bool
	showHelp bool

	selRow, selCol     int
	hoverRow, hoverCol int
	lastNav            time.Time

	// histSel indexes the history panel selection, most recent first,
	// matching Calculator.Recall.
	showHistory bool
	histSel     int

	vp         graph.Viewport
	graphNode  expr.Node
	graphVar   string
	graphSrc   string
	showCursor bool
	cursorPx   int
	cursorPy   int

	status string
	dirty  bool
	ticks  uint
}

// New builds the app against a HAL and returns its per-tick step
// function, which drives input and rendering until it returns ErrQuit.
func New(h hal.HAL) func() error {
	a := &App{
		log:      h.Logger(),
		fb:       h.Display().Framebuffer(),
		keys:     h.Input().Keyboard().Events(),
		mouse:    h.Input().Mouse().Events(),
		calc:     NewCalculator(),
		hoverRow: -1,
		hoverCol: -1,
		dirty:    true,
	}
	a.d = newFBDisplay(a.fb)
	if !a.initFont() {
		return func() error { return errors.New("ui: font init failed") }
	}
	a.setStatus("? help | ` type | m mode | Ctrl+G graph | q quit")
	a.log.WriteLineString("slate: ready")
	return a.step
}

func (a *App) step() error {
	for {
		select {
		case ev := <-a.keys:
			if err := a.handleKey(ev); err != nil {
				return err
			}
			continue
		case ev := <-a.mouse:
			a.handleMouse(ev)
			continue
		default:
		}
		break
	}

	// The title clock ticks once a second even with no input.
	a.ticks++
	if a.ticks%60 == 0 {
		a.dirty = true
	}

	if a.dirty {
		a.dirty = false
		a.render()
	}
	return nil
}

func (a *App) setStatus(s string) {
	a.status = s
	a.dirty = true
}

func (a *App) headerText() string {
	return "Slate  " + a.calc.Mode().String() + "  " + time.Now().Format("15:04:05")
}

func (a *App) statusText() string {
	if a.status != "" {
		return a.status
	}
	switch a.state {
	case stateTyping:
		return "typing: Enter evaluate | Esc back"
	case stateGraph:
		return "graph: arrows pan | +/- zoom | r reset | c cursor | Esc back"
	default:
		return "? help | ` type | m mode | Ctrl+G graph | q quit"
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	a.dirty = true
	a.status = ""

	if ev.Rune == 0x03 { // Ctrl+C
		return ErrQuit
	}

	if a.showHelp {
		if ev.Code == hal.KeyEscape || ev.Rune == '?' || ev.Rune == 'q' {
			a.showHelp = false
		}
		return nil
	}
	if ev.Rune == '?' {
		a.showHelp = true
		return nil
	}

	switch a.state {
	case stateGraph:
		return a.handleGraphKey(ev)
	case stateTyping:
		return a.handleTypingKey(ev)
	default:
		return a.handleButtonsKey(ev)
	}
}

func (a *App) handleButtonsKey(ev hal.KeyEvent) error {
	if a.showHistory && a.handleHistoryKey(ev) {
		return nil
	}

	switch ev.Code {
	case hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight:
		a.navigate(ev.Code)
		return nil
	case hal.KeyEnter:
		a.pressSelected()
		return nil
	case hal.KeyBackspace:
		a.calc.Backspace()
		return nil
	case hal.KeyDelete:
		a.calc.Clear()
		return nil
	case hal.KeyEscape:
		return ErrQuit
	}

	switch ev.Rune {
	case ' ':
		a.pressSelected()
	case '`':
		a.state = stateTyping
	case 'm':
		a.calc.ToggleMode()
		a.second = false
		a.clampSelection()
	case '2':
		if a.calc.Mode() == ModeScientific {
			a.second = !a.second
		}
	case 'h':
		a.showHistory = true
		a.histSel = 0
	case 'r':
		if a.calc.Recall(0) {
			a.setStatus("recalled " + a.calc.Expression())
		} else {
			a.setStatus("history empty")
		}
	case 'q':
		return ErrQuit
	case 0x07: // Ctrl+G
		a.enterGraph()
	case 0x0C: // Ctrl+L
		a.calc.ClearAll()
		a.histSel = 0
		a.setStatus("cleared")
	}
	return nil
}

// handleHistoryKey drives the open history panel: arrows move the
// selection, Enter or r recall the selected entry. It reports whether
// the event was consumed.
func (a *App) handleHistoryKey(ev hal.KeyEvent) bool {
	n := len(a.calc.History())
	switch ev.Code {
	case hal.KeyUp:
		if a.histSel < n-1 {
			a.histSel++
		}
		return true
	case hal.KeyDown:
		if a.histSel > 0 {
			a.histSel--
		}
		return true
	case hal.KeyEnter:
		a.recallSelected()
		return true
	case hal.KeyEscape:
		a.showHistory = false
		return true
	}
	switch ev.Rune {
	case 'r':
		a.recallSelected()
		return true
	case 'h':
		a.showHistory = false
		return true
	}
	return false
}

// recallSelected recalls the highlighted history entry and closes the
// panel.
func (a *App) recallSelected() {
	if a.calc.Recall(a.histSel) {
		a.setStatus("recalled " + a.calc.Expression())
	} else {
		a.setStatus("history empty")
	}
	a.showHistory = false
}

func (a *App) handleTypingKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyEnter:
		a.calc.Calculate()
		return nil
	case hal.KeyBackspace:
		a.calc.Backspace()
		return nil
	case hal.KeyEscape:
		a.state = stateButtons
		return nil
	}
	switch ev.Rune {
	case 0:
	case '`':
		a.state = stateButtons
	case 0x07:
		a.enterGraph()
	case 0x0C:
		a.calc.ClearAll()
	default:
		if ev.Rune >= 0x20 {
			a.calc.AppendRune(ev.Rune)
		}
	}
	return nil
}

func (a *App) handleGraphKey(ev hal.KeyEvent) error {
	panX := 0.1 * float64(a.vp.Width)
	panY := 0.1 * float64(a.vp.Height)

	switch ev.Code {
	case hal.KeyLeft:
		a.vp = a.vp.Pan(-panX, 0)
		return nil
	case hal.KeyRight:
		a.vp = a.vp.Pan(panX, 0)
		return nil
	case hal.KeyUp:
		a.vp = a.vp.Pan(0, panY)
		return nil
	case hal.KeyDown:
		a.vp = a.vp.Pan(0, -panY)
		return nil
	case hal.KeyEscape:
		a.state = stateButtons
		return nil
	}

	switch ev.Rune {
	case '+', '=':
		a.vp = a.vp.Zoom(0.8)
	case '-':
		a.vp = a.vp.Zoom(1.25)
	case 'r':
		a.vp = a.vp.Reset()
	case 'c':
		a.showCursor = !a.showCursor
	case 'q', 0x07:
		a.state = stateButtons
	}
	return nil
}

func (a *App) handleMouse(ev hal.MouseEvent) {
	if a.state == stateGraph {
		if ev.WheelY != 0 {
			if ev.WheelY > 0 {
				a.vp = a.vp.Zoom(0.8)
			} else {
				a.vp = a.vp.Zoom(1.25)
			}
			a.dirty = true
			return
		}
		if a.cursorPx != ev.X || a.cursorPy != ev.Y {
			a.cursorPx = ev.X
			a.cursorPy = ev.Y
			if a.showCursor {
				a.dirty = true
			}
		}
		return
	}
	if a.showHelp || a.state == stateTyping {
		return
	}

	layout := a.currentLayout()
	row, col, ok := layout.hitTest(ev.X, ev.Y)
	if ev.Button == hal.MouseLeft && ev.Press {
		if ok {
			a.selRow = row
			a.selCol = col
			a.pressSelected()
			a.dirty = true
		}
		return
	}
	if ev.Button == hal.MouseNone && ev.WheelY == 0 {
		hr, hc := -1, -1
		if ok {
			hr, hc = row, col
		}
		if hr != a.hoverRow || hc != a.hoverCol {
			a.hoverRow = hr
			a.hoverCol = hc
			a.dirty = true
		}
	}
}

func (a *App) navigate(code hal.KeyCode) {
	if time.Since(a.lastNav) < navRepeatDelay {
		return
	}
	a.lastNav = time.Now()

	g := grid(a.calc.Mode(), a.second)
	switch code {
	case hal.KeyUp:
		if a.selRow > 0 {
			a.selRow--
		}
	case hal.KeyDown:
		if a.selRow < len(g)-1 {
			a.selRow++
		}
	case hal.KeyLeft:
		if a.selCol > 0 {
			a.selCol--
		}
	case hal.KeyRight:
		if a.selCol < len(g[0])-1 {
			a.selCol++
		}
	}
}

func (a *App) clampSelection() {
	g := grid(a.calc.Mode(), a.second)
	if a.selRow >= len(g) {
		a.selRow = len(g) - 1
	}
	if len(g) > 0 && a.selCol >= len(g[0]) {
		a.selCol = len(g[0]) - 1
	}
}

func (a *App) pressSelected() {
	g := grid(a.calc.Mode(), a.second)
	if a.selRow < 0 || a.selRow >= len(g) || a.selCol < 0 || a.selCol >= len(g[a.selRow]) {
		return
	}
	press(a.calc, g[a.selRow][a.selCol])
}

// enterGraph parses the current expression as a function of one variable
// and switches to the graph view.
func (a *App) enterGraph() {
	src := a.calc.Expression()
	if src == "" {
		a.setStatus("graph: nothing to plot")
		return
	}
	n, err := expr.Parse(src)
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	vars := expr.Vars(n)
	switch len(vars) {
	case 0:
		a.graphVar = "x"
	case 1:
		a.graphVar = vars[0]
	default:
		a.setStatus("graph: one variable only, saw " + vars[0] + " and " + vars[1])
		return
	}

	a.graphNode = n
	a.graphSrc = src
	if a.vp.Width == 0 {
		a.vp = graph.DefaultViewport(a.fb.Width(), a.fb.Height())
	}
	a.state = stateGraph
	a.log.WriteLineString("slate: graphing " + src)
}

// currentLayout recomputes the on-screen button layout; input hit-testing
// and rendering share this geometry.
func (a *App) currentLayout() buttonLayout {
	w := int16(a.fb.Width())
	h := int16(a.fb.Height())
	headerH := a.fontHeight + 4
	statusH := a.fontHeight + 4
	paneH := 2*a.fontHeight + 12

	gridY := headerH + paneH + 4
	gridH := h - statusH - gridY - 4
	gridW := w - 8
	if a.showHistory {
		gridW = w * 6 / 10
	}
	return newButtonLayout(4, gridY, gridW, gridH, grid(a.calc.Mode(), a.second))
}
