package ui

import (
	"errors"
	"testing"

	"slate/hal"
)

func testApp() *App {
	return &App{calc: testCalculator(), hoverRow: -1, hoverCol: -1}
}

func pressKey(t *testing.T, a *App, ev hal.KeyEvent) {
	t.Helper()
	ev.Press = true
	if err := a.handleKey(ev); err != nil {
		t.Fatalf("handleKey(%+v) error: %v", ev, err)
	}
}

func TestHistoryPanelSelection(t *testing.T) {
	a := testApp()
	typeText(a.calc, "1+1")
	a.calc.Calculate()
	typeText(a.calc, "*3")
	a.calc.Calculate()
	typeText(a.calc, "*4")
	a.calc.Calculate()
	a.calc.Clear()

	pressKey(t, a, hal.KeyEvent{Rune: 'h'})
	if !a.showHistory || a.histSel != 0 {
		t.Fatalf("h should open the panel on the newest entry, got open=%v sel=%d", a.showHistory, a.histSel)
	}

	pressKey(t, a, hal.KeyEvent{Code: hal.KeyUp})
	pressKey(t, a, hal.KeyEvent{Code: hal.KeyUp})
	if a.histSel != 2 {
		t.Fatalf("two ups should select the oldest of three entries, sel = %d", a.histSel)
	}
	pressKey(t, a, hal.KeyEvent{Code: hal.KeyUp})
	if a.histSel != 2 {
		t.Fatalf("selection must stop at the oldest entry, sel = %d", a.histSel)
	}

	pressKey(t, a, hal.KeyEvent{Code: hal.KeyEnter})
	if a.calc.Expression() != "1+1" {
		t.Fatalf("recalled %q, want the oldest entry 1+1", a.calc.Expression())
	}
	if a.showHistory {
		t.Fatalf("recall should close the panel")
	}
}

func TestHistoryPanelRecallKey(t *testing.T) {
	a := testApp()
	typeText(a.calc, "6*7")
	a.calc.Calculate()
	typeText(a.calc, "+1")
	a.calc.Calculate()
	a.calc.Clear()

	pressKey(t, a, hal.KeyEvent{Rune: 'h'})
	pressKey(t, a, hal.KeyEvent{Code: hal.KeyUp})
	pressKey(t, a, hal.KeyEvent{Rune: 'r'})
	if a.calc.Expression() != "6*7" {
		t.Fatalf("r recalled %q, want the selected entry 6*7", a.calc.Expression())
	}
	if a.showHistory {
		t.Fatalf("r recall should close the panel")
	}
}

func TestHistoryPanelSelectionBounds(t *testing.T) {
	a := testApp()
	typeText(a.calc, "2+2")
	a.calc.Calculate()

	pressKey(t, a, hal.KeyEvent{Rune: 'h'})
	pressKey(t, a, hal.KeyEvent{Code: hal.KeyDown})
	if a.histSel != 0 {
		t.Fatalf("down at the newest entry must not go negative, sel = %d", a.histSel)
	}
	pressKey(t, a, hal.KeyEvent{Code: hal.KeyEscape})
	if a.showHistory {
		t.Fatalf("Escape should close the panel, not quit")
	}
}

func TestRecallKeyWithPanelClosed(t *testing.T) {
	a := testApp()
	typeText(a.calc, "9-4")
	a.calc.Calculate()
	a.calc.Clear()

	pressKey(t, a, hal.KeyEvent{Rune: 'r'})
	if a.calc.Expression() != "9-4" {
		t.Fatalf("r with panel closed recalled %q, want 9-4", a.calc.Expression())
	}
}

func TestCtrlCQuits(t *testing.T) {
	for _, st := range []state{stateButtons, stateTyping, stateGraph} {
		a := testApp()
		a.state = st
		err := a.handleKey(hal.KeyEvent{Press: true, Rune: 0x03})
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("Ctrl+C in state %d: err = %v, want ErrQuit", st, err)
		}
	}
}
