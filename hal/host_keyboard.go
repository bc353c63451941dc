package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if !inpututil.IsKeyJustPressed(key) {
				return
			}
			select {
			case k.ch <- KeyEvent{Press: true, Rune: r}:
			default:
			}
		}
		emitCtrl(ebiten.KeyG, 0x07)
		emitCtrl(ebiten.KeyC, 0x03)
		emitCtrl(ebiten.KeyL, 0x0C)
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		select {
		case k.ch <- KeyEvent{Press: true, Rune: r}:
		default:
		}
	}

	// Named keys carry navigation and editing; letters arrive as text above.
	named := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowRight, KeyRight},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyNumpadEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyDelete, KeyDelete},
		{ebiten.KeyHome, KeyHome},
		{ebiten.KeyEnd, KeyEnd},
	}
	for _, nk := range named {
		if inpututil.IsKeyJustPressed(nk.key) {
			emit(nk.code, true)
		}
		if inpututil.IsKeyJustReleased(nk.key) {
			emit(nk.code, false)
		}
	}
}
