package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostMouse struct {
	ch    chan MouseEvent
	lastX int
	lastY int
	seen  bool
}

func newHostMouse() *hostMouse {
	return &hostMouse{ch: make(chan MouseEvent, 64)}
}

func (m *hostMouse) Events() <-chan MouseEvent { return m.ch }

func (m *hostMouse) poll() {
	emit := func(ev MouseEvent) {
		select {
		case m.ch <- ev:
		default:
		}
	}

	// Cursor position is already in framebuffer coordinates: Layout keeps
	// the logical size equal to the framebuffer size.
	x, y := ebiten.CursorPosition()
	if !m.seen || x != m.lastX || y != m.lastY {
		m.seen = true
		m.lastX = x
		m.lastY = y
		emit(MouseEvent{X: x, Y: y})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		emit(MouseEvent{X: x, Y: y, Button: MouseLeft, Press: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		emit(MouseEvent{X: x, Y: y, Button: MouseLeft})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		emit(MouseEvent{X: x, Y: y, Button: MouseRight, Press: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		emit(MouseEvent{X: x, Y: y, Button: MouseRight})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		emit(MouseEvent{X: x, Y: y, WheelY: wy})
	}
}
