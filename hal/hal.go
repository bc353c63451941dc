// Package hal separates the calculator from the machine it runs on: the
// application draws into a Framebuffer and consumes Keyboard and Mouse
// events, and the host side owns the actual window.
package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event. Printable input arrives as Rune with
// Code KeyUnknown; control chords arrive as their ASCII control rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
)

// MouseEvent is a pointer event in framebuffer pixel coordinates.
// Button MouseNone with zero wheel is a plain move.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Press  bool
	WheelY float64
}

// Mouse provides pointer events.
type Mouse interface {
	Events() <-chan MouseEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Mouse() Mouse
}

// HAL is the only contact point between the application and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
