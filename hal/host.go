package hal

import (
	"fmt"
	"os"
	"sync"
)

// Framebuffer dimensions. The window shows this buffer at an integer
// multiple chosen by the caller of RunWindow.
const (
	fbWidth  = 480
	fbHeight = 360
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	mouse  *hostMouse
}

// New returns a host HAL implementation.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(fbWidth, fbHeight),
		kbd:    newHostKeyboard(),
		mouse:  newHostMouse(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, mouse: h.mouse} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd   *hostKeyboard
	mouse *hostMouse
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Mouse() Mouse       { return in.mouse }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
