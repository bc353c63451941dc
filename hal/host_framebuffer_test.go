package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{0x20, 0x40, 0x80},
	}
	for _, tt := range tests {
		p := rgb565(tt.r, tt.g, tt.b)
		r, g, b := rgb888From565(p)
		// 5/6 bit channels lose the low bits; round-tripping again must be stable.
		if rgb565(r, g, b) != p {
			t.Fatalf("rgb565(%d,%d,%d) not stable across round trip", tt.r, tt.g, tt.b)
		}
	}
	if rgb565(255, 255, 255) != 0xFFFF {
		t.Fatalf("white = %#04x, want 0xFFFF", rgb565(255, 255, 255))
	}
	if rgb565(0, 0, 0) != 0 {
		t.Fatalf("black = %#04x, want 0", rgb565(0, 0, 0))
	}
}

func TestFramebufferClearRGB(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(255, 0, 0)

	want := rgb565(255, 0, 0)
	buf := fb.Buffer()
	if len(buf) != 4*3*2 {
		t.Fatalf("buffer len = %d, want %d", len(buf), 4*3*2)
	}
	for i := 0; i < len(buf); i += 2 {
		got := uint16(buf[i]) | uint16(buf[i+1])<<8
		if got != want {
			t.Fatalf("pixel at byte %d = %#04x, want %#04x", i, got, want)
		}
	}
}
