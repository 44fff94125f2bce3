package scene

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorBlack = Color{A: 255}
	ColorRed   = Color{R: 255, A: 255}
	ColorGreen = Color{G: 255, A: 255}
	ColorBlue  = Color{B: 255, A: 255}
)

// ParseColor parses "#rrggbb" or "#rrggbbaa". A missing alpha is opaque.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 && len(raw) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	c := Color{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}

	return c, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Vector3 is a three component vector.
type Vector3 struct {
	X, Y, Z float32
}

// TextureRef names a texture resource by path. The empty ref means no texture.
type TextureRef string
