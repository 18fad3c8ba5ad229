package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a 24-bit RGB colour. In YAML it is written as "#RRGGBB"; plain integers and
// "0x" prefixed strings are accepted on read.
type Color uint32

// RGB returns the colour with any alpha byte stripped.
func (c Color) RGB() uint32 {
	return uint32(c) & 0xFFFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%06X", c.RGB())
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: colour must be a scalar", node.Line)
	}
	v, err := parseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(v & 0xFFFFFF)
	return nil
}

// Colorful returns the colour as a colorful.Color.
func (c Color) Colorful() colorful.Color {
	v := c.RGB()
	return colorful.Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}
}

// FromColorful converts back, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RotateHue returns the colour with its HSV hue turned by deg degrees. Saturation and
// value are kept.
func (c Color) RotateHue(deg float64) Color {
	h, s, v := c.Colorful().Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return FromColorful(colorful.Hsv(h, s, v))
}

func parseColor(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		// "#RGB" and "#RRGGBB"
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return uint64(r)<<16 | uint64(g)<<8 | uint64(b), nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, 32)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	return v, nil
}
