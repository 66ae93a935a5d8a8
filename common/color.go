package common

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	hsluv "github.com/hsluv/hsluv-go"
)

// Zone is one of the three vertical bands used to colour collision effects.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneMiddle
	ZoneRight
)

var zoneColors = [...]color.NRGBA{
	ZoneLeft:   {R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	ZoneMiddle: {R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	ZoneRight:  {R: 0x84, G: 0xcc, B: 0x16, A: 0xff},
}

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneMiddle:
		return "middle"
	case ZoneRight:
		return "right"
	default:
		return "unknown"
	}
}

// Color returns the zone's display colour.
func (z Zone) Color() color.NRGBA {
	if z < ZoneLeft || z > ZoneRight {
		return zoneColors[ZoneRight]
	}
	return zoneColors[z]
}

// ZoneAt splits [0, width) into three equal bands.
func ZoneAt(x, width float64) Zone {
	third := width / 3
	switch {
	case x < third:
		return ZoneLeft
	case x < 2*third:
		return ZoneMiddle
	default:
		return ZoneRight
	}
}

// ZoneColor is ZoneAt(x, width).Color().
func ZoneColor(x, width float64) color.NRGBA {
	return ZoneAt(x, width).Color()
}

// RandomHue picks a saturated colour with a uniformly random HSLuv hue.
func RandomHue(rng *rand.Rand) color.NRGBA {
	r, g, b := hsluv.HsluvToRGB(rng.Float64()*360, 70, 60)
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 0xff}
}

func unit8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xff
	default:
		return uint8(f*0xff + 0.5)
	}
}

// ParseHex accepts #rrggbb or #rrggbbaa (the leading # is optional).
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as #rrggbb, or #rrggbbaa when not opaque.
func Hex(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
