package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a stroke color value. It accepts #rgb, #rgba, #rrggbb
// and #rrggbbaa hex forms and the SVG/CSS color names.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return color.NRGBA{}, errors.New("empty color")
	}
	if hex, ok := strings.CutPrefix(v, "#"); ok {
		if !validHex(hex) {
			return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		return gg.Hex(hex).Color().(color.NRGBA), nil
	}
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return false
		}
	}
	return true
}
