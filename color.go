package mapink

import (
	"image/color"
	"regexp"
	"strconv"
)

// BorderAlpha is the alpha value forced onto every border stroke,
// regardless of what the dataset specifies. The value is 0.75*255; the
// dataset's own alpha channel is ignored by design.
const BorderAlpha = 191

// Label colors. Fixed by the art style, not configurable.
var (
	DarkGreen = color.NRGBA{R: 0, G: 100, B: 0, A: 255}
	Blue      = color.NRGBA{R: 0, G: 90, B: 200, A: 255}
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// borderFallback is the color used when a border color spec cannot be
// parsed. Deliberately loud so a bad dataset entry is visible in the
// output rather than silently dropped.
var borderFallback = color.NRGBA{R: 255, G: 0, B: 0, A: BorderAlpha}

var rgbSpecRe = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

// ParseBorderColor parses a color spec of the form "rgb(r,g,b)" and
// returns it with the alpha forced to BorderAlpha. A malformed spec never
// fails; it degrades to an alpha-overridden red fallback.
func ParseBorderColor(spec string) color.NRGBA {
	m := rgbSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return borderFallback
	}
	r, errR := strconv.ParseUint(m[1], 10, 16)
	g, errG := strconv.ParseUint(m[2], 10, 16)
	b, errB := strconv.ParseUint(m[3], 10, 16)
	if errR != nil || errG != nil || errB != nil || r > 255 || g > 255 || b > 255 {
		return borderFallback
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: BorderAlpha}
}
