package mapink

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LabelFontSizePt is the typographic size used for all label styles.
const LabelFontSizePt = 14

// PtToPx converts typographic points (1/72 inch) to pixels at the given
// DPI. Pure function of its arguments; callers inject the DPI detected
// from the base image (or DefaultDPI).
func PtToPx(points, dpi float64) int {
	return int(math.Round(points * dpi / 72))
}

// LoadFontFace parses OpenType/TrueType font data and returns a face
// sized to the given pixel height.
func LoadFontFace(data []byte, sizePx int) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72, // size is already in pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
