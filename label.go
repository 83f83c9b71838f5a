package mapink

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Fixed label placement offsets. Emergent from the dataset and art style
// this tool was built for; kept as named constants rather than
// configuration on purpose.
const (
	// SteddingLabelLift pulls the stedding label up from the icon's
	// bottom edge so overlapping text sits over the icon, not below it.
	SteddingLabelLift = 10

	// RiverLabelShift moves the river label right of its geographic
	// anchor so it does not occlude the river line itself.
	RiverLabelShift = 50

	// LabelStrokeWidth is the white outline width drawn beneath the
	// label fill for legibility over arbitrary terrain colors.
	LabelStrokeWidth = 2
)

// LabelStyle binds the fill and outline treatment of one label class.
type LabelStyle struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth int
}

// The two label classes. Steddings are dark green, rivers blue; both get
// the same white outline.
var (
	SteddingStyle = LabelStyle{Fill: DarkGreen, Stroke: White, StrokeWidth: LabelStrokeWidth}
	RiverStyle    = LabelStyle{Fill: Blue, Stroke: White, StrokeWidth: LabelStrokeWidth}
)

// MeasureLabel returns the pixel dimensions of the rendered text
// including the stroke contribution, so centering accounts for the
// visually widened glyph outlines.
func MeasureLabel(face font.Face, s string, strokeWidth int) (w, h int) {
	bounds, _ := font.BoundString(face, s)
	w = (bounds.Max.X - bounds.Min.X).Ceil() + 2*strokeWidth
	h = (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*strokeWidth
	return w, h
}

// labelDot computes the baseline origin that centers the text bounding
// box on the given point. The stroke widens the box symmetrically, so
// the center is independent of the stroke width.
func labelDot(face font.Face, s string, center Point) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, s)
	cx := fixed.Int26_6((bounds.Min.X + bounds.Max.X) / 2)
	cy := fixed.Int26_6((bounds.Min.Y + bounds.Max.Y) / 2)
	return fixed.Point26_6{
		X: floatToFixed(center.X) - cx,
		Y: floatToFixed(center.Y) - cy,
	}
}

// DrawLabelCentered draws stroked text with its bounding box centered on
// the given point.
func DrawLabelCentered(dst draw.Image, face font.Face, s string, center Point, style LabelStyle) {
	drawStroked(dst, face, s, labelDot(face, s, center), style)
}

// DrawLabelBaseline draws stroked text horizontally centered on x with
// its baseline at y.
func DrawLabelBaseline(dst draw.Image, face font.Face, s string, x, y float64, style LabelStyle) {
	bounds, _ := font.BoundString(face, s)
	cx := fixed.Int26_6((bounds.Min.X + bounds.Max.X) / 2)
	dot := fixed.Point26_6{
		X: floatToFixed(x) - cx,
		Y: fixed.I(int(math.Round(y))),
	}
	drawStroked(dst, face, s, dot, style)
}

// drawStroked renders the outline pass followed by the fill pass. The
// outline is approximated by stamping the text at every integer offset
// within the stroke radius, which matches the look of a round pen stroke
// at the small widths used for labels.
func drawStroked(dst draw.Image, face font.Face, s string, dot fixed.Point26_6, style LabelStyle) {
	r := style.StrokeWidth
	if r > 0 {
		stroke := &font.Drawer{Dst: dst, Src: image.NewUniform(style.Stroke), Face: face}
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > r*r {
					continue
				}
				stroke.Dot = fixed.Point26_6{X: dot.X + fixed.I(dx), Y: dot.Y + fixed.I(dy)}
				stroke.DrawString(s)
			}
		}
	}
	fill := &font.Drawer{Dst: dst, Src: image.NewUniform(style.Fill), Face: face, Dot: dot}
	fill.DrawString(s)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
