package mapink

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// StampIcon composites a sprite with its bounding box centered on the
// given point, using alpha-over blending. The sprite's own transparency
// is respected. Returns the updated canvas.
func StampIcon(canvas *image.NRGBA, sprite image.Image, center Point) *image.NRGBA {
	b := sprite.Bounds()
	tl := IconTopLeft(center, b.Dx(), b.Dy())
	return imaging.Overlay(canvas, sprite, tl, 1.0)
}

// IconTopLeft returns the top-left pixel for a center-anchored sprite of
// the given size, rounded to the nearest integer pixel.
func IconTopLeft(center Point, w, h int) image.Point {
	return image.Pt(
		int(math.Round(center.X-float64(w)/2)),
		int(math.Round(center.Y-float64(h)/2)),
	)
}

// AnnotateStedding stamps the stedding icon centered on the entry's
// coordinate and draws its label horizontally centered under the icon,
// baseline lifted SteddingLabelLift pixels above the icon's bottom edge.
func AnnotateStedding(canvas *image.NRGBA, icon image.Image, face font.Face, s Stedding) *image.NRGBA {
	center := s.Point()
	canvas = StampIcon(canvas, icon, center)
	iconH := icon.Bounds().Dy()
	baseline := math.Round(center.Y+float64(iconH)/2) - SteddingLabelLift
	DrawLabelBaseline(canvas, face, s.Label, center.X, baseline, SteddingStyle)
	return canvas
}

// AnnotateRiver draws the river label centered RiverLabelShift pixels
// right of the entry's coordinate. The shift applies to the anchor before
// centering, so the measured bounding box centers on the shifted point.
func AnnotateRiver(canvas *image.NRGBA, face font.Face, r River) *image.NRGBA {
	anchor := r.Point().Add(Pt(RiverLabelShift, 0))
	DrawLabelCentered(canvas, face, r.Label, anchor, RiverStyle)
	return canvas
}
