package mapink

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// BorderWidthPx is the stroke width of a national border at base
// resolution.
const BorderWidthPx = 5

// minSamplesPerSegment is the floor on spline density so borders stay
// smooth even when the requested sample count is very low.
const minSamplesPerSegment = 6

// BorderConfig controls the supersampled border rendering pass.
type BorderConfig struct {
	// SamplesPerSegment is the requested spline density at base
	// resolution. The effective density scales with Supersample.
	SamplesPerSegment int

	// Supersample is the anti-aliasing oversampling factor (1 = off).
	// The scratch layer is Supersample^2 times the canvas area; budget
	// accordingly for large maps.
	Supersample int
}

// RenderBorders rasterizes all nation borders as anti-aliased strokes
// and composites them onto the canvas. Anti-aliasing comes from
// oversampling: borders are stroked onto a transparent layer Supersample
// times the canvas size, downsampled back with a Lanczos filter, and
// alpha-composited over the base.
//
// Entries with fewer than two vertices are skipped; malformed color
// specs degrade to the red fallback. Neither is an error.
func RenderBorders(canvas *image.NRGBA, nations []Nation, cfg BorderConfig) *image.NRGBA {
	if len(nations) == 0 {
		return canvas
	}
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	layer := RenderBorderLayer(w, h, nations, cfg)
	return imaging.Overlay(canvas, layer, image.Pt(0, 0), 1.0)
}

// RenderBorderLayer renders the borders onto a transparent layer of the
// given base size, already downsampled from the supersampled scratch
// space. Exposed separately so the stroke color and alpha override can
// be inspected before compositing.
func RenderBorderLayer(w, h int, nations []Nation, cfg BorderConfig) *image.NRGBA {
	aa := cfg.Supersample
	if aa < 1 {
		aa = 1
	}
	scratch := image.NewNRGBA(image.Rect(0, 0, w*aa, h*aa))
	scanner := rasterx.NewScannerGV(w*aa, h*aa, scratch, scratch.Bounds())
	stroker := rasterx.NewStroker(w*aa, h*aa, scanner)
	stroker.SetStroke(
		fixed.I(BorderWidthPx*aa), 0,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round,
	)

	samples := cfg.SamplesPerSegment * aa
	if samples < minSamplesPerSegment {
		samples = minSamplesPerSegment
	}

	for i, n := range nations {
		pts := n.Points()
		if len(pts) < 2 {
			Logger().Warn("skipping border with fewer than 2 vertices", "nation", i)
			continue
		}
		for j := range pts {
			pts[j] = pts[j].Mul(float64(aa))
		}
		smooth := CatmullRom(pts, samples, false)
		Logger().Debug("stroking border", "nation", i, "vertices", len(pts), "samples", len(smooth))

		stroker.SetColor(ParseBorderColor(n.Color))
		stroker.Start(rasterx.ToFixedP(smooth[0].X, smooth[0].Y))
		for _, p := range smooth[1:] {
			stroker.Line(rasterx.ToFixedP(p.X, p.Y))
		}
		stroker.Stop(false)
		stroker.Draw()
		stroker.Clear()
	}

	if aa == 1 {
		return scratch
	}
	return imaging.Resize(scratch, w, h, imaging.Lanczos)
}
