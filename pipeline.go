package mapink

import "image"

// Config holds the immutable render settings for one run.
type Config struct {
	// RenderBorders enables the national border overlay pass.
	RenderBorders bool

	// SplineSamples is the requested spline density per border segment.
	SplineSamples int

	// Supersample is the border anti-aliasing factor (1 = off).
	Supersample int
}

// DefaultConfig mirrors the documented CLI defaults.
func DefaultConfig() Config {
	return Config{
		RenderBorders: false,
		SplineSamples: 10,
		Supersample:   1,
	}
}

// Render runs the full annotation pipeline over the canvas and returns
// the finished composite. The canvas passes through each stage by
// exclusive ownership: borders first (so annotations draw over them),
// then portal stones, steddings, and rivers. The caller must not retain
// the input canvas.
func Render(canvas *image.NRGBA, data *Dataset, res *Resources, cfg Config) *image.NRGBA {
	log := Logger()

	if cfg.RenderBorders {
		canvas = RenderBorders(canvas, data.Nations, BorderConfig{
			SamplesPerSegment: cfg.SplineSamples,
			Supersample:       cfg.Supersample,
		})
		log.Info("rendered borders", "nations", len(data.Nations), "supersample", cfg.Supersample)
	}

	for _, p := range data.PortalStones {
		canvas = StampIcon(canvas, res.PortalIcon, p.Point())
	}
	log.Info("placed portal stones", "count", len(data.PortalStones))

	for _, s := range data.Steddings {
		canvas = AnnotateStedding(canvas, res.SteddingIcon, res.Face, s)
	}
	log.Info("annotated steddings", "count", len(data.Steddings))

	for _, r := range data.Rivers {
		canvas = AnnotateRiver(canvas, res.Face, r)
	}
	log.Info("annotated rivers", "count", len(data.Rivers))

	return canvas
}
