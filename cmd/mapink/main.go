// Command mapink annotates a large map image with POIs, labels, and
// nation borders, then optionally re-exports it as fixed-size tiles.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/randmaps/mapink"
)

func main() {
	var (
		assetsDir    = flag.String("assets-dir", ".", "directory containing the map, font, icons, and dataset")
		mapFile      = flag.String("map", "map.jpg", "base map image filename")
		fontFile     = flag.String("font", "HyliaSerifBeta-Regular.otf", "label font filename")
		portalIcon   = flag.String("portal-icon", "portal_stone.png", "portal stone icon filename")
		steddingIcon = flag.String("stedding-icon", "stedding.png", "stedding icon filename")
		jsonFile     = flag.String("json", "poi.json", "POI dataset filename")
		out          = flag.String("out", "map_annotated", "output basename without extension")
		formatName   = flag.String("format", "jpg", "output format (jpg or png)")
		quality      = flag.Int("quality", 90, "JPEG quality")
		scale        = flag.Float64("scale", 1.0, "output downscale factor (e.g. 0.5)")
		tileSize     = flag.Int("tile-size", 0, "tile size in pixels (0 disables tiling)")
		borders      = flag.Bool("nation-borders", false, "render nation borders")
		samples      = flag.Int("spline-samples", 10, "spline samples per border segment")
		aaScale      = flag.Int("aa-scale", 1, "border supersampling factor (1=off, 2 or 3 for smoother lines)")
		dpiOverride  = flag.Float64("dpi", 0, "font DPI override (0 = use image metadata or 96)")
		verbose      = flag.Bool("v", false, "enable progress logging to stderr")
	)
	flag.Parse()

	if *verbose {
		mapink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	format, err := mapink.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	data, err := mapink.LoadDataset(filepath.Join(*assetsDir, *jsonFile))
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	canvas, dpi, err := mapink.LoadBaseImage(filepath.Join(*assetsDir, *mapFile))
	if err != nil {
		log.Fatalf("Failed to load base image: %v", err)
	}
	if *dpiOverride > 0 {
		dpi = *dpiOverride
	}

	fontData, err := os.ReadFile(filepath.Join(*assetsDir, *fontFile))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	portal, err := mapink.LoadIcon(filepath.Join(*assetsDir, *portalIcon))
	if err != nil {
		log.Fatalf("Failed to load portal icon: %v", err)
	}
	stedding, err := mapink.LoadIcon(filepath.Join(*assetsDir, *steddingIcon))
	if err != nil {
		log.Fatalf("Failed to load stedding icon: %v", err)
	}
	res, err := mapink.NewResources(fontData, dpi, portal, stedding)
	if err != nil {
		log.Fatalf("Failed to prepare resources: %v", err)
	}

	canvas = mapink.Render(canvas, data, res, mapink.Config{
		RenderBorders: *borders,
		SplineSamples: *samples,
		Supersample:   *aaScale,
	})
	canvas = mapink.Downscale(canvas, *scale)

	outPath := fmt.Sprintf("%s.%s", *out, format.Ext())
	if err := mapink.SaveImage(canvas, outPath, format, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	fmt.Printf("[OK] Saved: %s (%dx%d)\n", outPath, canvas.Bounds().Dx(), canvas.Bounds().Dy())

	if *tileSize > 0 {
		dir := mapink.TileDir(*out, *tileSize)
		if _, err := mapink.ExportTiles(canvas, *tileSize, dir, *out, format, *quality); err != nil {
			log.Fatalf("Failed to export tiles: %v", err)
		}
		fmt.Printf("[OK] Exported tiles to: %s\n", dir)
	}
}
