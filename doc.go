// Package mapink annotates large raster map images with points of
// interest, stroked text labels, and smoothed national border overlays.
//
// # Overview
//
// mapink is a batch rendering library: one base image plus one structured
// dataset goes in, one annotated composite (and optionally a grid of
// fixed-size tiles) comes out. Every run is deterministic; there is no
// interactive or incremental mode.
//
// # Quick Start
//
//	import "github.com/randmaps/mapink"
//
//	data, _ := mapink.LoadDataset("poi.json")
//	base, dpi, _ := mapink.LoadBaseImage("map.jpg")
//	res, _ := mapink.NewResources(fontBytes, dpi, portalIcon, steddingIcon)
//
//	out := mapink.Render(base, data, res, mapink.DefaultConfig())
//	mapink.SaveImage(out, "map_annotated.jpg", mapink.FormatJPEG, 90)
//
// # Pipeline
//
// Rendering is an explicit ownership chain: each stage takes the canvas
// and returns it, so the sequential dependency between stages is visible
// at the interfaces. The stage order is borders, portal stones, steddings,
// rivers, export.
//
// # Coordinate System
//
// Uses standard image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All dataset coordinates are in base-image pixel space
package mapink

// Version is the current version of the library.
const Version = "0.2.0"
