package mapink

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // base map decoding
	_ "image/png"  // icon decoding
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// LoadBaseImage reads the base map, converts it to an NRGBA canvas, and
// reports the print density embedded in its metadata. The second return
// value is DefaultDPI when the image carries no usable density.
func LoadBaseImage(path string) (*image.NRGBA, float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read base image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("decode base image %s: %w", path, err)
	}
	dpi, ok := DetectDPI(raw)
	if !ok {
		dpi = DefaultDPI
	}
	return imaging.Clone(img), dpi, nil
}

// LoadIcon reads an RGBA icon sprite.
func LoadIcon(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read icon %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Resources bundles the pre-loaded assets one render run consumes.
// Everything is loaded read-only before the pipeline starts; a missing
// asset aborts the run before any output exists.
type Resources struct {
	Face         font.Face
	PortalIcon   *image.NRGBA
	SteddingIcon *image.NRGBA
}

// NewResources builds the run's resources: the label font face sized for
// the given DPI plus the two icon sprites.
func NewResources(fontData []byte, dpi float64, portalIcon, steddingIcon *image.NRGBA) (*Resources, error) {
	face, err := LoadFontFace(fontData, PtToPx(LabelFontSizePt, dpi))
	if err != nil {
		return nil, err
	}
	return &Resources{
		Face:         face,
		PortalIcon:   portalIcon,
		SteddingIcon: steddingIcon,
	}, nil
}
