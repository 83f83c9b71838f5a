package mapink

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// Format selects the output encoding.
type Format string

// Supported output encodings. PNG is lossless and preserves alpha; JPEG
// is quality-configurable and drops the alpha channel.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
)

// ParseFormat normalizes a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported format %q (want png or jpg)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// SaveImage encodes the image to the given path. The JPEG path flattens
// alpha to fully opaque before encoding; nothing is blended in, the
// channel is simply dropped, matching the lossless path's pixel colors.
//
// The Go JPEG encoder offers no chroma-subsampling or optimizer toggles,
// so edge sharpness is controlled through the quality setting alone.
func SaveImage(img image.Image, path string, format Format, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatPNG:
		err = imaging.Encode(f, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(f, flattenAlpha(img), imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// flattenAlpha returns a copy of the image with every pixel forced fully
// opaque. Color channels are left untouched.
func flattenAlpha(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// Downscale resizes the finished composite by the given factor using a
// Lanczos filter, on a copy. A factor of 1 returns the input unchanged.
func Downscale(img *image.NRGBA, factor float64) *image.NRGBA {
	if factor == 1 {
		return img
	}
	w := int(float64(img.Bounds().Dx()) * factor)
	h := int(float64(img.Bounds().Dy()) * factor)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
