package mapink

import (
	"bytes"
	"encoding/binary"
)

// DefaultDPI is assumed when the base image carries no usable density
// metadata.
const DefaultDPI = 96.0

const metresPerInch = 0.0254

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// DetectDPI sniffs embedded print-density metadata from raw image bytes.
// It understands the JPEG JFIF APP0 density fields and the PNG pHYs
// chunk. The second return value reports whether a density was found;
// callers fall back to DefaultDPI otherwise.
func DetectDPI(data []byte) (float64, bool) {
	switch {
	case len(data) >= 2 && data[0] == 0xff && data[1] == 0xd8:
		return detectJPEGDensity(data)
	case bytes.HasPrefix(data, pngSignature):
		return detectPNGDensity(data)
	}
	return 0, false
}

// detectJPEGDensity walks JPEG marker segments looking for a JFIF APP0
// header. Units byte 1 is dots per inch, 2 is dots per centimetre.
func detectJPEGDensity(data []byte) (float64, bool) {
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xff {
			return 0, false
		}
		marker := data[i+1]
		// Standalone markers carry no length field.
		if marker == 0xd8 || (marker >= 0xd0 && marker <= 0xd9) {
			i += 2
			continue
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 || i+2+segLen > len(data) {
			return 0, false
		}
		if marker == 0xe0 && segLen >= 14 {
			seg := data[i+4 : i+2+segLen]
			if bytes.HasPrefix(seg, []byte("JFIF\x00")) {
				units := seg[7]
				xDensity := float64(binary.BigEndian.Uint16(seg[8:10]))
				switch {
				case units == 1 && xDensity > 0:
					return xDensity, true
				case units == 2 && xDensity > 0:
					return xDensity * 2.54, true
				}
				return 0, false
			}
		}
		if marker == 0xda { // start of scan, no headers past this point
			return 0, false
		}
		i += 2 + segLen
	}
	return 0, false
}

// detectPNGDensity scans PNG chunks for pHYs before the image data.
func detectPNGDensity(data []byte) (float64, bool) {
	i := len(pngSignature)
	for i+8 <= len(data) {
		chunkLen := int(binary.BigEndian.Uint32(data[i : i+4]))
		chunkType := string(data[i+4 : i+8])
		body := i + 8
		if body+chunkLen > len(data) {
			return 0, false
		}
		switch chunkType {
		case "pHYs":
			if chunkLen < 9 {
				return 0, false
			}
			ppuX := binary.BigEndian.Uint32(data[body : body+4])
			unit := data[body+8]
			if unit == 1 && ppuX > 0 { // pixels per metre
				return float64(ppuX) * metresPerInch, true
			}
			return 0, false
		case "IDAT", "IEND":
			return 0, false
		}
		i = body + chunkLen + 4 // skip CRC
	}
	return 0, false
}
