package mapink

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"testing"
)

// jfifHeader builds a minimal JPEG prefix carrying a JFIF APP0 segment
// with the given density units and x-density.
func jfifHeader(units byte, density uint16) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xff, 0xd8}) // SOI
	seg := make([]byte, 0, 18)
	seg = append(seg, 0xff, 0xe0)       // APP0
	seg = append(seg, 0x00, 0x10)       // length 16
	seg = append(seg, "JFIF\x00"...)    // identifier
	seg = append(seg, 0x01, 0x02)       // version
	seg = append(seg, units)            // density units
	seg = binary.BigEndian.AppendUint16(seg, density)
	seg = binary.BigEndian.AppendUint16(seg, density)
	seg = append(seg, 0x00, 0x00) // no thumbnail
	b.Write(seg)
	return b.Bytes()
}

// pngWithPhys builds a minimal PNG prefix carrying a pHYs chunk.
func pngWithPhys(ppu uint32, unit byte) []byte {
	var b bytes.Buffer
	b.Write(pngSignature)
	// IHDR (content irrelevant for the sniffer, length must be right)
	writeChunk(&b, "IHDR", make([]byte, 13))
	body := make([]byte, 9)
	binary.BigEndian.PutUint32(body[0:4], ppu)
	binary.BigEndian.PutUint32(body[4:8], ppu)
	body[8] = unit
	writeChunk(&b, "pHYs", body)
	writeChunk(&b, "IEND", nil)
	return b.Bytes()
}

func writeChunk(b *bytes.Buffer, typ string, body []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(body)))
	b.Write(length[:])
	b.WriteString(typ)
	b.Write(body)
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(body)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	b.Write(sum[:])
}

func TestDetectDPI(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   float64
		wantOK bool
	}{
		{name: "jfif dpi", data: jfifHeader(1, 300), want: 300, wantOK: true},
		{name: "jfif dpcm", data: jfifHeader(2, 100), want: 254, wantOK: true},
		{name: "jfif aspect only", data: jfifHeader(0, 1), wantOK: false},
		{name: "png metre", data: pngWithPhys(11811, 1), want: 11811 * 0.0254, wantOK: true},
		{name: "png unknown unit", data: pngWithPhys(100, 0), wantOK: false},
		{name: "garbage", data: []byte("not an image"), wantOK: false},
		{name: "empty", data: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectDPI(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 0.01 {
				t.Errorf("dpi = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectDPI_RealEncoders(t *testing.T) {
	// Go's encoders emit no density metadata; the sniffer must report
	// that honestly rather than inventing a value.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	if _, ok := DetectDPI(pngBuf.Bytes()); ok {
		t.Error("expected no density in Go-encoded PNG")
	}

	var jpgBuf bytes.Buffer
	if err := jpeg.Encode(&jpgBuf, img, nil); err != nil {
		t.Fatal(err)
	}
	if dpi, ok := DetectDPI(jpgBuf.Bytes()); ok && dpi == 0 {
		t.Errorf("detected zero dpi")
	}
}
