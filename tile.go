package mapink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// TileGrid returns the number of tile columns and rows needed to cover a
// w x h image at the given tile size. Edge tiles are cropped, never
// padded, so coverage is exact.
func TileGrid(w, h, tileSize int) (cols, rows int) {
	cols = (w + tileSize - 1) / tileSize
	rows = (h + tileSize - 1) / tileSize
	return cols, rows
}

// TileName returns the deterministic file name for the tile at the given
// grid position.
func TileName(baseName string, col, row int, format Format) string {
	return fmt.Sprintf("%s_x%02d_y%02d.%s", baseName, col, row, format.Ext())
}

// TileDir returns the directory name holding the tiles of one export.
func TileDir(baseName string, tileSize int) string {
	return fmt.Sprintf("%s_tiles_%d", baseName, tileSize)
}

// TileRect returns the pixel rectangle of the tile at the given grid
// position, clipped to the image bounds.
func TileRect(w, h, tileSize, col, row int) image.Rectangle {
	r := image.Rect(
		col*tileSize, row*tileSize,
		(col+1)*tileSize, (row+1)*tileSize,
	)
	return r.Intersect(image.Rect(0, 0, w, h))
}

// ExportTiles partitions the final image into a uniform grid and writes
// each tile under dir with the same format/quality policy as the main
// export. The partition is pure: tile pixels are crops of the input,
// never resampled. Returns the number of tiles written.
func ExportTiles(img image.Image, tileSize int, dir, baseName string, format Format, quality int) (int, error) {
	if tileSize <= 0 {
		return 0, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create tile dir: %w", err)
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	cols, rows := TileGrid(w, h, tileSize)

	written := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tile := imaging.Crop(img, TileRect(w, h, tileSize, col, row))
			path := filepath.Join(dir, TileName(baseName, col, row, format))
			if err := SaveImage(tile, path, format, quality); err != nil {
				return written, fmt.Errorf("tile (%d,%d): %w", col, row, err)
			}
			written++
		}
	}
	Logger().Info("exported tiles", "dir", dir, "count", written, "grid", fmt.Sprintf("%dx%d", cols, rows))
	return written, nil
}
