package mapink

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the structured point/line input for one render run. Absent
// keys decode to empty lists; they are never an error.
type Dataset struct {
	PortalStones []PortalStone `json:"portal_stones"`
	Steddings    []Stedding    `json:"steddings"`
	Rivers       []River       `json:"rivers"`
	Nations      []Nation      `json:"nations"`
}

// PortalStone marks an icon-only point of interest.
type PortalStone struct {
	Coord []float64 `json:"coord"`
}

// Stedding marks an icon with an attached label.
type Stedding struct {
	Coord []float64 `json:"coord"`
	Label string    `json:"label"`
}

// River marks a label-only point of interest.
type River struct {
	Coord []float64 `json:"coord"`
	Label string    `json:"label"`
}

// Nation holds one national border segment: an ordered open polyline and
// a color spec of the form "rgb(r,g,b)".
type Nation struct {
	Border [][]float64 `json:"border"`
	Color  string      `json:"color"`
}

// LoadDataset reads and validates a dataset file. Structural problems
// (wrong types, a coord that is not exactly two numbers) are fatal and
// name the offending category and entry index.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks that every entry carries well-formed coordinates.
func (d *Dataset) Validate() error {
	for i, p := range d.PortalStones {
		if err := checkCoord(p.Coord); err != nil {
			return fmt.Errorf("portal_stones[%d]: %w", i, err)
		}
	}
	for i, s := range d.Steddings {
		if err := checkCoord(s.Coord); err != nil {
			return fmt.Errorf("steddings[%d]: %w", i, err)
		}
	}
	for i, r := range d.Rivers {
		if err := checkCoord(r.Coord); err != nil {
			return fmt.Errorf("rivers[%d]: %w", i, err)
		}
	}
	for i, n := range d.Nations {
		for j, pt := range n.Border {
			if err := checkCoord(pt); err != nil {
				return fmt.Errorf("nations[%d].border[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

func checkCoord(c []float64) error {
	if len(c) != 2 {
		return fmt.Errorf("coord must have exactly 2 numbers, got %d", len(c))
	}
	return nil
}

// Point returns the entry's coordinate as a Point. Valid only after the
// dataset has passed Validate.
func (p PortalStone) Point() Point { return Pt(p.Coord[0], p.Coord[1]) }

// Point returns the entry's coordinate as a Point.
func (s Stedding) Point() Point { return Pt(s.Coord[0], s.Coord[1]) }

// Point returns the entry's coordinate as a Point.
func (r River) Point() Point { return Pt(r.Coord[0], r.Coord[1]) }

// Points returns the border polyline as a Point slice.
func (n Nation) Points() []Point {
	pts := make([]Point, len(n.Border))
	for i, c := range n.Border {
		pts[i] = Pt(c[0], c[1])
	}
	return pts
}
