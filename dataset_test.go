package mapink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poi.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDataset_AbsentKeysAreEmpty(t *testing.T) {
	path := writeDataset(t, `{}`)
	d, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(d.PortalStones) != 0 || len(d.Steddings) != 0 || len(d.Rivers) != 0 || len(d.Nations) != 0 {
		t.Errorf("absent keys should decode to empty lists, got %+v", d)
	}
}

func TestLoadDataset_Full(t *testing.T) {
	path := writeDataset(t, `{
		"portal_stones": [{"coord": [10, 20]}],
		"steddings": [{"coord": [100, 100], "label": "Stock"}],
		"rivers": [{"coord": [100, 100], "label": "Brandywine"}],
		"nations": [{"border": [[0,0],[10,0],[10,10]], "color": "rgb(20,40,60)"}]
	}`)
	d, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if got := d.Steddings[0].Point(); got != Pt(100, 100) {
		t.Errorf("stedding point = %v, want (100,100)", got)
	}
	if got := d.Steddings[0].Label; got != "Stock" {
		t.Errorf("stedding label = %q, want Stock", got)
	}
	pts := d.Nations[0].Points()
	if len(pts) != 3 || pts[2] != Pt(10, 10) {
		t.Errorf("nation points = %v", pts)
	}
}

func TestLoadDataset_MalformedCoord(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantIn   string
	}{
		{
			name:     "short coord",
			contents: `{"steddings": [{"coord": [100], "label": "x"}]}`,
			wantIn:   "steddings[0]",
		},
		{
			name:     "missing coord",
			contents: `{"portal_stones": [{}]}`,
			wantIn:   "portal_stones[0]",
		},
		{
			name:     "bad border vertex",
			contents: `{"nations": [{"border": [[0,0],[1]], "color": "rgb(1,2,3)"}]}`,
			wantIn:   "nations[0].border[1]",
		},
		{
			name:     "wrong type",
			contents: `{"rivers": [{"coord": "nope"}]}`,
			wantIn:   "parse dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.contents)
			_, err := LoadDataset(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not name %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
