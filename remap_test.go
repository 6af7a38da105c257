package areatracker

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testRemap = RemapTransform{
	OriginalMargin:   2,
	OriginalHalfSize: 10,
	XOffset:          1,
	YOffset:          0,
	NewHalfSize:      20,
	NewMargin:        3,
}

func TestRemapApply(t *testing.T) {
	tests := []struct {
		name string
		i    int
		in   image.Point
		boss bool
		want image.Point
	}{
		{"area top-left", 0, image.Pt(12, 12), false, image.Pt(43, 23)},
		{"area top-right", 1, image.Pt(28, 12), false, image.Pt(77, 23)},
		{"area bottom-right", 2, image.Pt(28, 28), false, image.Pt(77, 57)},
		{"area bottom-left", 3, image.Pt(12, 28), false, image.Pt(43, 57)},
		{"later vertex", 4, image.Pt(15, 25), false, image.Pt(40, 40)},
		{"boss top", 0, image.Pt(10, 8), true, image.Pt(40, 17)},
		{"boss bottom", 2, image.Pt(30, 28), true, image.Pt(80, 57)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testRemap.Apply(tt.i, tt.in, tt.boss); got != tt.want {
				t.Errorf("Apply(%d, %v, %v) = %v, want %v", tt.i, tt.in, tt.boss, got, tt.want)
			}
		})
	}
}

func TestRemapText(t *testing.T) {
	var out strings.Builder
	err := testRemap.Remap(&out, strings.NewReader("# corners\n12,12\n28,12\n\n28,28\n12,28\n15,25\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	want := "43,23\n77,23\n77,57\n43,57\n40,40\n"
	if out.String() != want {
		t.Errorf("Remap output = %q, want %q", out.String(), want)
	}

	if err := testRemap.Remap(&out, strings.NewReader("a,1\n"), false); err == nil {
		t.Error("expected an error for a bad coordinate")
	}
}

func TestRemapDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Boss Keep.txt":   "10,8\n",
		"Forest West.txt": "12,12\n",
	})
	written, err := testRemap.RemapDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v", written)
	}
	got, err := os.ReadFile(filepath.Join(dir, "new", "Boss Keep.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "40,17\n" {
		t.Errorf("boss file = %q", got)
	}
	got, err = os.ReadFile(filepath.Join(dir, "new", "Forest West.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "43,23\n" {
		t.Errorf("area file = %q", got)
	}
}

func TestParseRemapArgs(t *testing.T) {
	got, err := ParseRemapArgs([]string{"2", "10", "1", "0", "20", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if got != testRemap {
		t.Errorf("ParseRemapArgs = %+v", got)
	}
	for _, args := range [][]string{
		{"1", "2", "3"},
		{"2", "x", "1", "0", "20", "3"},
		{"2", "0", "1", "0", "20", "3"},
	} {
		if _, err := ParseRemapArgs(args); err == nil {
			t.Errorf("ParseRemapArgs(%v) should fail", args)
		}
	}
}

func TestRemapDirRemovesFailedOutput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Boss Keep.txt":  "10,8\n",
		"Forest Bad.txt": "12,12\nx,3\n",
	})
	written, err := testRemap.RemapDir(dir)
	if err == nil {
		t.Fatal("expected an error for the bad region file")
	}
	if len(written) != 1 || written[0] != "Boss Keep.txt" {
		t.Errorf("written = %v, want only the boss file", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "new", "Forest Bad.txt")); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: stat err = %v", err)
	}
}
