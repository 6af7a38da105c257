package areatracker

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// RemapTransform moves region coordinates from one map layout to another.
// Coordinates are divided down to cell units of the original layout,
// offset, and scaled up to the new one. The first four vertices of every
// region are its corners and are corrected for the margin that separates
// neighboring regions in each layout.
type RemapTransform struct {
	OriginalMargin   int
	OriginalHalfSize int
	XOffset, YOffset int
	NewHalfSize      int
	NewMargin        int
}

// ParseRemapArgs reads the six integer arguments of the remap tool in order:
// original margin, original half size, x offset, y offset, new half size,
// new margin.
func ParseRemapArgs(args []string) (RemapTransform, error) {
	if len(args) != 6 {
		return RemapTransform{}, fmt.Errorf("areatracker: remap needs 6 arguments, got %d", len(args))
	}
	var v [6]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return RemapTransform{}, fmt.Errorf("areatracker: remap argument %d: %w", i+1, err)
		}
		v[i] = n
	}
	t := RemapTransform{
		OriginalMargin:   v[0],
		OriginalHalfSize: v[1],
		XOffset:          v[2],
		YOffset:          v[3],
		NewHalfSize:      v[4],
		NewMargin:        v[5],
	}
	if t.OriginalHalfSize == 0 {
		return RemapTransform{}, errors.New("areatracker: remap original half size must not be zero")
	}
	return t, nil
}

// cornerMargin returns the direction the margin moves the i-th corner of a
// region inward. Boss regions are only inset vertically, with the top
// corners pushed up instead of down.
func cornerMargin(i int, boss bool) (dx, dy int) {
	switch i {
	case 0:
		if boss {
			return 0, -1
		}
		return 1, 1
	case 1:
		if boss {
			return 0, -1
		}
		return -1, 1
	case 2:
		if boss {
			return 0, -1
		}
		return -1, -1
	case 3:
		if boss {
			return 0, -1
		}
		return 1, -1
	}
	return 0, 0
}

// Apply maps the i-th vertex of a region.
func (t RemapTransform) Apply(i int, p image.Point, boss bool) image.Point {
	dx, dy := cornerMargin(i, boss)
	x := p.X - dx*t.OriginalMargin
	y := p.Y - dy*t.OriginalMargin

	x = (x/t.OriginalHalfSize + t.XOffset) * t.NewHalfSize
	y = (y/t.OriginalHalfSize + t.YOffset) * t.NewHalfSize

	return image.Pt(x+dx*t.NewMargin, y+dy*t.NewMargin)
}

// Remap rewrites one region file. Lines without a coordinate pair are
// dropped.
func (t RemapTransform) Remap(w io.Writer, r io.Reader, boss bool) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	i := 0
	for n := 1; sc.Scan(); n++ {
		line := stripComment(sc.Text())
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return fmt.Errorf("line %d: invalid x coordinate (%s)", n, xs)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return fmt.Errorf("line %d: invalid y coordinate (%s)", n, ys)
		}
		p := t.Apply(i, image.Pt(x, y), boss)
		fmt.Fprintf(bw, "%d,%d\n", p.X, p.Y)
		i++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// RemapDir rewrites every region file in dir into dir/new, keeping file
// names. It returns the names of the files written.
func (t RemapTransform) RemapDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("areatracker: list region files: %w", err)
	}
	out := filepath.Join(dir, "new")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("areatracker: create output directory: %w", err)
	}

	var written []string
	for _, path := range files {
		name := filepath.Base(path)
		if err := t.remapFile(path, filepath.Join(out, name), strings.HasPrefix(name, "Boss ")); err != nil {
			return written, fmt.Errorf("areatracker: remap %s: %w", name, err)
		}
		written = append(written, name)
	}
	logger.WithField("dir", out).Infof("remapped %d region files", len(written))
	return written, nil
}

func (t RemapTransform) remapFile(src, dst string, boss bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	outFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := t.Remap(outFile, in, boss); err != nil {
		outFile.Close()
		os.Remove(dst)
		return err
	}
	return outFile.Close()
}
