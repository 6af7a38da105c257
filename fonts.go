package areatracker

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Region labels are drawn in a bold sans face. Faces are shared across
// sessions and keyed by point size.
var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error

	faceCache *ristretto.Cache[int, font.Face]
)

func init() {
	cache, err := ristretto.NewCache(&ristretto.Config[int, font.Face]{
		NumCounters:        1000,
		MaxCost:            64, // faces, not bytes
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		panic(err)
	}
	faceCache = cache
}

func boldTTF() (*truetype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

// LoadFace returns the bold label face at the given point size.
func LoadFace(size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("areatracker: font size %d must be positive", size)
	}
	if face, ok := faceCache.Get(size); ok {
		return face, nil
	}
	ft, err := boldTTF()
	if err != nil {
		return nil, fmt.Errorf("areatracker: parse bold font: %w", err)
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faceCache.Set(size, face, 1)
	faceCache.Wait()
	return face, nil
}
