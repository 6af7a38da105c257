package areatracker

import "testing"

func TestLoadFace(t *testing.T) {
	face, err := LoadFace(12)
	if err != nil {
		t.Fatal(err)
	}
	if face == nil {
		t.Fatal("LoadFace returned a nil face")
	}
	if h := face.Metrics().Height.Ceil(); h < 12 {
		t.Errorf("line height = %d, want at least 12", h)
	}

	again, err := LoadFace(12)
	if err != nil {
		t.Fatal(err)
	}
	if again != face {
		t.Error("faces of the same size should be shared")
	}
}

func TestLoadFaceRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		if _, err := LoadFace(size); err == nil {
			t.Errorf("LoadFace(%d) should fail", size)
		}
	}
}
