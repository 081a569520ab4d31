package fluid_test

import (
	"testing"

	"github.com/go-theft-auto/fluid"
)

func TestQuadGeometry(t *testing.T) {
	wantPos := [12]float32{-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0}
	if fluid.QuadPositions != wantPos {
		t.Errorf("QuadPositions = %v, want %v", fluid.QuadPositions, wantPos)
	}

	wantUV := [8]float32{0, 0, 1, 0, 1, 1, 0, 1}
	if fluid.QuadUVs != wantUV {
		t.Errorf("QuadUVs = %v, want %v", fluid.QuadUVs, wantUV)
	}

	wantIdx := [6]uint32{0, 1, 3, 1, 2, 3}
	if fluid.QuadIndices != wantIdx {
		t.Errorf("QuadIndices = %v, want %v", fluid.QuadIndices, wantIdx)
	}
}

func TestQuadIndicesInRange(t *testing.T) {
	vertices := uint32(len(fluid.QuadPositions) / 3)
	if uv := uint32(len(fluid.QuadUVs) / 2); uv != vertices {
		t.Fatalf("position count %d != uv count %d", vertices, uv)
	}
	for i, idx := range fluid.QuadIndices {
		if idx >= vertices {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
}

func TestToRadians(t *testing.T) {
	got := fluid.ToRadians(180)
	if d := got - fluid.Pi; d > 1e-6 || d < -1e-6 {
		t.Errorf("ToRadians(180) = %v, want %v", got, fluid.Pi)
	}
	if fluid.ToRadians(0) != 0 {
		t.Error("ToRadians(0) should be 0")
	}
}
