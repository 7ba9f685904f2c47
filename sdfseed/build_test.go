package sdfseed_test

import (
	"testing"

	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/ccurtis0/fast-marching-method/sdfseed"
	"github.com/deadsy/sdfx/sdf"
)

func TestBuildSeedsSphereProducesInterfaceCells(t *testing.T) {
	s, err := sdf.Sphere3D(2.0)
	if err != nil {
		t.Fatalf("Sphere3D: %v", err)
	}
	size := grid.Size{9, 9, 9}
	dx := []float64{0.5, 0.5, 0.5}
	origin := []float64{-2, -2, -2}

	indices, distances, normals, err := sdfseed.BuildSeeds(s, size, dx, origin)
	if err != nil {
		t.Fatalf("BuildSeeds: %v", err)
	}
	if len(indices) == 0 {
		t.Fatal("BuildSeeds returned no seeds")
	}
	if len(indices) != len(distances) || len(indices) != len(normals) {
		t.Fatalf("mismatched lengths: %d indices, %d distances, %d normals", len(indices), len(distances), len(normals))
	}
	for i, n := range normals {
		mag := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		if mag < 0.9 || mag > 1.1 {
			t.Errorf("normal[%d] = %v has squared magnitude %v; want ~1", i, n, mag)
		}
	}
}

func TestBuildSeedsNilSolid(t *testing.T) {
	_, _, _, err := sdfseed.BuildSeeds(nil, grid.Size{2, 2, 2}, []float64{1, 1, 1}, []float64{0, 0, 0})
	if err != sdfseed.ErrNilSolid {
		t.Errorf("err = %v; want ErrNilSolid", err)
	}
}

func TestBuildSeedsNoIntersection(t *testing.T) {
	s, err := sdf.Sphere3D(0.01)
	if err != nil {
		t.Fatalf("Sphere3D: %v", err)
	}
	size := grid.Size{4, 4, 4}
	dx := []float64{10, 10, 10}
	origin := []float64{100, 100, 100}

	_, _, _, err = sdfseed.BuildSeeds(s, size, dx, origin)
	if err != sdfseed.ErrNoSurfaceCrossing {
		t.Errorf("err = %v; want ErrNoSurfaceCrossing", err)
	}
}
