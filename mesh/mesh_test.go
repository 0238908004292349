package mesh_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/soypat/contact/internal/d3"
	"github.com/soypat/contact/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleNormal(t *testing.T) {
	tri := mesh.Triangle{{}, {X: 1}, {Y: 1}}
	got := tri.Normal()
	if !d3.EqualWithin(got, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("normal: got %v, want (0,0,1)", got)
	}
}

func TestSTLWriteReadRoundTrip(t *testing.T) {
	model := cubeTriangles(2, r3.Vec{})
	var b bytes.Buffer
	if err := mesh.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 84+50*len(model) {
		t.Errorf("encoded size: got %d, want %d", b.Len(), 84+50*len(model))
	}
	got, err := mesh.ReadSTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("triangle count: got %d, want %d", len(got), len(model))
	}
	for i := range model {
		for j := 0; j < 3; j++ {
			if !d3.EqualWithin(got[i][j], model[i][j], 1e-12) {
				t.Errorf("triangle %d vertex %d: got %v, want %v", i, j, got[i][j], model[i][j])
			}
		}
	}
}

func TestSTLWriteEmpty(t *testing.T) {
	if err := mesh.WriteSTL(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error writing empty triangle slice")
	}
}

func TestCreateSTLReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	model := cubeTriangles(1, r3.Vec{X: -0.5, Y: -0.5, Z: -0.5})
	if err := mesh.CreateSTL(path, model); err != nil {
		t.Fatal(err)
	}
	got, err := mesh.ReadSTLFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("triangle count: got %d, want %d", len(got), len(model))
	}
}

func TestSurfaceVertexMerge(t *testing.T) {
	// An STL cube repeats each corner in three triangles per adjoining
	// face; the extracted surface must hold each corner exactly once.
	const side = 2.0
	model := cubeTriangles(side, r3.Vec{})
	surf, err := mesh.Surface(model, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(surf) != 8 {
		t.Fatalf("unique vertices: got %d, want 8", len(surf))
	}
	for _, want := range []r3.Vec{
		{}, {X: side}, {X: side, Y: side}, {Y: side},
		{Z: side}, {X: side, Z: side}, {X: side, Y: side, Z: side}, {Y: side, Z: side},
	} {
		found := false
		for _, v := range surf {
			if d3.EqualWithin(v, want, 1e-12) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("corner %v missing from extracted surface %v", want, surf)
		}
	}
}

func TestSurfaceDeterministicOrder(t *testing.T) {
	model := cubeTriangles(1, r3.Vec{})
	first, err := mesh.Surface(model, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := mesh.Surface(model, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("vertex order not stable across extractions: %v vs %v", first, second)
		}
	}
}

func TestSurfaceErrors(t *testing.T) {
	if _, err := mesh.Surface(nil, 0); err == nil {
		t.Error("expected error for empty triangle slice")
	}
	model := cubeTriangles(1, r3.Vec{})
	// Tolerance beyond half the largest side cannot tell vertices apart.
	if _, err := mesh.Surface(model, 10); err == nil {
		t.Error("expected error for oversized vertex tolerance")
	}
}

// cubeTriangles returns the 12 triangles of an axis-aligned cube with its
// minimum corner at ofs.
func cubeTriangles(side float64, ofs r3.Vec) []mesh.Triangle {
	v := [8]r3.Vec{
		{}, {X: side}, {X: side, Y: side}, {Y: side},
		{Z: side}, {X: side, Z: side}, {X: side, Y: side, Z: side}, {Y: side, Z: side},
	}
	for i := range v {
		v[i] = r3.Add(v[i], ofs)
	}
	idx := [12][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{2, 3, 7}, {2, 7, 6}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	model := make([]mesh.Triangle, len(idx))
	for i, t := range idx {
		model[i] = mesh.Triangle{v[t[0]], v[t[1]], v[t[2]]}
	}
	return model
}
