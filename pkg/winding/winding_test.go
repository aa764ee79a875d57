package winding

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/csgeom/meshbool/pkg/mesh"
)

// cube returns a closed axis-aligned cube with outward-oriented facets
// and its minimum corner at origin.
func cube(origin v3.Vec, size float64) *mesh.Mesh {
	verts := []v3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	for i := range verts {
		verts[i] = origin.Add(verts[i].MulScalar(size))
	}
	return &mesh.Mesh{
		Vertices: verts,
		Faces: [][3]int{
			{0, 3, 2}, {0, 2, 1}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{2, 3, 7}, {2, 7, 6}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
	}
}

func TestPropagateSingleSolid(t *testing.T) {
	m := cube(v3.Vec{}, 1)
	labels := make([]int, m.FaceCount())

	f := NewSolidAngleField()
	w, err := f.Propagate(m, labels)
	if err != nil {
		t.Fatalf("Propagate() error = %v", err)
	}
	if len(w) != 12 {
		t.Fatalf("got %d rows, want 12", len(w))
	}
	for i, row := range w {
		if len(row) != 2 {
			t.Fatalf("row %d has %d columns, want 2 for a single solid", i, len(row))
		}
		if row[0] != 0 || row[1] != 1 {
			t.Errorf("facet %d winding = %v, want [0 1]", i, row)
		}
	}
}

func TestPropagateDisjointSolids(t *testing.T) {
	m, labels := mesh.Merge(cube(v3.Vec{}, 1), cube(v3.Vec{X: 10}, 1))

	f := NewSolidAngleField()
	w, err := f.Propagate(m, labels)
	if err != nil {
		t.Fatalf("Propagate() error = %v", err)
	}
	for i, row := range w {
		if len(row) != 4 {
			t.Fatalf("row %d has %d columns, want 4", i, len(row))
		}
		want := []int{0, 1, 0, 0}
		if labels[i] == 1 {
			want = []int{0, 0, 0, 1}
		}
		for j := range want {
			if row[j] != want[j] {
				t.Errorf("facet %d winding = %v, want %v", i, row, want)
				break
			}
		}
	}
}

func TestPropagateCoincidentSolids(t *testing.T) {
	// Both solids occupy the same volume: every facet sees both
	// solids inside and neither outside.
	m, labels := mesh.Merge(cube(v3.Vec{}, 1), cube(v3.Vec{}, 1))

	f := NewSolidAngleField()
	w, err := f.Propagate(m, labels)
	if err != nil {
		t.Fatalf("Propagate() error = %v", err)
	}
	for i, row := range w {
		if row[0] != 0 || row[1] != 1 || row[2] != 0 || row[3] != 1 {
			t.Errorf("facet %d winding = %v, want [0 1 0 1]", i, row)
		}
	}
}

func TestPropagateNestedSolids(t *testing.T) {
	// B strictly inside A: facets of B see A inside on both sides.
	inner := cube(v3.Vec{X: 0.25, Y: 0.25, Z: 0.25}, 0.5)
	m, labels := mesh.Merge(cube(v3.Vec{}, 1), inner)

	f := NewSolidAngleField()
	w, err := f.Propagate(m, labels)
	if err != nil {
		t.Fatalf("Propagate() error = %v", err)
	}
	for i, row := range w {
		var want []int
		if labels[i] == 0 {
			want = []int{0, 1, 0, 0}
		} else {
			want = []int{1, 1, 0, 1}
		}
		for j := range want {
			if row[j] != want[j] {
				t.Errorf("facet %d (label %d) winding = %v, want %v", i, labels[i], row, want)
				break
			}
		}
	}
}

func TestPropagateErrors(t *testing.T) {
	m := cube(v3.Vec{}, 1)
	f := NewSolidAngleField()

	t.Run("label count mismatch", func(t *testing.T) {
		if _, err := f.Propagate(m, []int{0}); err == nil {
			t.Error("Propagate() accepted short label slice")
		}
	})

	t.Run("label out of range", func(t *testing.T) {
		labels := make([]int, m.FaceCount())
		labels[3] = 2
		if _, err := f.Propagate(m, labels); err == nil {
			t.Error("Propagate() accepted label 2")
		}
	})

	t.Run("zero-area facet", func(t *testing.T) {
		bad := m.Clone()
		bad.Faces[0] = [3]int{0, 0, 1}
		labels := make([]int, bad.FaceCount())
		if _, err := f.Propagate(bad, labels); err == nil {
			t.Error("Propagate() accepted zero-area facet")
		}
	})
}
