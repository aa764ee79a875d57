package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestMerge(t *testing.T) {
	a := &Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	b := &Mesh{
		Vertices: []v3.Vec{{Z: 1}, {X: 1, Z: 1}, {Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}},
		Faces:    [][3]int{{0, 1, 2}, {1, 3, 2}},
	}

	m, labels := Merge(a, b)

	if got := m.VertexCount(); got != 7 {
		t.Fatalf("merged VertexCount() = %d, want 7", got)
	}
	if got := m.FaceCount(); got != 3 {
		t.Fatalf("merged FaceCount() = %d, want 3", got)
	}

	// A facets unchanged, B facets offset by |VA|.
	if m.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("facet 0 = %v, want [0 1 2]", m.Faces[0])
	}
	if m.Faces[1] != [3]int{3, 4, 5} {
		t.Errorf("facet 1 = %v, want [3 4 5]", m.Faces[1])
	}
	if m.Faces[2] != [3]int{4, 6, 5} {
		t.Errorf("facet 2 = %v, want [4 6 5]", m.Faces[2])
	}

	wantLabels := []int{0, 1, 1}
	for i, l := range labels {
		if l != wantLabels[i] {
			t.Errorf("labels[%d] = %d, want %d", i, l, wantLabels[i])
		}
	}

	if err := m.Validate(); err != nil {
		t.Errorf("merged mesh invalid: %v", err)
	}
}

func TestMergeWithEmpty(t *testing.T) {
	a := &Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
	}

	t.Run("empty B", func(t *testing.T) {
		m, labels := Merge(a, &Mesh{})
		if m.FaceCount() != 1 || m.VertexCount() != 3 {
			t.Fatalf("got %d facets, %d vertices", m.FaceCount(), m.VertexCount())
		}
		if labels[0] != 0 {
			t.Errorf("labels[0] = %d, want 0", labels[0])
		}
	})

	t.Run("empty A", func(t *testing.T) {
		m, labels := Merge(&Mesh{}, a)
		if m.FaceCount() != 1 {
			t.Fatalf("got %d facets", m.FaceCount())
		}
		if m.Faces[0] != [3]int{0, 1, 2} {
			t.Errorf("facet 0 = %v, want [0 1 2]", m.Faces[0])
		}
		if labels[0] != 1 {
			t.Errorf("labels[0] = %d, want 1", labels[0])
		}
	})
}
