package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		m         *Mesh
		wantVerts int
		wantFaces int
		wantEmpty bool
	}{
		{"empty", &Mesh{}, 0, 0, true},
		{
			"one facet",
			&Mesh{
				Vertices: []v3.Vec{{X: 0}, {X: 1}, {Y: 1}},
				Faces:    [][3]int{{0, 1, 2}},
			},
			3, 1, false,
		},
		{
			"vertices without facets",
			&Mesh{Vertices: []v3.Vec{{X: 0}, {X: 1}}},
			2, 0, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := tt.m.FaceCount(); got != tt.wantFaces {
				t.Errorf("FaceCount() = %d, want %d", got, tt.wantFaces)
			}
			if got := tt.m.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
		})
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       *Mesh
		wantErr bool
	}{
		{"empty", &Mesh{}, false},
		{
			"in bounds",
			&Mesh{
				Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
				Faces:    [][3]int{{0, 1, 2}},
			},
			false,
		},
		{
			"index too large",
			&Mesh{
				Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
				Faces:    [][3]int{{0, 1, 3}},
			},
			true,
		},
		{
			"negative index",
			&Mesh{
				Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
				Faces:    [][3]int{{0, -1, 2}},
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeshClone(t *testing.T) {
	m := &Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	c := m.Clone()
	c.Vertices[0] = v3.Vec{X: 9}
	c.Faces[0] = [3]int{2, 1, 0}

	if m.Vertices[0].X != 0 {
		t.Error("Clone() shares vertex storage with the original")
	}
	if m.Faces[0] != [3]int{0, 1, 2} {
		t.Error("Clone() shares facet storage with the original")
	}
}
