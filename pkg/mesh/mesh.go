// Package mesh defines the indexed triangle mesh used by the boolean
// engine, plus the index-bookkeeping utilities that surround it:
// merging two meshes into one labeled buffer, compacting away
// unreferenced vertices, and canonicalizing facet vertex triples.
package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh: an ordered vertex buffer and an
// ordered facet buffer of index triples into it. Facets are oriented;
// (a,b,c) and (c,b,a) describe the same triangle with opposite normals.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of facets.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no facets.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]v3.Vec, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	return c
}

// Validate checks that every facet index is within the vertex buffer.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh: facet %d references vertex %d, have %d vertices", i, idx, n)
			}
		}
	}
	return nil
}
