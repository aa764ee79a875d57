package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// Merge concatenates two meshes into one buffer. Vertices of b follow
// vertices of a; facets of b have every index shifted by a's vertex
// count. The returned label slice tags each combined facet with its
// source solid: 0 for a, 1 for b. Merge is pure index bookkeeping and
// never inspects coordinates.
func Merge(a, b *Mesh) (*Mesh, []int) {
	m := &Mesh{
		Vertices: make([]v3.Vec, 0, len(a.Vertices)+len(b.Vertices)),
	}
	m.Vertices = append(m.Vertices, a.Vertices...)
	m.Vertices = append(m.Vertices, b.Vertices...)

	offset := len(a.Vertices)
	m.Faces = make([][3]int, 0, len(a.Faces)+len(b.Faces))
	m.Faces = append(m.Faces, a.Faces...)
	for _, f := range b.Faces {
		m.Faces = append(m.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
	}

	labels := make([]int, len(m.Faces))
	for i := len(a.Faces); i < len(m.Faces); i++ {
		labels[i] = 1
	}
	return m, labels
}
