package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// RemoveUnreferenced drops every vertex not referenced by any facet.
// Facet order and exact coordinate values are preserved. The returned
// remap has one entry per input vertex: its index in the output buffer,
// or -1 if it was dropped.
func RemoveUnreferenced(m *Mesh) (*Mesh, []int, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	remap := make([]int, len(m.Vertices))
	for i := range remap {
		remap[i] = -1
	}

	out := &Mesh{Faces: make([][3]int, len(m.Faces))}
	for i, f := range m.Faces {
		var g [3]int
		for j, idx := range f {
			if remap[idx] < 0 {
				remap[idx] = len(out.Vertices)
				out.Vertices = append(out.Vertices, m.Vertices[idx])
			}
			g[j] = remap[idx]
		}
		out.Faces[i] = g
	}
	return out, remap, nil
}

// coordKey is an exact-equality map key for a vertex position.
type coordKey struct {
	x, y, z float64
}

func keyOf(v v3.Vec) coordKey {
	return coordKey{v.X, v.Y, v.Z}
}

// MergeCoincident remaps every facet index so that vertices with
// exactly equal coordinates share the index of their first occurrence.
// The vertex buffer itself is left untouched; the duplicates become
// unreferenced and are cleaned up by a later compaction. The returned
// remap maps each input vertex to its canonical index.
//
// Exact equality is intentional: coincident facets produced from two
// input solids must end up index-identical so that duplicate
// resolution can see them as the same unordered triple.
func MergeCoincident(m *Mesh) (*Mesh, []int) {
	remap := make([]int, len(m.Vertices))
	first := make(map[coordKey]int, len(m.Vertices))
	for i, v := range m.Vertices {
		k := keyOf(v)
		if j, ok := first[k]; ok {
			remap[i] = j
		} else {
			first[k] = i
			remap[i] = i
		}
	}

	out := m.Clone()
	for i, f := range out.Faces {
		out.Faces[i] = [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	return out, remap
}
