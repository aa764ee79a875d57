// Package resolve provides the default self-intersection resolver for
// the boolean engine. PlaneSplitter cuts every facet that properly
// crosses another facet by that facet's supporting plane, recursively,
// until no two facets cross. Exactly coincident coplanar facets are
// deliberately left alone: duplicate resolution downstream owns them.
//
// The resolver is float64-based and deterministic: candidate facets are
// visited in index order and edge cut points are computed from the
// lower-indexed endpoint, so identical inputs always yield identical
// output, bit for bit.
package resolve

import (
	"fmt"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/dhconnelly/rtreego"

	"github.com/csgeom/meshbool/pkg/boolean"
	"github.com/csgeom/meshbool/pkg/mesh"
)

// Compile-time interface check.
var _ boolean.Resolver = (*PlaneSplitter)(nil)

// relEps scales the working tolerance by the mesh bounding-box
// diagonal. On-plane classification and overlap tests use it.
const relEps = 1e-9

// PlaneSplitter is the default Resolver implementation.
type PlaneSplitter struct{}

// NewPlaneSplitter returns a PlaneSplitter.
func NewPlaneSplitter() *PlaneSplitter {
	return &PlaneSplitter{}
}

// faceEntry is an R-tree payload: a facet index with its inflated AABB.
type faceEntry struct {
	idx  int
	rect rtreego.Rect
}

func (e *faceEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Resolve returns a conflict-free triangulation of m along with a
// provenance slice mapping every output facet to the input facet it
// split from. Coincident vertices are merged first so that coincident
// facets from different input solids become index-identical.
func (ps *PlaneSplitter) Resolve(m *mesh.Mesh) (*mesh.Mesh, []int, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("resolve: %w", err)
	}

	merged, _ := mesh.MergeCoincident(m)
	for i, f := range merged.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, nil, fmt.Errorf("resolve: degenerate facet %d (%v)", i, f)
		}
	}

	s := newSplitter(merged)

	if len(merged.Faces) > 0 {
		tree := rtreego.NewTree(3, 4, 8)
		for i := range merged.Faces {
			tree.Insert(&faceEntry{idx: i, rect: s.faceRect(i)})
		}

		for i := range merged.Faces {
			cands := s.candidates(tree, i)
			s.subdivide(triangle(merged.Faces[i]), i, cands, 0)
		}
	}

	out := &mesh.Mesh{Vertices: s.verts, Faces: s.outFaces}
	return out, s.outProv, nil
}

// triangle is a facet during subdivision: indices into the growing
// vertex buffer, original orientation preserved.
type triangle [3]int

// splitter carries the per-call state of one Resolve run.
type splitter struct {
	src      *mesh.Mesh
	verts    []v3.Vec
	byCoord  map[coordKey]int
	eps      float64
	outFaces [][3]int
	outProv  []int
}

type coordKey struct {
	x, y, z float64
}

func newSplitter(m *mesh.Mesh) *splitter {
	s := &splitter{
		src:     m,
		verts:   make([]v3.Vec, len(m.Vertices)),
		byCoord: make(map[coordKey]int, len(m.Vertices)),
	}
	copy(s.verts, m.Vertices)
	for i, v := range s.verts {
		k := coordKey{v.X, v.Y, v.Z}
		if _, ok := s.byCoord[k]; !ok {
			s.byCoord[k] = i
		}
	}
	s.eps = relEps * (1 + bboxDiagonal(m.Vertices))
	return s
}

// candidates returns the indices of facets whose inflated AABB
// intersects facet i's, excluding i itself, in ascending order.
func (s *splitter) candidates(tree *rtreego.Rtree, i int) []int {
	var out []int
	for _, sp := range tree.SearchIntersect(s.faceRect(i)) {
		e := sp.(*faceEntry)
		if e.idx != i {
			out = append(out, e.idx)
		}
	}
	sort.Ints(out)
	return out
}

// faceRect builds the inflated R-tree box of input facet i.
func (s *splitter) faceRect(i int) rtreego.Rect {
	f := s.src.Faces[i]
	lo := s.verts[f[0]]
	hi := lo
	for _, idx := range f[1:] {
		lo = lo.Min(s.verts[idx])
		hi = hi.Max(s.verts[idx])
	}
	pad := s.eps
	r, err := rtreego.NewRect(
		rtreego.Point{lo.X - pad, lo.Y - pad, lo.Z - pad},
		[]float64{hi.X - lo.X + 2*pad, hi.Y - lo.Y + 2*pad, hi.Z - lo.Z + 2*pad},
	)
	if err != nil {
		// Lengths are strictly positive by construction.
		panic(fmt.Sprintf("resolve: facet %d: %v", i, err))
	}
	return r
}

// subdivide recursively cuts t against the candidate facets starting at
// position k. Candidates already examined cannot properly intersect any
// piece of t, so recursion resumes past the cutting candidate. When no
// candidate cuts t, t is emitted with its provenance.
func (s *splitter) subdivide(t triangle, prov int, cands []int, k int) {
	for ; k < len(cands); k++ {
		j := cands[k]
		n, d, ok := s.facePlane(j)
		if !ok {
			continue
		}
		if !s.properIntersect(t, j, n, d) {
			continue
		}
		for _, piece := range s.splitByPlane(t, n, d) {
			s.subdivide(piece, prov, cands, k+1)
		}
		return
	}
	s.outFaces = append(s.outFaces, [3]int(t))
	s.outProv = append(s.outProv, prov)
}

// facePlane returns the supporting plane (n, d with n·p = d) of input
// facet j. ok is false for zero-area facets, which cannot cut anything.
func (s *splitter) facePlane(j int) (v3.Vec, float64, bool) {
	f := s.src.Faces[j]
	a, b, c := s.verts[f[0]], s.verts[f[1]], s.verts[f[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Length()
	if l < s.eps*s.eps {
		return v3.Vec{}, 0, false
	}
	n = n.DivScalar(l)
	return n, n.Dot(a), true
}

func bboxDiagonal(verts []v3.Vec) float64 {
	if len(verts) == 0 {
		return 0
	}
	lo, hi := verts[0], verts[0]
	for _, v := range verts[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return hi.Sub(lo).Length()
}
