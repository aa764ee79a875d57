// Package winding provides the default winding-number collaborator for
// the boolean engine. SolidAngleField evaluates generalized winding
// numbers directly, by summing the signed solid angles every facet of a
// solid subtends at a query point. For a closed, consistently oriented
// surface the sum is 4π times the integer winding number.
//
// Each facet is sampled at its centroid offset a small distance along
// and against its normal, giving the winding of each labeled solid on
// the facet's outside and inside. The evaluation is O(F²) and
// single-threaded; it favors determinism and robustness on moderate
// meshes over scalability.
package winding

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/csgeom/meshbool/pkg/boolean"
	"github.com/csgeom/meshbool/pkg/mesh"
)

// Compile-time interface check.
var _ boolean.WindingField = (*SolidAngleField)(nil)

// relOffset scales the query-point offset by the bounding-box diagonal.
// It must clear floating-point noise without crossing nearby surface
// sheets; resolved meshes have no crossings, so sheets coincide or are
// well separated.
const relOffset = 1e-6

// SolidAngleField is the default WindingField implementation.
type SolidAngleField struct{}

// NewSolidAngleField returns a SolidAngleField.
func NewSolidAngleField() *SolidAngleField {
	return &SolidAngleField{}
}

// Propagate returns one row per facet. Rows are
// [A-outside, A-inside, B-outside, B-inside] when label 1 occurs, and
// [A-outside, A-inside] when the mesh holds a single solid, matching
// the engine's zero-padding contract.
func (f *SolidAngleField) Propagate(m *mesh.Mesh, labels []int) ([][]int, error) {
	if len(labels) != m.FaceCount() {
		return nil, fmt.Errorf("winding: %d labels for %d facets", len(labels), m.FaceCount())
	}
	hasB := false
	for i, l := range labels {
		if l != 0 && l != 1 {
			return nil, fmt.Errorf("winding: facet %d has label %d, want 0 or 1", i, l)
		}
		if l == 1 {
			hasB = true
		}
	}

	offset := relOffset * (1 + bboxDiagonal(m.Vertices))

	out := make([][]int, m.FaceCount())
	for i, face := range m.Faces {
		a := m.Vertices[face[0]]
		b := m.Vertices[face[1]]
		c := m.Vertices[face[2]]

		n := b.Sub(a).Cross(c.Sub(a))
		l := n.Length()
		if l == 0 {
			return nil, fmt.Errorf("winding: facet %d has zero area", i)
		}
		n = n.DivScalar(l)

		centroid := a.Add(b).Add(c).MulScalar(1.0 / 3.0)
		pOut := centroid.Add(n.MulScalar(offset))
		pIn := centroid.Sub(n.MulScalar(offset))

		aOut, bOut := windingAt(m, labels, pOut)
		aIn, bIn := windingAt(m, labels, pIn)
		if hasB {
			out[i] = []int{aOut, aIn, bOut, bIn}
		} else {
			out[i] = []int{aOut, aIn}
		}
	}
	return out, nil
}

// windingAt sums solid angles of all facets at p, separately per label,
// and rounds each sum to the nearest integer winding number.
func windingAt(m *mesh.Mesh, labels []int, p v3.Vec) (int, int) {
	var sum [2]float64
	for i, f := range m.Faces {
		sum[labels[i]] += solidAngle(
			m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]], p)
	}
	const fourPi = 4 * math.Pi
	return int(math.Round(sum[0] / fourPi)), int(math.Round(sum[1] / fourPi))
}

// solidAngle returns the signed solid angle triangle (a,b,c) subtends
// at p, by the van Oosterom–Strackee formula.
func solidAngle(a, b, c, p v3.Vec) float64 {
	ra := a.Sub(p)
	rb := b.Sub(p)
	rc := c.Sub(p)

	la := ra.Length()
	lb := rb.Length()
	lc := rc.Length()

	num := ra.Dot(rb.Cross(rc))
	den := la*lb*lc + ra.Dot(rb)*lc + ra.Dot(rc)*lb + rb.Dot(rc)*la
	return 2 * math.Atan2(num, den)
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
