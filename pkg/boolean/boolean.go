// Package boolean implements the winding-number boolean engine for
// pairs of closed, consistently oriented triangle meshes. The engine
// merges the inputs, hands the combined mesh to an injected
// self-intersection resolver, classifies every resulting facet by the
// integer winding numbers on its two sides, extracts the facets where
// the operation's inside/outside verdict flips, collapses exact
// duplicates by signed voting, and compacts the vertex buffer.
//
// The geometric collaborators (intersection resolution, winding-number
// evaluation, vertex compaction) are interfaces, so the engine can be
// rehosted on a different geometric kernel without touching the boolean
// algebra. Default implementations live in pkg/resolve and pkg/winding.
package boolean

import (
	"fmt"

	"github.com/csgeom/meshbool/pkg/mesh"
)

// Resolver turns a possibly self-intersecting mesh into a conflict-free
// triangulation: no two output facets properly cross. Exact coincident
// duplicates are legal output. The returned slice maps each output
// facet to the input facet it split from. Resolver errors abort the
// call; the engine never retries.
type Resolver interface {
	Resolve(m *mesh.Mesh) (*mesh.Mesh, []int, error)
}

// WindingField returns, per facet, the generalized winding number of
// each labeled solid evaluated just off the facet's two sides. Rows
// have either 4 columns (A-out, A-in, B-out, B-in) or, when solid B
// contributed no facets, 2 columns (A-out, A-in) which the engine
// zero-pads.
type WindingField interface {
	Propagate(m *mesh.Mesh, labels []int) ([][]int, error)
}

// Compactor drops unreferenced vertices from the final mesh, remapping
// facet indices and preserving facet order and exact coordinates.
type Compactor interface {
	Compact(m *mesh.Mesh) (*mesh.Mesh, []int, error)
}

// compactorFunc adapts a plain function to the Compactor interface.
type compactorFunc func(m *mesh.Mesh) (*mesh.Mesh, []int, error)

func (f compactorFunc) Compact(m *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return f(m)
}

// Engine runs boolean operations with a fixed set of collaborators.
// The zero value is not usable: Resolver and Field must be set. A nil
// Compactor falls back to mesh.RemoveUnreferenced. Engines hold no
// per-call state and are safe to reuse sequentially; every buffer is
// scoped to one Apply call.
type Engine struct {
	Resolver  Resolver
	Field     WindingField
	Compactor Compactor
}

// Apply computes op over solids a and b. It returns the result mesh and
// a provenance slice mapping each output facet to the facet it descends
// from in the concatenation of a's and b's facet lists. For Resolve, b
// may be empty and the winding field is never consulted.
func (e *Engine) Apply(a, b *mesh.Mesh, op Operation) (*mesh.Mesh, []int, error) {
	if !op.Valid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidOperation, int(op))
	}
	if e.Resolver == nil {
		return nil, nil, fmt.Errorf("boolean: %s: no resolver configured", op)
	}
	if op != Resolve && e.Field == nil {
		return nil, nil, fmt.Errorf("boolean: %s: no winding field configured", op)
	}
	if err := a.Validate(); err != nil {
		return nil, nil, fmt.Errorf("boolean: solid A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, nil, fmt.Errorf("boolean: solid B: %w", err)
	}

	combined, mergedLabels := mesh.Merge(a, b)

	resolved, prov, err := e.Resolver.Resolve(combined)
	if err != nil {
		return nil, nil, fmt.Errorf("boolean: %s: resolve: %w", op, err)
	}
	if len(prov) != resolved.FaceCount() {
		return nil, nil, &InvariantError{
			Msg: fmt.Sprintf("resolver returned %d facets but %d provenance entries",
				resolved.FaceCount(), len(prov)),
		}
	}

	labels := make([]int, resolved.FaceCount())
	for i, j := range prov {
		if j < 0 || j >= combined.FaceCount() {
			return nil, nil, &InvariantError{
				Msg: fmt.Sprintf("resolver provenance %d out of range [0,%d)", j, combined.FaceCount()),
			}
		}
		labels[i] = mergedLabels[j]
	}

	selected, err := e.classify(resolved, labels, op, b.IsEmpty())
	if err != nil {
		return nil, nil, err
	}

	kept := make([][3]int, len(selected))
	keptProv := make([]int, len(selected))
	for i, ref := range selected {
		f := resolved.Faces[ref.index()]
		if ref.reversed() {
			f = reverseFace(f)
		}
		kept[i] = f
		keptProv[i] = prov[ref.index()]
	}

	faces, outProv, err := resolveDuplicates(kept, keptProv)
	if err != nil {
		return nil, nil, err
	}

	compactor := e.Compactor
	if compactor == nil {
		compactor = compactorFunc(mesh.RemoveUnreferenced)
	}
	out, _, err := compactor.Compact(&mesh.Mesh{Vertices: resolved.Vertices, Faces: faces})
	if err != nil {
		return nil, nil, fmt.Errorf("boolean: %s: compact: %w", op, err)
	}
	return out, outProv, nil
}

// classify reduces per-solid winding numbers into keep/orientation
// decisions. Resolve keeps every facet unchanged without consulting
// the winding field.
func (e *Engine) classify(m *mesh.Mesh, labels []int, op Operation, bEmpty bool) ([]signedRef, error) {
	n := m.FaceCount()
	selected := make([]signedRef, 0, n)

	if op == Resolve {
		for i := 0; i < n; i++ {
			selected = append(selected, newSignedRef(i, 1))
		}
		return selected, nil
	}

	w, err := e.Field.Propagate(m, labels)
	if err != nil {
		return nil, fmt.Errorf("boolean: %s: winding: %w", op, err)
	}
	w4, err := padWinding(w, n, bEmpty)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		wOut := op.combine(w4[i][0], w4[i][2])
		wIn := op.combine(w4[i][1], w4[i][3])
		if s := keepInside(wOut, wIn); s != 0 {
			selected = append(selected, newSignedRef(i, s))
		}
	}
	return selected, nil
}

// padWinding normalizes a winding table to 4 columns per facet. A
// 2-column table means the field saw a single solid; that is only
// legitimate when solid B contributed no facets, so anything else is
// surfaced as a collaborator defect rather than silently zero-filled.
func padWinding(w [][]int, faces int, bEmpty bool) ([][4]int, error) {
	if len(w) != faces {
		return nil, &InvariantError{
			Msg: fmt.Sprintf("winding table has %d rows for %d facets", len(w), faces),
		}
	}
	out := make([][4]int, faces)
	for i, row := range w {
		switch len(row) {
		case 4:
			out[i] = [4]int{row[0], row[1], row[2], row[3]}
		case 2:
			if !bEmpty {
				return nil, &InvariantError{
					Msg: "2-column winding table but solid B has facets",
				}
			}
			out[i] = [4]int{row[0], row[1], 0, 0}
		default:
			return nil, &InvariantError{
				Msg: fmt.Sprintf("winding row %d has %d columns", i, len(row)),
			}
		}
	}
	return out, nil
}
