package boolean

import (
	"fmt"
	"sort"

	"github.com/csgeom/meshbool/pkg/mesh"
)

// InvariantError reports bookkeeping that can only arise from a defect
// in an upstream collaborator, such as a duplicate-facet group whose
// orientation votes are inconsistent. It always fails the whole call.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "boolean: invariant violation: " + e.Msg
}

// facetGroup collects every occurrence of one unordered vertex triple
// among the kept facets. Orientation is judged against the group's
// first occurrence, which is by definition consistent with itself.
type facetGroup struct {
	first       [3]int      // facet of the first occurrence
	refs        []signedRef // occurrences, signed by orientation vs first
	occurrences int
	signed      int // #consistent - #reversed
}

// resolveDuplicates collapses facets sharing the same unordered vertex
// triple to at most one survivor per triple, by signed voting:
//
//	single occurrence            keep it
//	all same orientation         keep the first occurrence
//	signed count +1              keep the first consistent occurrence
//	signed count -1              keep the first reversed occurrence
//	signed count 0               drop the group (self-canceling patch)
//	anything else                InvariantError
//
// Ties are always broken by input order, so the result is reproducible.
// Survivors keep their relative input order; provenance follows them.
func resolveDuplicates(faces [][3]int, prov []int) ([][3]int, []int, error) {
	if len(prov) != len(faces) {
		return nil, nil, &InvariantError{
			Msg: fmt.Sprintf("%d facets but %d provenance entries", len(faces), len(prov)),
		}
	}

	byTriple := make(map[[3]int]int, len(faces)) // canonical triple -> group index
	var groups []*facetGroup
	for i, f := range faces {
		key := mesh.CanonicalTriple(f)
		gi, ok := byTriple[key]
		if !ok {
			gi = len(groups)
			byTriple[key] = gi
			groups = append(groups, &facetGroup{first: f})
		}
		g := groups[gi]
		orientation := -1
		if mesh.SameCycle(g.first, f) {
			orientation = 1
		}
		g.refs = append(g.refs, newSignedRef(i, orientation))
		g.occurrences++
		g.signed += orientation
	}

	var survivors []int
	for _, g := range groups {
		switch {
		case g.occurrences == 1:
			survivors = append(survivors, g.refs[0].index())
		case g.signed == g.occurrences:
			// Pure duplication: every occurrence has the same
			// orientation, so the group is semantically one facet.
			survivors = append(survivors, g.refs[0].index())
		case g.signed == 1:
			survivors = append(survivors, firstWithSign(g.refs, false))
		case g.signed == -1:
			survivors = append(survivors, firstWithSign(g.refs, true))
		case g.signed == 0:
			// Self-canceling patch, contributes nothing.
		default:
			return nil, nil, &InvariantError{
				Msg: fmt.Sprintf("duplicate group %v has signed count %d over %d occurrences",
					g.first, g.signed, g.occurrences),
			}
		}
	}

	// Survivors were appended in group-discovery order; restore input
	// order, which group order only approximates for multi-facet groups.
	sort.Ints(survivors)

	outF := make([][3]int, len(survivors))
	outJ := make([]int, len(survivors))
	for i, idx := range survivors {
		outF[i] = faces[idx]
		outJ[i] = prov[idx]
	}
	return outF, outJ, nil
}

// firstWithSign returns the facet index of the first occurrence with
// the requested orientation. The caller guarantees one exists.
func firstWithSign(refs []signedRef, reversed bool) int {
	for _, r := range refs {
		if r.reversed() == reversed {
			return r.index()
		}
	}
	// Unreachable: signed count ±1 implies at least one such occurrence.
	return refs[0].index()
}
