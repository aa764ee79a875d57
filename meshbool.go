// Package meshbool computes boolean combinations (union, intersection,
// difference, symmetric difference, and pure re-triangulation) of two
// triangulated, consistently oriented closed surfaces. Results carry
// per-facet provenance back to the input facet lists.
//
// This package wires the engine in pkg/boolean to its default
// collaborators: the plane-splitting intersection resolver in
// pkg/resolve and the solid-angle winding field in pkg/winding. Callers
// needing a different resolution strategy construct a boolean.Engine
// directly.
package meshbool

import (
	"github.com/csgeom/meshbool/pkg/boolean"
	"github.com/csgeom/meshbool/pkg/mesh"
	"github.com/csgeom/meshbool/pkg/resolve"
	"github.com/csgeom/meshbool/pkg/winding"
)

// New returns an engine wired with the default collaborators.
func New() *boolean.Engine {
	return &boolean.Engine{
		Resolver: resolve.NewPlaneSplitter(),
		Field:    winding.NewSolidAngleField(),
	}
}

// Union returns the volume covered by either solid.
func Union(a, b *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return New().Apply(a, b, boolean.Union)
}

// Intersect returns the volume covered by both solids.
func Intersect(a, b *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return New().Apply(a, b, boolean.Intersect)
}

// Minus returns the volume of a not covered by b.
func Minus(a, b *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return New().Apply(a, b, boolean.Minus)
}

// Xor returns the volume covered by exactly one solid.
func Xor(a, b *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return New().Apply(a, b, boolean.Xor)
}

// Resolve re-triangulates a single mesh conflict-free, keeping every
// facet. Provenance is the identity for an already conflict-free input.
func Resolve(a *mesh.Mesh) (*mesh.Mesh, []int, error) {
	return New().Apply(a, &mesh.Mesh{}, boolean.Resolve)
}
