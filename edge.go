package areatracker

import "image"

// Edge is one polygon boundary segment. Duplicate is set on both copies of a
// segment shared by two regions.
type Edge struct {
	A, B      image.Point
	Duplicate bool
}

// Matches reports whether e and o join the same two points, in either
// direction. Coordinates must be identical; there is no tolerance.
func (e Edge) Matches(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// EdgeSet accumulates region edges and flags the ones shared between regions.
// Each incoming edge is compared against the accepted edges with a linear
// scan; the region counts this targets keep the quadratic cost small.
type EdgeSet struct {
	accepted []*Edge
}

// Add offers e to the set. If an accepted edge matches, both are flagged
// duplicate, e is not accepted, and Add returns true.
func (s *EdgeSet) Add(e *Edge) bool {
	for _, a := range s.accepted {
		if a.Matches(*e) {
			a.Duplicate = true
			e.Duplicate = true
			return true
		}
	}
	s.accepted = append(s.accepted, e)
	return false
}

// AddRegion offers every edge of r.
func (s *EdgeSet) AddRegion(r *Region) {
	for _, e := range r.Edges() {
		e := e
		s.Add(&e)
	}
}

// Accepted returns the distinct edges in the order they were first seen.
func (s *EdgeSet) Accepted() []*Edge {
	return s.accepted
}

// Duplicates returns the accepted edges that are shared by two regions.
func (s *EdgeSet) Duplicates() []*Edge {
	var dups []*Edge
	for _, e := range s.accepted {
		if e.Duplicate {
			dups = append(dups, e)
		}
	}
	return dups
}

// SharedEdges returns the edges shared between regions of the set.
func SharedEdges(regions *RegionSet) []*Edge {
	var s EdgeSet
	for _, r := range regions.All() {
		s.AddRegion(r)
	}
	return s.Duplicates()
}
