// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Heuristic enumeration, node scoring and candidate comparison.

package elimination

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
)

// Heuristic names the cost the Default strategy minimises.
type Heuristic uint8

const (
	// MinWeight minimises the log-weight of the created clique (log of the
	// product of its domain sizes); fill-in count breaks ties.
	MinWeight Heuristic = iota
	// MinFill minimises the number of fill-in edges; clique weight breaks ties.
	MinFill
	// MinDegree minimises the current degree; clique weight breaks ties.
	MinDegree
	// WeightedFill minimises the sum over fill-in edges {a,b} of |D_a|·|D_b|;
	// clique weight breaks ties.
	WeightedFill
)

// tieEps is the tolerance under which two costs are considered equal.
const tieEps = 1e-9

var heuristicNames = [...]string{
	MinWeight:    "min-weight",
	MinFill:      "min-fill",
	MinDegree:    "min-degree",
	WeightedFill: "weighted-fill",
}

// String returns the configuration name of h.
func (h Heuristic) String() string {
	if int(h) < len(heuristicNames) {
		return heuristicNames[h]
	}

	return "unknown"
}

// ParseHeuristic maps a configuration name (case-insensitive) to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for h, n := range heuristicNames {
		if n == key {
			return Heuristic(h), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownHeuristic, "ParseHeuristic(%q)", name)
}

// score is the cached cost of a candidate.
type score struct {
	simplicial bool
	primary    float64
	secondary  float64
}

// better reports whether s strictly beats o. Equal scores are not better,
// which leaves the earlier (smaller) id in place during an ascending scan.
func (s score) better(o score, simplicialFirst bool) bool {
	if simplicialFirst && s.simplicial != o.simplicial {
		return s.simplicial
	}
	if d := s.primary - o.primary; math.Abs(d) > tieEps {
		return d < 0
	}
	if d := s.secondary - o.secondary; math.Abs(d) > tieEps {
		return d < 0
	}

	return false
}

// scoreOf evaluates node v of g under h.
// Complexity: O(d²) for a node of degree d.
func scoreOf(g *core.UndiGraph, domains core.DomainSizes, h Heuristic, v core.NodeID) score {
	nbrs, _ := g.Neighbours(v)
	clique := core.NewNodeSet(nbrs...)
	clique.Insert(v)
	weight := domains.LogWeight(clique)

	fill, wfill := 0, 0.0
	for _, e := range missingEdges(g, nbrs) {
		fill++
		wfill += float64(domainOf(domains, e.U) * domainOf(domains, e.V))
	}

	s := score{simplicial: fill == 0}
	switch h {
	case MinFill:
		s.primary, s.secondary = float64(fill), weight
	case MinDegree:
		s.primary, s.secondary = float64(len(nbrs)), weight
	case WeightedFill:
		s.primary, s.secondary = wfill, weight
	default:
		s.primary, s.secondary = weight, float64(fill)
	}

	return s
}

// domainOf returns the domain size of n, or 1 when unknown.
func domainOf(domains core.DomainSizes, n core.NodeID) int {
	if k, ok := domains[n]; ok && k > 0 {
		return k
	}

	return 1
}
