// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// constants.go: shared minima and probability bounds used by constructors.

package builder

// Method names prefix errors with the constructor for context.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodDisjointEdges     = "DisjointEdges"
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	methodRandomDAG         = "RandomDAG"
)

// Minimum node counts per topology.
const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4 // outer ring of n-1 ≥ 3
	minCompleteNodes = 1
	minPartition     = 1
	minGridDim       = 1
	minRandomNodes   = 1
)

// Probability bounds for RandomSparse and RandomDAG, inclusive.
const (
	probMin = 0.0
	probMax = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 256
