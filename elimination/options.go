// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options of the Default and PartialOrdered strategies.

package elimination

import "fmt"

// Option configures a heuristic strategy.
type Option func(*options)

type options struct {
	heuristic       Heuristic
	simplicialFirst bool
}

func defaultOptions() options {
	return options{heuristic: MinWeight, simplicialFirst: true}
}

// WithHeuristic selects the cost to minimise. Panics on an unknown value.
func WithHeuristic(h Heuristic) Option {
	if int(h) >= len(heuristicNames) {
		panic(fmt.Sprintf("elimination: WithHeuristic(%d): unknown heuristic", h))
	}
	return func(o *options) { o.heuristic = h }
}

// WithSimplicialFirst makes nodes whose neighbourhood is already complete
// win over every non-simplicial node (default true).
func WithSimplicialFirst(on bool) Option {
	return func(o *options) { o.simplicialFirst = on }
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
