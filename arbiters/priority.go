// Package arbiters holds concrete spi.Arbiter implementations consulted
// when ranking leaves two or more equally-specific, equally-authoritative
// candidates: a fixed provider-priority order, a first-provider-wins
// shortcut, and an expression-based arbiter for policy defined outside
// the binary.
package arbiters

import (
	"context"

	"github.com/latticeconf/coordinate/spi"
)

// Priority arbitrates by a fixed ProviderID precedence list: the
// earliest-listed provider among the candidates wins. Providers not
// named in the list are treated as lowest priority and only win if no
// other candidate is from a listed provider.
type Priority struct {
	order map[spi.ProviderID]int
}

// NewPriority builds a Priority arbiter from providers listed
// highest-priority first.
func NewPriority(providers ...spi.ProviderID) *Priority {
	order := make(map[spi.ProviderID]int, len(providers))
	for i, id := range providers {
		order[id] = i
	}
	return &Priority{order: order}
}

func (p *Priority) Arbitrate(ctx context.Context, callerCoordinates spi.Coordinates, name string, candidates []spi.Value) (*spi.Value, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	bestRank, bestKnown := p.order[best.Source()]
	if !bestKnown {
		bestRank = len(p.order)
	}

	for _, c := range candidates[1:] {
		rank, known := p.order[c.Source()]
		if !known {
			rank = len(p.order)
		}
		if rank < bestRank {
			best = c
			bestRank = rank
		}
	}
	return &best, nil
}

// FirstProviderWins arbitrates by picking the first candidate in the
// slice resolve's ranking pass handed it, i.e. the one with the
// lowest index after the stable specificity sort. It defers only when
// given no candidates.
type FirstProviderWins struct{}

func (FirstProviderWins) Arbitrate(ctx context.Context, callerCoordinates spi.Coordinates, name string, candidates []spi.Value) (*spi.Value, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	first := candidates[0]
	return &first, nil
}
