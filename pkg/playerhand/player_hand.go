package playerhand

import (
	"fmt"
	"sync"

	"handreader/pkg/deck"
	"handreader/pkg/handanalyzer"
)

// PlayerHand is one player's hole cards combined with the community cards
// The index, best hand, and possible hands are calculated on first use and
// never change afterwards.
type PlayerHand struct {
	hole      deck.Hand
	community deck.Hand
	street    Street

	indexOnce sync.Once
	index     *handanalyzer.CardIndex

	bestOnce sync.Once
	best     handanalyzer.EvaluatedHand

	possibleOnce sync.Once
	possible     []handanalyzer.PossibleHand
}

// New validates the cards and returns a new PlayerHand
func New(hole, community deck.Hand) (*PlayerHand, error) {
	if len(hole) != 2 {
		return nil, CardCountError{Err: ErrHoleCardCount, Got: len(hole)}
	}

	street, ok := StreetFromCommunity(len(community))
	if !ok {
		return nil, CardCountError{Err: ErrCommunityCardCount, Got: len(community)}
	}

	all := append(hole.Clone(), community...)
	if card, found := all.Duplicate(); found {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, deck.CardToString(card))
	}

	return &PlayerHand{
		hole:      hole.Clone(),
		community: community.Clone(),
		street:    street,
	}, nil
}

// Hole returns the player's hole cards
func (p *PlayerHand) Hole() deck.Hand {
	return p.hole
}

// Community returns the community cards
func (p *PlayerHand) Community() deck.Hand {
	return p.community
}

// Cards returns the hole cards followed by the community cards
func (p *PlayerHand) Cards() deck.Hand {
	return p.Index().Cards()
}

// Street returns the street the community cards put the hand on
func (p *PlayerHand) Street() Street {
	return p.street
}

// Index returns the cards grouped by suit and by rank
func (p *PlayerHand) Index() *handanalyzer.CardIndex {
	p.indexOnce.Do(func() {
		p.index = handanalyzer.NewCardIndex(append(p.hole.Clone(), p.community...))
	})

	return p.index
}

// BestHand returns the strongest hand the cards make
func (p *PlayerHand) BestHand() handanalyzer.EvaluatedHand {
	p.bestOnce.Do(func() {
		p.best = p.Index().Evaluate()
	})

	return p.best
}

// PossibleHands returns the stronger hands still reachable with the community
// cards to come, strongest first. It is empty on the river.
func (p *PlayerHand) PossibleHands() []handanalyzer.PossibleHand {
	p.possibleOnce.Do(func() {
		p.possible = p.Index().PossibleHands(p.BestHand().Hand, p.street.Remaining())
	})

	return p.possible
}

// Strength returns the strength of the best hand
func (p *PlayerHand) Strength() int {
	return p.BestHand().Strength()
}
