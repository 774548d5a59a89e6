package handanalyzer

import (
	"math"

	"handreader/pkg/deck"
)

// EvaluatedHand is the best hand that can be made from a set of cards
type EvaluatedHand struct {
	Hand Hand `json:"hand"`
	// Cards are the cards that make the hand, primary cards first and kickers last
	Cards deck.Hand `json:"cards"`
}

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	index *CardIndex
	best  EvaluatedHand
}

// New will return a new HandAnalyzer instance
func New(cards deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{
		index: NewCardIndex(cards),
	}

	h.best = h.index.Evaluate()
	return h
}

// Evaluate runs the detectors from the strongest hand to the weakest and
// returns the first match
// Every hand above high card needs five cards, so fewer cards are always a
// high card.
func (c *CardIndex) Evaluate() EvaluatedHand {
	for _, d := range detectors {
		if cards, ok := d.detect(c); ok {
			return EvaluatedHand{
				Hand:  d.hand,
				Cards: cards,
			}
		}
	}

	panic("unreachable: high card always matches")
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.best.Hand
}

// GetCards returns the cards that make the best hand
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.best.Cards
}

// GetEvaluatedHand returns the best hand along with its cards
func (h *HandAnalyzer) GetEvaluatedHand() EvaluatedHand {
	return h.best
}

// GetStrength returns the strength of the hand
func (h *HandAnalyzer) GetStrength() int {
	return h.best.Strength()
}

// Index returns the card index the analyzer was built with
func (h *HandAnalyzer) Index() *CardIndex {
	return h.index
}

// Strength returns a number that orders hands by category first and then by
// the ranks of the cards, in the order they make the hand
func (e EvaluatedHand) Strength() int {
	ranks := make([]int, 5)
	for i, card := range e.Cards {
		if i >= len(ranks) {
			break
		}

		ranks[i] = card.Rank
	}

	// the wheel's ace plays low
	if (e.Hand == Straight || e.Hand == StraightFlush) && len(e.Cards) == 5 && e.Cards[0].Rank == 5 {
		ranks[4] = deck.LowAce
	}

	return calculateStrength(e.Hand, ranks)
}

func calculateStrength(hand Hand, ranks []int) int {
	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < 5; i++ {
		val := ranks[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}
