package handanalyzer

import (
	"handreader/pkg/deck"
)

// PossibleHand is a hand, or a stronger one, that the player can still make
// with the community cards to come
type PossibleHand struct {
	Hand Hand `json:"hand"`
	// Cards are the player's current cards that take part in making the hand
	Cards deck.Hand `json:"cards"`
	// DesiredCards are the unseen cards that would help make the hand or better
	DesiredCards deck.Hand `json:"desiredCards"`
	Outs         int       `json:"outs"`
}

// group is a set of cards of which a hand needs a certain number
type group struct {
	candidates deck.Hand
	want       int
}

// target is one way of making a hand
type target struct {
	groups []group
}

// targets lists, per hand, every way that hand can be made from a full deck
var targets = buildTargets()

// rankedDeck is the full deck ordered by rank (highest first), then by suit
var rankedDeck = buildRankedDeck()

// GetPossibleHands returns the hands stronger than the current best that can
// still be made with the remaining community cards, strongest first
func (h *HandAnalyzer) GetPossibleHands(remaining int) []PossibleHand {
	return h.index.PossibleHands(h.best.Hand, remaining)
}

// implies lists the weaker hands every completion of a hand also contains
var implies = map[Hand][]Hand{
	RoyalFlush:    {Flush, Straight},
	StraightFlush: {Flush, Straight},
	FourOfAKind:   {ThreeOfAKind, OnePair},
	FullHouse:     {ThreeOfAKind, TwoPair, OnePair},
	ThreeOfAKind:  {OnePair},
	TwoPair:       {OnePair},
}

// PossibleHands returns the hands stronger than best that can still be made
// with the remaining community cards, strongest first
// A hand is listed when one of its own targets is feasible, or when a stronger
// listed hand always contains it. Each entry covers its hand or better, so the
// cards of every stronger entry are part of it. Nothing is returned when there
// are no community cards to come.
func (c *CardIndex) PossibleHands(best Hand, remaining int) []PossibleHand {
	possible := make([]PossibleHand, 0)
	if remaining <= 0 {
		return possible
	}

	supporting := make(map[deck.Card]bool)
	desired := make(map[deck.Card]bool)
	implied := make(map[Hand]bool)
	for _, hand := range Hands {
		if hand <= best {
			break
		}

		feasible := c.collect(hand, remaining, supporting, desired)
		if !(feasible || implied[hand]) || len(desired) == 0 {
			continue
		}

		for _, weaker := range implies[hand] {
			implied[weaker] = true
		}

		possible = append(possible, c.possibleHand(hand, supporting, desired))
	}

	return possible
}

// minSupport is the number of a hand's defining cards a player must already
// hold for the hand to count as a draw
// The cards to come must be able to supply the rest, and a draw always holds at
// least two cards of its shape (one for a pair).
func minSupport(coreSize, remaining int) int {
	held := coreSize - remaining
	floor := coreSize - 1
	if floor > 2 {
		floor = 2
	}

	if held < floor {
		return floor
	}

	return held
}

// collect adds the held and unseen cards of every feasible target of the hand,
// and returns true if any target was feasible
func (c *CardIndex) collect(hand Hand, remaining int, supporting, desired map[deck.Card]bool) bool {
	minHeld := minSupport(hand.coreSize(), remaining)

	found := false
	for _, t := range targets[hand] {
		if !c.feasible(t, minHeld, remaining) {
			continue
		}

		found = true

		for _, g := range t.groups {
			held := 0
			for _, card := range g.candidates {
				if c.Has(card) {
					supporting[card] = true
					held++
				}
			}

			if held >= g.want {
				continue
			}

			for _, card := range g.candidates {
				if !c.Has(card) {
					desired[card] = true
				}
			}
		}
	}

	return found
}

func (c *CardIndex) possibleHand(hand Hand, supporting, desired map[deck.Card]bool) PossibleHand {
	p := PossibleHand{
		Hand:         hand,
		Cards:        make(deck.Hand, 0, len(supporting)),
		DesiredCards: make(deck.Hand, 0, len(desired)),
	}

	for _, card := range c.cards {
		if supporting[card] {
			p.Cards = append(p.Cards, card)
		}
	}

	for _, card := range rankedDeck {
		if desired[card] {
			p.DesiredCards = append(p.DesiredCards, card)
		}
	}

	p.Outs = len(p.DesiredCards)
	return p
}

// feasible returns true if the target holds enough cards already and the
// remaining community cards can supply the rest
// A target that needs nothing more is the shape already held in fewer than
// five cards, which the cards to come turn into a hand.
func (c *CardIndex) feasible(t target, minHeld, remaining int) bool {
	held, needed := 0, 0
	for _, g := range t.groups {
		have, unseen := 0, 0
		for _, card := range g.candidates {
			if c.Has(card) {
				have++
			} else {
				unseen++
			}
		}

		if have > g.want {
			have = g.want
		}

		if unseen < g.want-have {
			return false
		}

		held += have
		needed += g.want - have
	}

	return needed <= remaining && held >= minHeld
}

func buildTargets() map[Hand][]target {
	t := make(map[Hand][]target)

	for _, suit := range deck.Suits {
		t[RoyalFlush] = append(t[RoyalFlush], target{
			groups: []group{{candidates: windowCards(royalRanks, suit), want: 5}},
		})

		t[Flush] = append(t[Flush], target{
			groups: []group{{candidates: suitCards(suit), want: 5}},
		})
	}

	for _, w := range straightWindows {
		for _, suit := range deck.Suits {
			t[StraightFlush] = append(t[StraightFlush], target{
				groups: []group{{candidates: windowCards(w, suit), want: 5}},
			})
		}
	}

	for _, w := range straightWindowsAceHigh {
		groups := make([]group, 0, 5)
		for _, rank := range w {
			groups = append(groups, group{candidates: rankCards(rank), want: 1})
		}

		t[Straight] = append(t[Straight], target{groups: groups})
	}

	for rank := deck.Ace; rank >= 2; rank-- {
		t[FourOfAKind] = append(t[FourOfAKind], target{
			groups: []group{{candidates: rankCards(rank), want: 4}},
		})

		t[ThreeOfAKind] = append(t[ThreeOfAKind], target{
			groups: []group{{candidates: rankCards(rank), want: 3}},
		})

		t[OnePair] = append(t[OnePair], target{
			groups: []group{{candidates: rankCards(rank), want: 2}},
		})

		for other := deck.Ace; other >= 2; other-- {
			if other == rank {
				continue
			}

			t[FullHouse] = append(t[FullHouse], target{
				groups: []group{
					{candidates: rankCards(rank), want: 3},
					{candidates: rankCards(other), want: 2},
				},
			})

			if other < rank {
				t[TwoPair] = append(t[TwoPair], target{
					groups: []group{
						{candidates: rankCards(rank), want: 2},
						{candidates: rankCards(other), want: 2},
					},
				})
			}
		}
	}

	return t
}

func buildRankedDeck() deck.Hand {
	cards := make(deck.Hand, 0, 52)
	for rank := deck.Ace; rank >= 2; rank-- {
		cards = append(cards, rankCards(rank)...)
	}

	return cards
}

func rankCards(rank int) deck.Hand {
	if rank == deck.LowAce {
		rank = deck.Ace
	}

	cards := make(deck.Hand, 0, 4)
	for _, suit := range deck.Suits {
		cards = append(cards, deck.Card{Rank: rank, Suit: suit})
	}

	return cards
}

func suitCards(suit deck.Suit) deck.Hand {
	cards := make(deck.Hand, 0, 13)
	for rank := deck.Ace; rank >= 2; rank-- {
		cards = append(cards, deck.Card{Rank: rank, Suit: suit})
	}

	return cards
}

func windowCards(w window, suit deck.Suit) deck.Hand {
	cards := make(deck.Hand, 0, 5)
	for _, rank := range w {
		if rank == deck.LowAce {
			rank = deck.Ace
		}

		cards = append(cards, deck.Card{Rank: rank, Suit: suit})
	}

	return cards
}
