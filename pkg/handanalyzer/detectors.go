package handanalyzer

import (
	"handreader/pkg/deck"
)

// detector attempts to find the cards that make a hand
type detector func(c *CardIndex) (deck.Hand, bool)

// detectors are ordered by strength, strongest first
var detectors = []struct {
	hand   Hand
	detect detector
}{
	{RoyalFlush, (*CardIndex).RoyalFlush},
	{StraightFlush, (*CardIndex).StraightFlush},
	{FourOfAKind, (*CardIndex).FourOfAKind},
	{FullHouse, (*CardIndex).FullHouse},
	{Flush, (*CardIndex).Flush},
	{Straight, (*CardIndex).Straight},
	{ThreeOfAKind, (*CardIndex).ThreeOfAKind},
	{TwoPair, (*CardIndex).TwoPair},
	{OnePair, (*CardIndex).OnePair},
	{HighCard, (*CardIndex).HighCard},
}

// RoyalFlush returns A-K-Q-J-T of a single suit, if possible
func (c *CardIndex) RoyalFlush() (deck.Hand, bool) {
	for _, suit := range c.suits {
		cards := c.bySuit[suit]
		if len(cards) < 5 {
			continue
		}

		if royal := royalRanks.orderInWindow(cards); len(royal) == 5 {
			return royal, true
		}
	}

	return nil, false
}

// StraightFlush returns the highest straight flush, if possible
// Windows are checked before suits so the highest window always wins
func (c *CardIndex) StraightFlush() (deck.Hand, bool) {
	for _, w := range straightWindows {
		for _, suit := range c.suits {
			cards := c.bySuit[suit]
			if len(cards) < 5 {
				continue
			}

			if sf := w.orderInWindow(cards); len(sf) == 5 {
				return sf, true
			}
		}
	}

	return nil, false
}

// FourOfAKind returns the quads and the highest remaining card as the kicker
func (c *CardIndex) FourOfAKind() (deck.Hand, bool) {
	if !c.complete() {
		return nil, false
	}

	quads := c.ranksByCount(4)
	if len(quads) == 0 {
		return nil, false
	}

	cards := c.byRank[quads[0]][:4].Clone()
	return append(cards, c.kickers(cards, 1)...), true
}

// FullHouse returns the highest trips plus the highest remaining pair
// A second set of trips can supply the pair
func (c *CardIndex) FullHouse() (deck.Hand, bool) {
	trips := c.ranksByCount(3)
	if len(trips) == 0 {
		return nil, false
	}

	tripRank := trips[0]
	for _, pairRank := range c.ranksByCount(2) {
		if pairRank == tripRank {
			continue
		}

		cards := c.byRank[tripRank][:3].Clone()
		return append(cards, c.byRank[pairRank][:2]...), true
	}

	return nil, false
}

// Flush returns the five highest cards of a suit with five or more cards
// If more than one suit qualifies, the suit holding the highest cards wins
func (c *CardIndex) Flush() (deck.Hand, bool) {
	var best deck.Hand
	for _, suit := range c.suits {
		cards := c.bySuit[suit]
		if len(cards) < 5 {
			continue
		}

		flush := cards.SortByRank()[:5]
		if best == nil || compareRanks(flush, best) > 0 {
			best = flush
		}
	}

	return best, best != nil
}

// Straight returns the highest straight, if possible
func (c *CardIndex) Straight() (deck.Hand, bool) {
	if len(c.ranks) < 5 {
		return nil, false
	}

	for _, w := range straightWindowsAceHigh {
		if s := w.orderInWindow(c.cards.SortByRank()); len(s) == 5 {
			return s, true
		}
	}

	return nil, false
}

// ThreeOfAKind returns the highest trips plus the two highest remaining cards
func (c *CardIndex) ThreeOfAKind() (deck.Hand, bool) {
	if !c.complete() {
		return nil, false
	}

	trips := c.ranksByCount(3)
	if len(trips) == 0 {
		return nil, false
	}

	cards := c.byRank[trips[0]][:3].Clone()
	return append(cards, c.kickers(cards, 2)...), true
}

// TwoPair returns the two highest pairs plus the highest remaining card
func (c *CardIndex) TwoPair() (deck.Hand, bool) {
	if !c.complete() {
		return nil, false
	}

	pairs := c.ranksByCount(2)
	if len(pairs) < 2 {
		return nil, false
	}

	cards := c.byRank[pairs[0]][:2].Clone()
	cards = append(cards, c.byRank[pairs[1]][:2]...)
	return append(cards, c.kickers(cards, 1)...), true
}

// OnePair returns the highest pair plus the three highest remaining cards
func (c *CardIndex) OnePair() (deck.Hand, bool) {
	if !c.complete() {
		return nil, false
	}

	pairs := c.ranksByCount(2)
	if len(pairs) == 0 {
		return nil, false
	}

	cards := c.byRank[pairs[0]][:2].Clone()
	return append(cards, c.kickers(cards, 3)...), true
}

// HighCard returns the five highest cards
// This always succeeds, but will return fewer than five cards if fewer are available
// (the hole cards before the flop)
func (c *CardIndex) HighCard() (deck.Hand, bool) {
	return c.kickers(nil, 5), true
}

// complete returns true if there are enough cards for a five card hand
// Below five cards only high card can be made.
func (c *CardIndex) complete() bool {
	return len(c.cards) >= 5
}

// kickers returns up to n of the highest cards not already used
func (c *CardIndex) kickers(used deck.Hand, n int) deck.Hand {
	rest := c.cards.Without(used...).SortByRank()
	if len(rest) > n {
		rest = rest[:n]
	}

	return rest
}

// compareRanks compares two hands card by card
func compareRanks(a, b deck.Hand) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Rank != b[i].Rank {
			return a[i].Rank - b[i].Rank
		}
	}

	return len(a) - len(b)
}
