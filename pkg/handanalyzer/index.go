package handanalyzer

import (
	"sort"

	"handreader/pkg/deck"
)

// CardIndex groups cards by suit and by rank
// Each group keeps the order the cards were discovered in. That order carries no
// meaning for ranking; anything that picks a kicker must sort by rank first.
type CardIndex struct {
	cards  deck.Hand
	suits  []deck.Suit
	ranks  []int
	bySuit map[deck.Suit]deck.Hand
	byRank map[int]deck.Hand
}

// NewCardIndex builds the index for the cards
func NewCardIndex(cards deck.Hand) *CardIndex {
	idx := &CardIndex{
		cards:  cards.Clone(),
		bySuit: make(map[deck.Suit]deck.Hand),
		byRank: make(map[int]deck.Hand),
	}

	for _, card := range cards {
		if _, ok := idx.bySuit[card.Suit]; !ok {
			idx.suits = append(idx.suits, card.Suit)
		}
		idx.bySuit[card.Suit] = append(idx.bySuit[card.Suit], card)

		if _, ok := idx.byRank[card.Rank]; !ok {
			idx.ranks = append(idx.ranks, card.Rank)
		}
		idx.byRank[card.Rank] = append(idx.byRank[card.Rank], card)
	}

	return idx
}

// Cards returns every indexed card in the order given
func (c *CardIndex) Cards() deck.Hand {
	return c.cards
}

// Suit returns the cards of the suit
func (c *CardIndex) Suit(suit deck.Suit) deck.Hand {
	return c.bySuit[suit]
}

// Suits returns the suits present, in discovery order
func (c *CardIndex) Suits() []deck.Suit {
	return c.suits
}

// Rank returns the cards of the rank
// A LowAce is looked up as an Ace
func (c *CardIndex) Rank(rank int) deck.Hand {
	if rank == deck.LowAce {
		rank = deck.Ace
	}

	return c.byRank[rank]
}

// Ranks returns the ranks present, in discovery order
func (c *CardIndex) Ranks() []int {
	return c.ranks
}

// Has returns true if the card is indexed
func (c *CardIndex) Has(card deck.Card) bool {
	return c.byRank[card.Rank].HasCard(card)
}

// ranksByCount returns the ranks with at least n cards, highest rank first
func (c *CardIndex) ranksByCount(n int) []int {
	ranks := make([]int, 0, len(c.ranks))
	for _, rank := range c.ranks {
		if len(c.byRank[rank]) >= n {
			ranks = append(ranks, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}
