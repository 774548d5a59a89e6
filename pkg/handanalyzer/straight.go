package handanalyzer

import "handreader/pkg/deck"

// royalRanks are the ranks of a royal flush, which is also the ace-high straight
var royalRanks = window{deck.Ace, deck.King, deck.Queen, deck.Jack, 10}

// window is five consecutive ranks, highest first
type window [5]int

// straightWindows are the straight-flush windows, strongest first. An ace-high
// straight flush is a royal flush, so the table starts at king-high and ends
// with the wheel, where the ace plays low.
var straightWindows = buildStraightWindows()

// straightWindowsAceHigh adds the ace-high window for plain straights
var straightWindowsAceHigh = append([]window{royalRanks}, straightWindows...)

func buildStraightWindows() []window {
	windows := make([]window, 0, 9)
	for high := deck.King; high >= 5; high-- {
		var w window
		for i := range w {
			w[i] = high - i
		}

		windows = append(windows, w)
	}

	return windows
}

// contains returns true if the rank falls within the window
// An Ace is in the window if the window uses either a high or a low ace
func (w window) contains(rank int) bool {
	for _, r := range w {
		if r == rank || (r == deck.LowAce && rank == deck.Ace) {
			return true
		}
	}

	return false
}

// orderInWindow orders cards by their position in the window, highest first
// Cards outside of the window are dropped, and only the first card of each rank is kept
func (w window) orderInWindow(cards deck.Hand) deck.Hand {
	ordered := make(deck.Hand, 0, 5)
	for _, r := range w {
		for _, card := range cards {
			if card.Rank == r || (r == deck.LowAce && card.Rank == deck.Ace) {
				ordered = append(ordered, card)
				break
			}
		}
	}

	return ordered
}
