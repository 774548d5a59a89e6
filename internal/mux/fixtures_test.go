package mux

import "handreader/pkg/deck"

func cards(s string) deck.Hand {
	return deck.CardsFromString(s)
}
