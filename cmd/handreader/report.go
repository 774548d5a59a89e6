package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"handreader/pkg/deck"
	"handreader/pkg/playerhand"
)

type reportOptions struct {
	glyphs bool
}

func (r reportOptions) cards(cards deck.Hand) string {
	if len(cards) == 0 {
		return "-"
	}

	if !r.glyphs {
		return strings.Join(strings.Split(deck.CardsToString(cards), ","), " ")
	}

	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}

// writeReport prints the street, the best hand, and the draws
func writeReport(out io.Writer, ph *playerhand.PlayerHand, opts reportOptions) error {
	best := ph.BestHand()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hole:\t%s\n", opts.cards(ph.Hole()))
	fmt.Fprintf(w, "Board:\t%s\n", opts.cards(ph.Community()))
	fmt.Fprintf(w, "Street:\t%s\n", ph.Street())
	fmt.Fprintf(w, "Hand:\t%s\n", best.Hand)
	fmt.Fprintf(w, "Cards:\t%s\n", opts.cards(best.Cards))
	fmt.Fprintf(w, "Strength:\t%d\n", best.Strength())
	if err := w.Flush(); err != nil {
		return err
	}

	possible := ph.PossibleHands()
	if len(possible) == 0 {
		if ph.Street() != playerhand.River {
			_, err := fmt.Fprintln(out, "\nNo stronger hands can be made")
			return err
		}

		return nil
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DRAW\tOUTS\tHOLDING\tNEEDS")
	for _, p := range possible {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", p.Hand, p.Outs, opts.cards(p.Cards), opts.cards(p.DesiredCards))
	}

	return w.Flush()
}
