package main

import (
	"fmt"
	"io"

	"handreader/pkg/deck"
	"handreader/pkg/playerhand"
)

type EvalCmd struct {
	Hole  string `short:"H" help:"The two hole cards, i.e., 'As Ks'" required:""`
	Board string `short:"b" help:"The community cards, i.e., 'Qs Js Ts'"`
}

func (e *EvalCmd) Run(out io.Writer, opts reportOptions) error {
	hole, err := deck.ParseCards(e.Hole)
	if err != nil {
		return fmt.Errorf("could not parse hole cards: %w", err)
	}

	var board deck.Hand
	if e.Board != "" {
		if board, err = deck.ParseCards(e.Board); err != nil {
			return fmt.Errorf("could not parse board: %w", err)
		}
	}

	ph, err := playerhand.New(hole, board)
	if err != nil {
		return err
	}

	return writeReport(out, ph, opts)
}
