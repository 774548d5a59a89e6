package main

import (
	"io"

	"handreader/internal/rng"
	"handreader/pkg/deck"
	"handreader/pkg/playerhand"
)

type RandomCmd struct {
	Street string `short:"s" help:"The street to deal to" enum:"preflop,flop,turn,river" default:"flop"`
	Seed   *int64 `help:"Random seed for a reproducible deal"`
}

func (r *RandomCmd) Run(out io.Writer, opts reportOptions) error {
	street, err := playerhand.ParseStreet(r.Street)
	if err != nil {
		return err
	}

	var gen rng.Generator = rng.Crypto{}
	if r.Seed != nil {
		gen = rng.Seeded(*r.Seed)
	}

	ph, err := deal(gen, street)
	if err != nil {
		return err
	}

	return writeReport(out, ph, opts)
}

// deal shuffles a fresh deck and deals two hole cards plus the community
// cards for the street
func deal(gen rng.Generator, street playerhand.Street) (*playerhand.PlayerHand, error) {
	d := deck.New()
	d.Shuffle(gen)

	hole, err := d.DrawN(2)
	if err != nil {
		return nil, err
	}

	community, err := d.DrawN(street.CommunityCards())
	if err != nil {
		return nil, err
	}

	return playerhand.New(hole, community)
}
