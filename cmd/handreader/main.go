package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Short   bool             `help:"Print cards as As, Td instead of suit symbols"`

	Eval   EvalCmd   `cmd:"" help:"Read a hand from hole and board cards"`
	Random RandomCmd `cmd:"" help:"Deal a random hand and read it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handreader"),
		kong.Description("Poker hand reader: best hand and the draws still live"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	// suit symbols only make sense on a terminal
	glyphs := !cli.Short && term.IsTerminal(int(os.Stdout.Fd()))

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	ctx.Bind(reportOptions{glyphs: glyphs})
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
