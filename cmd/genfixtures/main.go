package main

import (
	"fmt"
	"os"

	"github.com/speedata/optionparser"
	"golang.org/x/exp/slog"

	"github.com/lesterpdf/fixtures/fixture"
)

func dothings() error {
	outdir := "."
	quiet := false
	op := optionparser.NewOptionParser()
	op.Banner = "Usage: genfixtures [options] command"
	op.On("--outdir DIR", "Write fixtures to DIR (default: current directory)", &outdir)
	op.On("--quiet", "Only log warnings and errors", &quiet)
	op.Command("all", "Create all fixtures (default)")
	op.Command("blank", "Create the empty A4 page fixture")
	op.Command("pattern", "Create the 4x4 pattern PNG and PDF fixtures")
	op.Command("verify", "Check the fixtures in the output directory")
	op.Command("list", "List the fixture file names")
	err := op.Parse()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cmd := "all"
	if len(op.Extra) > 0 {
		cmd = op.Extra[0]
	}
	g := fixture.New(outdir)
	switch cmd {
	case "all":
		_, err = g.All()
	case "blank":
		_, err = g.A4Blank()
	case "pattern":
		_, err = g.Pattern()
	case "verify":
		err = g.Verify()
	case "list":
		for _, name := range []string{fixture.BlankA4PDF, fixture.PatternPNG, fixture.PatternPDF} {
			fmt.Println(name)
		}
	default:
		op.Help()
		err = fmt.Errorf("unknown command %q", cmd)
	}
	return err
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
