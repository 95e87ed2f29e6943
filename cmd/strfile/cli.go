package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/ops"
	"github.com/hpungsan/fortune/internal/strfile"
)

// newCLIApp creates the CLI application.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:      "strfile",
		Usage:     "Create a random-access index for a fortune cookie file",
		ArgsUsage: "infile [outfile]",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "c", Usage: "Change the delimiting character from '%' to `char`"},
			&cli.BoolFlag{Name: "s", Usage: "Silent mode; do not show a summary"},
			&cli.BoolFlag{Name: "o", Usage: "Order the strings alphabetically"},
			&cli.BoolFlag{Name: "i", Usage: "Ignore case when ordering"},
			&cli.BoolFlag{Name: "r", Usage: "Randomize the order of the strings"},
			&cli.BoolFlag{Name: "x", Usage: "Set the rotated bit"},
			&cli.BoolFlag{Name: "l", Usage: "Load an index file and display its contents"},
			&cli.StringFlag{Name: "platform", Usage: "Index layout: homebrew, linux or freebsd"},
		},
		Action: func(c *cli.Context) error {
			return strfileAction(c, cfg)
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// strfileAction indexes the input file, or displays an existing index
// with -l.
func strfileAction(c *cli.Context, cfg *config.Config) error {
	if c.NArg() < 1 {
		return outputError(errors.NewInvalidRequest("infile is required"))
	}
	infile := c.Args().Get(0)
	outfile := c.Args().Get(1)
	if outfile == "" {
		outfile = strings.TrimSuffix(infile, strfile.Extension) + strfile.Extension
	}

	if c.Bool("l") {
		out, err := ops.Dump(ops.DumpInput{Path: outfile})
		if err != nil {
			return outputError(err)
		}
		fmt.Printf("File: %s\n", out.Path)
		fmt.Println(out.Jar)
		return nil
	}

	p := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	out, err := ops.Build(cfg, p, ops.BuildInput{
		Infile:    infile,
		Outfile:   outfile,
		Delim:     c.String("c"),
		Order:     c.Bool("o"),
		FoldCase:  c.Bool("i"),
		Randomize: c.Bool("r"),
		Rotated:   c.Bool("x"),
		Platform:  c.String("platform"),
	})
	if err != nil {
		return outputError(err)
	}

	if !c.Bool("s") {
		fmt.Printf("'%s' created\n", out.Outfile)
		if out.Count == 1 {
			fmt.Println("There was 1 string")
		} else {
			fmt.Printf("There were %d strings\n", out.Count)
		}
		fmt.Printf("Longest string: %d byte%s\n", out.Longest, plural(out.Longest))
		fmt.Printf("Shortest string: %d byte%s\n", out.Shortest, plural(out.Shortest))
	}
	return nil
}

func plural(n uint64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// outputError formats error for CLI.
func outputError(err error) error {
	if fErr, ok := err.(*errors.FortuneError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", fErr.Code, fErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
