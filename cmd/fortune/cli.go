package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
	"github.com/hpungsan/fortune/internal/mcp"
	"github.com/hpungsan/fortune/internal/ops"
	"github.com/hpungsan/fortune/internal/web"
)

const (
	// charsPerSec is the assumed reading speed for -w.
	charsPerSec = 20
	// minWaitTime is the shortest -w pause in seconds.
	minWaitTime = 6
)

// newCLIApp creates the CLI application with the classic fortune flags
// and the server subcommands.
func newCLIApp(ld *loader.Loader, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:      "fortune",
		Usage:     "Print a random, hopefully interesting, adage",
		ArgsUsage: "[[n%] file/directory]...",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "a", Usage: "Choose from all databases, offensive or not"},
			&cli.BoolFlag{Name: "c", Usage: "Show the cookie file the fortune came from"},
			&cli.BoolFlag{Name: "D", Usage: "Enable debug output"},
			&cli.BoolFlag{Name: "e", Usage: "Consider all fortune files to be of equal size"},
			&cli.BoolFlag{Name: "f", Usage: "Print the list of files which would be searched; don't print a fortune"},
			&cli.BoolFlag{Name: "i", Usage: "Ignore case for -m patterns"},
			&cli.BoolFlag{Name: "l", Usage: "Long dictums only"},
			&cli.StringFlag{Name: "m", Usage: "Print all fortunes matching the regular expression `pattern`"},
			&cli.IntFlag{Name: "n", Usage: "Longest fortune length (in characters) considered short"},
			&cli.BoolFlag{Name: "o", Usage: "Choose only from potentially offensive databases"},
			&cli.BoolFlag{Name: "s", Usage: "Short apothegms only"},
			&cli.BoolFlag{Name: "u", Usage: "Accepted for compatibility; no transliteration is done"},
			&cli.BoolFlag{Name: "w", Usage: "Wait before termination so the fortune can be read"},
		},
		Action: func(c *cli.Context) error {
			return fortuneAction(c, ld, cfg)
		},
		Commands: []*cli.Command{
			serveCmd(ld, cfg),
			mcpCmd(ld, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// fortuneAction runs the classic draw/match/list flows.
func fortuneAction(c *cli.Context, ld *loader.Loader, cfg *config.Config) error {
	if !c.Bool("D") {
		log.SetOutput(io.Discard)
	}

	paths := c.Args().Slice()

	if pattern := c.String("m"); pattern != "" {
		out, err := ops.Match(ld, cfg, ops.MatchInput{
			Paths:      paths,
			All:        c.Bool("a"),
			Offensive:  c.Bool("o"),
			ShortOnly:  c.Bool("s"),
			LongOnly:   c.Bool("l"),
			Length:     c.Int("n"),
			Pattern:    pattern,
			IgnoreCase: c.Bool("i"),
		})
		if err != nil {
			return outputError(err)
		}
		for _, jar := range out.Jars {
			fmt.Fprintf(os.Stderr, "(%s)\n%%\n", jar.Location)
			for _, content := range jar.Cookies {
				fmt.Printf("%s\n%%\n", content)
			}
		}
		return nil
	}

	if c.Bool("f") {
		out, err := ops.Inventory(ld, cfg, ops.InventoryInput{
			Paths:     paths,
			All:       c.Bool("a"),
			Offensive: c.Bool("o"),
			Equal:     c.Bool("e"),
			ShortOnly: c.Bool("s"),
			LongOnly:  c.Bool("l"),
			Length:    c.Int("n"),
		})
		if err != nil {
			return outputError(err)
		}
		for _, shelf := range out.Shelves {
			fmt.Fprintf(os.Stderr, "%5.2f%% %s\n", shelf.Probability, shelf.Location)
			for _, jar := range shelf.Jars {
				fmt.Fprintf(os.Stderr, "    %5.2f%% %s\n", jar.Probability, jar.Location)
			}
		}
		return nil
	}

	picker := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	out, err := ops.Draw(ld, cfg, picker, ops.DrawInput{
		Paths:     paths,
		All:       c.Bool("a"),
		Offensive: c.Bool("o"),
		Equal:     c.Bool("e"),
		ShortOnly: c.Bool("s"),
		LongOnly:  c.Bool("l"),
		Length:    c.Int("n"),
	})
	if err != nil {
		return outputError(err)
	}
	log.Printf("drew from %s", out.Location)

	if c.Bool("c") {
		fmt.Printf("(%s)\n%%\n", out.Location)
	}
	fmt.Println(out.Content)

	if c.Bool("w") {
		wait := waitSeconds(len(out.Content))
		log.Printf("waiting %d seconds", wait)
		time.Sleep(time.Duration(wait) * time.Second)
	}
	return nil
}

// waitSeconds computes the -w pause from the fortune length, assuming
// a reading speed of charsPerSec and never under minWaitTime.
func waitSeconds(contentLen int) uint64 {
	return max(uint64(contentLen+1)/charsPerSec, minWaitTime)
}

// serveCmd creates the serve command.
func serveCmd(ld *loader.Loader, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP fortune API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8080, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(ld, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(ld *loader.Loader, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server on stdio",
		Action: func(_ *cli.Context) error {
			return mcp.Run(ld, cfg, Version)
		},
	}
}

// outputError formats error for CLI.
func outputError(err error) error {
	if fErr, ok := err.(*errors.FortuneError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", fErr.Code, fErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
