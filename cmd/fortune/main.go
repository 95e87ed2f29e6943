package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/loader"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(filepath.Join(homeDir, ".fortune"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := newCLIApp(loader.New(), cfg)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
