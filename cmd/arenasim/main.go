// Command arenasim runs one full survival competition and prints the
// narrative to stdout.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/talgya/arena-sim/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	seed := flag.Int64("seed", 0, "override the random seed")
	days := flag.Int("days", 0, "override the day cap")
	arenaSize := flag.Int("arena-size", 0, "override the arena area count")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *days != 0 {
		cfg.Days = *days
	}
	if *arenaSize != 0 {
		cfg.ArenaSize = *arenaSize
	}

	g, err := game.New(cfg, os.Stdout)
	if err != nil {
		slog.Error("failed to set up the game", "error", err)
		os.Exit(1)
	}
	g.Run()
}
