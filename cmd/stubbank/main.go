package main

import (
	"log/slog"
	"os"

	"github.com/stubbank/stubbank/internal/commands"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("STUBBANK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
