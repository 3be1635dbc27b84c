package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"splitdiff/internal/app"
	"splitdiff/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config.json (default: XDG config dir)")
	debug := flag.Bool("debug", false, "verbose logging to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts, err := loadOptions(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve working directory: %v\n", err)
		os.Exit(1)
	}

	model, err := app.NewModel(cwd, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "application error: %v\n", err)
		os.Exit(1)
	}
}

func loadOptions(path string) (config.Options, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	opts, loadedFrom, err := config.Load()
	if err != nil {
		return config.Options{}, err
	}
	slog.Debug("config resolved", "path", loadedFrom)
	return opts, nil
}
