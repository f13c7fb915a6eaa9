package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"snipyard/internal/adapters/distribute"
	"snipyard/internal/adapters/editor"
	"snipyard/internal/adapters/filesystem"
	"snipyard/internal/adapters/sqlite"
	"snipyard/internal/adapters/tui"
	"snipyard/internal/config"
	"snipyard/internal/ports"
)

func main() {
	config.Load()

	// Initialize adapters
	repo := filesystem.NewRepository(config.CorpusPath(), config.WikiPath())
	editorOpener := editor.NewOpener()
	cwd, _ := os.Getwd()
	sink := distribute.New(nil, cwd)

	// Pick history is a convenience; run without it if it fails to open
	var history ports.History
	if store, err := sqlite.OpenHistory(config.CorpusPath()); err == nil {
		history = store
		defer store.Close()
	}

	query := ports.Query{Context: config.Context()}

	// Create and run TUI app
	app := tui.NewApp(repo, sink, editorOpener, history, query, config.MaxDepth())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// "here" text of an inserted pick goes to stdout for the host to splice
	if app.Result() != "" {
		fmt.Println(app.Result())
	}
}
