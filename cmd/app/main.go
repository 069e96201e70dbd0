package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miragrio/HMCTS/internal/client"
	"github.com/miragrio/HMCTS/internal/config"
	"github.com/miragrio/HMCTS/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	baseURL := flag.String("base-url", "", "task API base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.Client.BaseURL = *baseURL
	}

	model := ui.NewModel(client.New(cfg.Client.BaseURL))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
