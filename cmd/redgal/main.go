package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"redgal/internal/application/usecase"
	"redgal/internal/domain/media"
	"redgal/internal/infrastructure/config"
	"redgal/internal/infrastructure/reddit"
	"redgal/internal/presentation/tui"
)

func main() {
	store, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := store.Settings

	logger := log.New()
	logger.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		logger.SetOutput(f)
		logger.SetLevel(log.DebugLevel)
	}

	client := reddit.NewClient(cfg.API.BaseURL, logger)
	if cfg.API.UserAgent != "" {
		client.UserAgent = cfg.API.UserAgent
	}

	browse := usecase.NewBrowseService(client, cfg.API.PageLimit, logger)
	resolver := media.NewResolver(media.Config{
		EmbedParent: cfg.Embed.Parent,
		NitterHost:  cfg.Embed.NitterHost,
	})

	model := tui.NewModel(cfg, browse, resolver, store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
