package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/travel-checklist/internal/app"
	"github.com/nhle/travel-checklist/internal/checklist"
	"github.com/nhle/travel-checklist/internal/logging"
	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/persist"
	"github.com/nhle/travel-checklist/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to the YAML config file")
	dbPath := flag.String("db", "", "SQLite database file (overrides storage.path)")
	backend := flag.String("backend", "", "storage backend: sqlite, keyring or memory")
	debug := flag.Bool("debug", false, "log at debug level")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	if err := run(*configPath, *dbPath, *backend, *debug, *writeConfig); err != nil {
		fmt.Fprintln(os.Stderr, "checklist:", err)
		os.Exit(1)
	}
}

func run(configPath, dbPath, backend string, debug, writeConfig bool) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	if writeConfig {
		if err := model.SaveConfig(configPath, cfg); err != nil {
			return err
		}
		fmt.Println("wrote", configPath)
		return nil
	}

	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	kv, status := openStore(cfg.Storage, logger)
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("closing store", "err", err)
		}
	}()

	s := checklist.New(
		context.Background(),
		persist.New(kv, logger),
		checklist.WithLogger(logger),
	)
	logger.Info("checklist loaded",
		"categories", len(s.Categories()),
		"items", len(s.Items()),
	)

	m := app.New(s, cfg.Display, logger)
	m.SetStatus(status)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// openStore opens the configured backend. When it cannot be opened the
// checklist still works for this session on an in-memory store, and the
// returned status says so.
func openStore(cfg model.StorageConfig, logger *log.Logger) (store.KV, string) {
	kv, err := store.Open(cfg)
	if err == nil {
		logger.Info("store opened", "backend", cfg.Backend, "path", cfg.Path)
		return kv, ""
	}

	logger.Error("store unavailable; using memory", "backend", cfg.Backend, "err", err)
	return store.NewMemoryStore(), "Storage unavailable: changes will not be saved"
}
