// Package cli implements the quotesync CLI commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dicklancube/quotesync/internal/config"
	"github.com/dicklancube/quotesync/internal/remote"
	"github.com/dicklancube/quotesync/internal/storage/boltdb"
	"github.com/dicklancube/quotesync/internal/store"
	"github.com/dicklancube/quotesync/internal/sync"
)

var (
	configPath string
	serverFlag string
	dbFlag     string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "quotesync",
	Short: "Local-first quote store with remote sync",
	Long:  "A local-first quote store. Works offline, reconciles with a remote collection on sync; conflicts are resolved remote-wins and kept for review.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	RootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Remote collection URL (overrides config)")
	RootCmd.PersistentFlags().StringVarP(&dbFlag, "db", "d", "", "Local database path (overrides config)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

// env bundles everything a command needs: config, logger, durable storage,
// the store context object and the sync service.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *boltdb.Storage
	store   *store.Store
	service *sync.Service
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if dbFlag != "" {
		cfg.DBPath = dbFlag
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := store.New(db, logger)
	st.Load(ctx)

	client := remote.NewClient(cfg.ServerURL)
	service := sync.NewService(client, st, cfg.PullLimit, printNotifier, logger)

	return &env{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   st,
		service: service,
	}, nil
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		e.logger.Error("failed to close database", "error", err)
	}
}

// printNotifier renders sync status lines on stdout. The engine itself
// never assumes a rendering surface.
func printNotifier(message string, severity sync.Severity, hasConflicts bool) {
	fmt.Printf("[%s] %s\n", severity, message)
	if hasConflicts {
		fmt.Println("Run 'quotesync conflicts' to review superseded local edits.")
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
