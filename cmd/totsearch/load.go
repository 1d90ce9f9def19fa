package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DanielCater/totsearch/internal/config"
	dbRedis "github.com/DanielCater/totsearch/internal/db/redis"
	logpkg "github.com/DanielCater/totsearch/internal/logger"
	ingestuc "github.com/DanielCater/totsearch/internal/usecase/ingest"
)

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load a JSONL corpus and ensure the index exists",
	Long: `Reads documents as JSON lines of the form {"id": "...", "contents": "..."}
from the given file, or stdin when no file is given, stores them, and
creates the full-text index when missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func runLoad(_ *cobra.Command, args []string) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	svc := ingestuc.New(store, logger, cfg.Search.IndexName, cfg.Search.KeyPrefix)

	if err := svc.EnsureIndex(ctx); err != nil {
		return err
	}

	n, err := svc.Load(ctx, in)
	if err != nil {
		return fmt.Errorf("after %d documents: %w", n, err)
	}

	logger.Info("Load finished", zap.Int("documents", n))
	fmt.Printf("Loaded %d documents.\n", n)
	return nil
}
