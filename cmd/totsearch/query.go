package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DanielCater/totsearch/internal/config"
	dbRedis "github.com/DanielCater/totsearch/internal/db/redis"
	"github.com/DanielCater/totsearch/internal/domain/result"
	logpkg "github.com/DanielCater/totsearch/internal/logger"
	"github.com/DanielCater/totsearch/internal/metrics"
	searchuc "github.com/DanielCater/totsearch/internal/usecase/search"
)

var queryEnhanced bool

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the corpus from the command line",
	Long: `Runs a one-shot search when query text is given, or an interactive
loop reading queries from stdin otherwise. Type "exit" to leave the loop.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryEnhanced, "enhanced", false,
		"use facet decomposition and attribute boosting")
}

func runQuery(_ *cobra.Command, args []string) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Only warnings and errors on the terminal; results go to stdout.
	logger, err := logpkg.NewLogger(env, "warn")
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

	metrics.RegisterSearchMetrics()
	svc, _ := buildSearchService(cfg, store, logger)

	if len(args) > 0 {
		return searchAndPrint(ctx, svc, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := searchAndPrint(ctx, svc, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scanner.Err()
}

func searchAndPrint(ctx context.Context, svc *searchuc.Service, text string) error {
	records, err := svc.Search(ctx, text, queryEnhanced)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No results.")
		return nil
	}

	ordered := make([]result.Record, 0, len(records))
	for _, r := range records {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Rank() < ordered[j].Rank() })

	for i := range ordered {
		r := &ordered[i]
		fmt.Printf("%d | %s | Score: %.4f\n%s\n\n", r.Rank(), r.Title(), r.Score(), r.Snippet())
	}
	return nil
}
