package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DanielCater/totsearch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "totsearch",
	Short:   "Full-text retrieval service for tip-of-the-tongue queries",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
	Long: `totsearch retrieves documents from half-remembered queries. A query is
decomposed into structured facets, fanned out as multiple index probes, and
the probe rankings are fused into one consensus ranking.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, queryCmd, loadCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
