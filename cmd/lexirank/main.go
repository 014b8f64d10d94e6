//-------------------------------------------------------------------------
//
// Lexirank
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/lexirank/internal/collection"
	"github.com/pgEdge/lexirank/internal/config"
	"github.com/pgEdge/lexirank/internal/server"
)

var version = "0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := buildRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func buildRootCmd(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lexirank",
		Short:   "lexirank — a column-compressed BM25 lexical retrieval engine",
		Version: version,
	}

	var configPath string
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "lexirank.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		buildServeCmd(logger, &configPath),
		buildIndexCmd(logger, &configPath),
		buildQueryCmd(logger, &configPath),
	)

	return rootCmd
}

func buildServeCmd(logger *slog.Logger, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath, logger)
		},
	}
}

func buildIndexCmd(logger *slog.Logger, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "index <collection>",
		Short: "Rebuild the index for one configured collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			ctx := context.Background()
			m, err := collection.NewManager(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("build collection manager: %w", err)
			}

			if err := m.Reindex(ctx, args[0]); err != nil {
				return fmt.Errorf("reindex %q: %w", args[0], err)
			}

			fmt.Printf("reindexed %q\n", args[0])
			return nil
		},
	}
}

func buildQueryCmd(logger *slog.Logger, configPath *string) *cobra.Command {
	var n int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "query <collection> <query text>",
		Short: "Run a single query against a configured collection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			ctx := context.Background()
			m, err := collection.NewManager(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("build collection manager: %w", err)
			}

			name := args[0]
			query := args[1]
			for _, extra := range args[2:] {
				query += " " + extra
			}

			results, err := m.Query(name, query, n)
			if err != nil {
				return fmt.Errorf("query %q: %w", name, err)
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				fmt.Printf("doc=%d score=%.4f\n", r.DocId, r.Score)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of results to return")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func runServe(configPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx := context.Background()
	m, err := collection.NewManager(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build collection manager: %w", err)
	}

	logger.Info("configuration loaded", "collections", len(cfg.Collections))

	srv := server.New(cfg, m, logger)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-shutdownCh:
		logger.Info("received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(ctx)
	}
}
