// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/docscout/config"
	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/export"
	"github.com/poiesic/docscout/extract"
	"github.com/poiesic/docscout/results"
	"github.com/poiesic/docscout/scan"
	"github.com/poiesic/docscout/source"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docscout",
		Usage: "Scan a document tree for lines matching a multi-term search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "scan",
				Usage:  "Search every document under a directory",
				Action: scanCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Aliases:  []string{"d"},
						Usage:    "Root directory of the document tree",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "term",
						Aliases:  []string{"t"},
						Usage:    "Search term (repeatable; order sets export column order)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Require every term on a line (default: any term matches)",
					},
					&cli.BoolFlag{
						Name:  "case-sensitive",
						Usage: "Match terms case-sensitively",
					},
					&cli.BoolFlag{
						Name:  "whole-word",
						Usage: "Anchor terms at word boundaries",
					},
					&cli.BoolFlag{
						Name:  "literal",
						Usage: "Treat terms as literal strings instead of patterns",
					},
					&cli.StringSliceFlag{
						Name:  "include",
						Usage: "Only scan paths matching this glob (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "Skip paths matching this glob (repeatable)",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Write the CSV summary to this path ('-' for a dated file in the working directory)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of files to process per batch",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Number of result rows to display",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML configuration file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scanCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlagOverrides(c, cfg)

	// The --log-level flag wins; otherwise the file/env level applies.
	if !c.IsSet("log-level") {
		if err := applyLogLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	searchCfg := buildSearchConfig(c)
	if err := core.ValidateSearchConfig(searchCfg); err != nil {
		return err
	}

	sourceOpts := []source.Option{}
	if len(cfg.Include) > 0 {
		sourceOpts = append(sourceOpts, source.WithIncludeGlobs(cfg.Include...))
	}
	if len(cfg.Exclude) > 0 {
		sourceOpts = append(sourceOpts, source.WithExcludeGlobs(cfg.Exclude...))
	}
	src, err := source.NewDirSource(c.String("dir"), sourceOpts...)
	if err != nil {
		return fmt.Errorf("failed to open document tree: %w", err)
	}

	router, err := extract.NewRouter(extract.Default())
	if err != nil {
		return fmt.Errorf("failed to create extraction router: %w", err)
	}

	store, err := results.NewStore(results.WithPageSize(cfg.PageSize))
	if err != nil {
		return fmt.Errorf("failed to create result store: %w", err)
	}

	schedOpts := []scan.Option{
		scan.WithBatchSize(cfg.BatchSize),
		scan.WithPause(cfg.BatchPause),
	}
	if cfg.PoolSize > 0 {
		schedOpts = append(schedOpts, scan.WithPoolSize(cfg.PoolSize))
	}
	scheduler, err := scan.NewScheduler(router, schedOpts...)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer scheduler.Release()

	monitor := newProgressMonitor(os.Stderr)
	stats, err := scheduler.Run(ctx, src, searchCfg, store, monitor)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	renderResults(os.Stdout, store, stats)

	if out := c.String("csv"); out != "" {
		if out == "-" {
			out = export.SuggestedName(time.Now())
		}
		data, err := export.CSV(store, searchCfg)
		if err != nil {
			return fmt.Errorf("failed to build csv: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		fmt.Fprintf(os.Stderr, "CSV summary written to %s\n", out)
	}

	return nil
}

// buildSearchConfig maps the command-line flags onto one run's search
// configuration.
func buildSearchConfig(c *cli.Context) core.SearchConfig {
	matchType := core.MatchAny
	if c.Bool("all") {
		matchType = core.MatchAll
	}

	return core.SearchConfig{
		Terms: c.StringSlice("term"),
		Options: core.SearchOptions{
			MatchType:     matchType,
			CaseSensitive: c.Bool("case-sensitive"),
			WholeWord:     c.Bool("whole-word"),
			Literal:       c.Bool("literal"),
		},
	}
}

// applyFlagOverrides lets explicitly set flags win over file and
// environment configuration.
func applyFlagOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("batch-size") {
		cfg.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("page-size") {
		cfg.PageSize = c.Int("page-size")
	}
	if c.IsSet("include") {
		cfg.Include = c.StringSlice("include")
	}
	if c.IsSet("exclude") {
		cfg.Exclude = c.StringSlice("exclude")
	}
}

func setupLogger(c *cli.Context) error {
	return applyLogLevel(c.String("log-level"))
}

// applyLogLevel installs a default logger at the given level.
func applyLogLevel(levelStr string) error {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
