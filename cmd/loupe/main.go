// Copyright 2025 Loupe Search
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
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/loupe-search/loupe"
	"github.com/loupe-search/loupe/config"
	"github.com/loupe-search/loupe/core"
	"github.com/loupe-search/loupe/index"
	"github.com/loupe-search/loupe/storage"
)

func main() {
	app := &cli.App{
		Name:  "loupe",
		Usage: "Local full-text search over your documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the snapshot store directory (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "index",
				Usage:     "Index a directory and save the result as a snapshot",
				ArgsUsage: "DIRECTORY",
				Action:    indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Snapshot name to save under",
						Value:   loupe.DefaultSnapshotName,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search a saved snapshot",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Snapshot name to search",
						Value:   loupe.DefaultSnapshotName,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results to print",
						Value:   10,
					},
				},
			},
			{
				Name:   "repl",
				Usage:  "Interactively search a saved snapshot",
				Action: replCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Snapshot name to search",
						Value:   loupe.DefaultSnapshotName,
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Directory to index and save if the snapshot does not exist yet",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results to print per query",
						Value:   10,
					},
				},
			},
			{
				Name:   "snapshots",
				Usage:  "List saved snapshots",
				Action: snapshotsCommand,
			},
			{
				Name:      "rm",
				Usage:     "Delete a saved snapshot",
				ArgsUsage: "NAME",
				Action:    deleteSnapshotCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
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

// buildEngine loads configuration, applies CLI overrides, and opens the
// engine with its snapshot store.
func buildEngine(c *cli.Context) (*loupe.Engine, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if dbPath := c.String("db"); dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	engine, err := loupe.NewEngine(
		loupe.WithConfig(cfg),
		loupe.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, nil
}

func indexCommand(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("directory argument is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	start := time.Now()
	if err := engine.LoadDirectory(dir); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	if err := engine.Save(context.Background(), c.String("snapshot")); err != nil {
		return fmt.Errorf("saving snapshot failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d documents from %s in %s\n",
		engine.TotalDocuments(), dir, time.Since(start).Round(time.Millisecond))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Restore(context.Background(), c.String("snapshot")); err != nil {
		return fmt.Errorf("loading snapshot failed: %w", err)
	}

	printResults(os.Stdout, engine.Search(query), c.Int("limit"))
	return nil
}

func replCommand(c *cli.Context) error {
	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	name := c.String("snapshot")
	err = engine.Restore(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound) && c.String("dir") != "":
		// No snapshot yet: build one from the directory.
		if err := engine.LoadDirectory(c.String("dir")); err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}
		if err := engine.Save(ctx, name); err != nil {
			return fmt.Errorf("saving snapshot failed: %w", err)
		}
	case err != nil:
		return fmt.Errorf("loading snapshot failed: %w", err)
	}

	fmt.Printf("loupe: %d documents loaded. Type a query, or \"exit\" to quit.\n",
		engine.TotalDocuments())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		start := time.Now()
		results := engine.Search(line)
		printResults(os.Stdout, results, c.Int("limit"))
		fmt.Printf("%d results in %s\n\n", len(results), time.Since(start).Round(time.Microsecond))
	}
	return scanner.Err()
}

func snapshotsCommand(c *cli.Context) error {
	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	infos, err := engine.Snapshots(context.Background())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no snapshots")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-20s %10d bytes  %s\n",
			info.Name, info.Size, time.Unix(info.SavedAt, 0).Format(time.RFC3339))
	}
	return nil
}

func deleteSnapshotCommand(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("snapshot name argument is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	return engine.DeleteSnapshot(context.Background(), name)
}

// printResults writes ranked results with styled snippets.
func printResults(w *os.File, results []core.SearchResult, limit int) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no results")
		return
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %s (%.3f)\n", i+1, r.Doc.Path, r.Score)
		if r.Snippet != "" {
			fmt.Fprintf(w, "    %s\n", renderSnippet(r.Snippet))
		}
	}
}

// renderSnippet rewrites the snippet emphasis markers into ANSI bold.
func renderSnippet(snippet string) string {
	parts := strings.Split(snippet, index.HighlightOpen)
	if len(parts) == 1 {
		return snippet
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for i, part := range parts[1:] {
		if i%2 == 0 {
			b.WriteString("\x1b[1m")
		} else {
			b.WriteString("\x1b[22m")
		}
		b.WriteString(part)
	}
	return b.String()
}
