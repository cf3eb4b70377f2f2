// Package cli implements the oleumctl command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"oleum/internal/config"
	"oleum/internal/db"
	"oleum/internal/db/mock"
	applog "oleum/internal/log"
)

// Version info set from main
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// catalog is an open database plus the settings it was opened with.
type catalog struct {
	db     *gorm.DB
	locale language.Tag
	close  func()
}

type app struct {
	configPath string
	outputFmt  string
	logLevel   string
	useMock    bool

	// open is replaced in tests to share one seeded database across commands.
	open func(ctx context.Context, a *app) (*catalog, error)
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the oleumctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{open: openCatalog})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "oleumctl",
		Short: "Maintain and query the essential oil catalog",
		Long: `oleumctl works directly on the catalog database.

It provides:
  - import of oil/effect/molecule assignment sheets (CSV, text or PDF)
  - effect searches ranked exactly like the web search
  - cascading deletes of oils, effects and molecules`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applog.SetLevel(a.logLevel)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"config file (default: $OLEUM_CONFIG)")
	root.PersistentFlags().StringVarP(&a.outputFmt, "output", "o", "table",
		"output format (table, json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.useMock, "mock", false,
		"use the seeded in-memory catalog instead of the configured database")

	root.AddCommand(
		newVersionCommand(),
		newImportCommand(a),
		newSearchCommand(a),
		newDeleteCommand(a),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "oleumctl %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", buildTime)
		},
	}
}

// logger writes to stderr so table and JSON output stay clean.
func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	return applog.New(cmd.ErrOrStderr()).With("command", cmd.Name())
}

func openCatalog(ctx context.Context, a *app) (*catalog, error) {
	var (
		cfg config.Config
		err error
	)
	if a.useMock {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.LoadFrom(a.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	locale, err := language.Parse(cfg.Search.Locale)
	if err != nil {
		locale = language.German
	}

	var database *gorm.DB
	if a.useMock || cfg.Database.UseMock {
		database, err = mock.New(ctx)
	} else {
		database, err = db.Configure(cfg.Database)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &catalog{
		db:     database,
		locale: locale,
		close: func() {
			if sqlDB, err := database.DB(); err == nil {
				sqlDB.Close()
			}
		},
	}, nil
}
