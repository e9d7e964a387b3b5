package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/studyai/internal/cli"
	"github.com/alexanderramin/studyai/internal/config"
	"github.com/alexanderramin/studyai/internal/db"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/repository"
	"github.com/alexanderramin/studyai/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/natefinch/lumberjack"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire unit of work and load the landing catalog
	uow := db.NewSQLiteUnitOfWork(database)
	if err := db.Seed(context.Background(), uow, time.Now()); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	observer, tuiObserver, closeLog := newObservers(cfg)
	defer closeLog.Close()

	// Wire repositories and services
	catalog := service.NewCatalogService(
		repository.NewSQLiteAssessmentRepo(database),
		repository.NewSQLiteAnalyticsRepo(database),
		repository.NewSQLiteRecommendationRepo(database),
		observer,
	)

	app := &cli.App{
		Config:      cfg,
		Catalog:     catalog,
		Observer:    observer,
		TUIObserver: tuiObserver,
		Now:         time.Now,
	}

	// Only open the TUI when both ends are a terminal.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newObservers picks where flow events go. A log file is rotated by
// lumberjack and is safe to use while the TUI owns the screen; stderr is
// only used by the headless commands.
func newObservers(cfg config.Config) (headless, tui observe.Observer, closer io.Closer) {
	if !cfg.LogEvents {
		return observe.NoopObserver{}, observe.NoopObserver{}, nopCloser{}
	}
	if cfg.LogFile == "" {
		return observe.NewLogObserver(os.Stderr), observe.NoopObserver{}, nopCloser{}
	}
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}
	obs := observe.NewLogObserver(w)
	return obs, obs, w
}
