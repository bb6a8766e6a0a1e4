// cmd/soundarchive/main.go
//
// Entry point for the sound archive browser.
//
// Flow:
// 1. Load .env and flags, resolve the archive home (~/.soundarchive)
// 2. Load config.yaml and build the record store (built-ins + catalog plugins)
// 3. Optionally start the remote bridge
// 4. Run the TUI until the user quits

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/kingrea/sound-archive/internal/config"
	"github.com/kingrea/sound-archive/internal/eventbridge"
	"github.com/kingrea/sound-archive/internal/logbook"
	"github.com/kingrea/sound-archive/internal/logging"
	"github.com/kingrea/sound-archive/internal/tui"
	"github.com/kingrea/sound-archive/plugins"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if handleValidateCatalogCommand() {
		return
	}
	// A missing .env is normal.
	_ = godotenv.Load(".env")

	configPath := flag.String("config", "", "path to config.yaml (defaults to <home>/config.yaml)")
	catalogDir := flag.String("catalog", "", "directory with supplemental *.yaml / *.go catalogs")
	bridge := flag.Bool("bridge", false, "start the remote bridge regardless of config")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("soundarchive %s\n", version)
		return
	}

	home, err := config.ResolveHome()
	if err != nil {
		die("resolve home: %v", err)
	}
	if err := config.InitHomeDir(home); err != nil {
		die("init %s: %v", home, err)
	}
	var opts []config.Option
	if *configPath != "" {
		opts = append(opts, config.WithConfigPath(*configPath))
	}
	cfg, err := config.NewConfig(home, opts...)
	if err != nil {
		die("load config: %v", err)
	}
	if *catalogDir != "" {
		cfg.SetCatalogDir(*catalogDir)
	}

	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		die("open log: %v", err)
	}
	defer logger.Close()
	logger.Printf("soundarchive %s starting (home %s)", version, cfg.HomeDir)

	catalogLog := logger.Named("catalog")
	store, files, err := plugins.BuildStore(cfg.CatalogDir())
	if err != nil {
		catalogLog.Printf("%v", err)
		die("load catalog: %v", err)
	}
	for _, file := range files {
		catalogLog.Printf("%d specimens from %s", len(file.Catalog.Specimens), file.Path)
	}
	catalogLog.Printf("%d specimens total", store.Len())

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "journey.log"))
	if err != nil {
		logger.Printf("logbook disabled: %v", err)
		lb = nil
	} else {
		logger.Printf("logbook session %s", lb.SessionID())
	}

	hub := eventbridge.NewHub()
	app, err := tui.NewApp(store,
		tui.WithLogbook(lb),
		tui.WithPublisher(hub),
		tui.WithAutoStop(cfg.AutoStop()),
		tui.WithLatestCount(cfg.LatestCount()),
		tui.WithLogPanel(cfg.File.UI.ShowLog),
	)
	if err != nil {
		die("build ui: %v", err)
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	settings := eventbridge.SettingsFromConfig(cfg)
	if *bridge {
		settings.Enabled = true
	}
	srv := eventbridge.NewServer(settings,
		eventbridge.WithProcessor(tui.BridgeProcessor(p)),
		eventbridge.WithLogger(logger),
		eventbridge.WithHub(hub),
		eventbridge.WithKnownIDs(store.Has),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := srv.Start(ctx); err != nil {
		if !errors.Is(err, eventbridge.ErrServerDisabled) {
			logger.Printf("eventbridge: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: remote bridge unavailable: %v\n", err)
		}
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("eventbridge: shutdown: %v", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		logger.Named("tui").Printf("%v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		cancel()
		os.Exit(1)
	}
	if lb != nil {
		lb.Info("Session closed")
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "soundarchive: "+format+"\n", args...)
	os.Exit(1)
}
