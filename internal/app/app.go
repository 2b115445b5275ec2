package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/eqdisplay/internal/config"
	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/feed"
	"github.com/five82/eqdisplay/internal/prefs"
	"github.com/five82/eqdisplay/internal/render"
	"github.com/five82/eqdisplay/internal/state"
	"github.com/five82/eqdisplay/internal/surface"
	"github.com/five82/eqdisplay/internal/ui"
)

// Options configure the eqdisplay application. Non-empty fields override
// the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/eqdisplay/prefs.toml
	EventFeed  string
	StateFile  string
	PollEvery  time.Duration // feed poll interval
	Version    string
}

// Run boots the display until the user quits or the context is cancelled.
// It returns an error when the display loop fails, so the caller can exit
// non-zero.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, logFile, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info("eqdisplay starting", "version", opts.Version, "feed", cfg.EventFeed, "state", cfg.StateFile)

	userPrefs := prefs.Load(opts.PrefsPath)
	page := display.Page(userPrefs.Page)
	if !slices.Contains(display.Pages, page) {
		page = display.PageEvents
	}

	store := state.NewStore(opts.Version)
	queue := display.NewQueue(cfg.QueueSize)
	sizer := &surface.Sizer{}
	buffer := surface.NewBuffer(sizer.Size)

	producer := feed.New(queue, store, feed.Options{
		EventPath: cfg.EventFeed,
		StatePath: cfg.StateFile,
		Backlog:   cfg.Backlog,
		Interval:  cfg.FeedInterval,
		Logger:    logger,
	})

	program := ui.NewProgram(ui.Options{
		Queue:     queue,
		Store:     store,
		Sizer:     sizer,
		Reload:    producer.Reload,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Page:      page,
	}, tea.WithContext(ctx))

	consumer := display.NewConsumer(queue, store, render.NewRouter(buffer),
		display.WithLogger(logger.With("component", "display")),
		display.WithPollInterval(cfg.PollInterval),
		display.WithInitialPage(page),
		display.WithPresenter(func(f display.Frame) {
			program.Send(ui.FrameMsg{Grid: buffer.Snapshot(), Page: f.Page, Selected: f.Selected})
		}),
	)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := producer.Run(loopCtx); err != nil {
			logger.Error("event feed stopped", "err", err)
		}
	}()

	loopDone := make(chan error, 1)
	go func() {
		err := consumer.Run(loopCtx)
		if err != nil {
			program.Quit()
		}
		loopDone <- err
	}()

	_, runErr := program.Run()
	cancel()
	loopErr := <-loopDone

	if loopErr != nil {
		return loopErr
	}
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	logger.Info("eqdisplay stopped")
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if opts.EventFeed != "" {
		path, err := config.ExpandPath(opts.EventFeed)
		if err != nil {
			return fmt.Errorf("event feed path: %w", err)
		}
		cfg.EventFeed = path
	}
	if opts.StateFile != "" {
		path, err := config.ExpandPath(opts.StateFile)
		if err != nil {
			return fmt.Errorf("state file path: %w", err)
		}
		cfg.StateFile = path
	}
	if opts.PollEvery > 0 {
		cfg.FeedInterval = opts.PollEvery
	}
	return nil
}
