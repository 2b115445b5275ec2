package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/logtail"
	"github.com/five82/eqdisplay/internal/state"
)

const (
	defaultInterval = 250 * time.Millisecond
	defaultBacklog  = 200
	maxBackoff      = 30 * time.Second
)

// Options configure a Producer.
type Options struct {
	EventPath string        // JSON lines written by the alert engine; empty disables
	StatePath string        // TOML state snapshot; empty disables
	Backlog   int           // lines replayed at start; zero uses default
	Interval  time.Duration // poll cadence; zero uses default
	ForcePoll bool          // skip fsnotify
	Logger    *slog.Logger
	Now       func() time.Time
}

// Producer turns the alert engine's output files into display events.
type Producer struct {
	queue  *display.Queue
	store  *state.Store
	opts   Options
	logger *slog.Logger
	reload chan struct{}

	follower  *logtail.Follower
	stateMod  time.Time
	stateSize int64
	failures  int
}

// New returns a producer pushing onto queue and loading state into store.
func New(queue *display.Queue, store *state.Store, opts Options) *Producer {
	if opts.Backlog <= 0 {
		opts.Backlog = defaultBacklog
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Producer{
		queue:  queue,
		store:  store,
		opts:   opts,
		logger: logger.With("component", "feed"),
		reload: make(chan struct{}, 1),
	}
}

// Reload asks the running producer to re-read the state file.
func (p *Producer) Reload() {
	select {
	case p.reload <- struct{}{}:
	default:
	}
}

// Run replays the event backlog, then follows both files until ctx ends.
// File changes are picked up through fsnotify when available and by
// polling otherwise; the poll also runs alongside fsnotify as a safety net.
func (p *Producer) Run(ctx context.Context) error {
	if p.opts.StatePath != "" {
		p.loadState(true)
	}
	if p.opts.EventPath != "" {
		follower, backlog, err := logtail.Follow(p.opts.EventPath, p.opts.Backlog)
		if err != nil {
			return err
		}
		p.follower = follower
		p.emit(ctx, backlog)
	}
	if err := p.queue.Push(ctx, display.NewRedraw()); err != nil {
		return nil
	}

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watcher := p.watch(); watcher != nil {
		defer watcher.Close()
		events, watchErrs = watcher.Events, watcher.Errors
	}

	timer := time.NewTimer(p.opts.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			p.handleFSEvent(ctx, ev)
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			p.logger.Warn("watch error", "err", err)
		case <-p.reload:
			p.loadState(true)
		case <-timer.C:
			p.poll(ctx)
			timer.Reset(calculateBackoff(p.failures, p.opts.Interval))
		}
	}
}

// watch subscribes to the directories holding the followed files so that
// creation and replacement are seen as well as writes.
func (p *Producer) watch() *fsnotify.Watcher {
	if p.opts.ForcePoll {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Info("fsnotify unavailable, polling", "err", err)
		return nil
	}
	dirs := map[string]bool{}
	for _, path := range []string{p.opts.EventPath, p.opts.StatePath} {
		if path != "" {
			dirs[filepath.Dir(path)] = true
		}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			p.logger.Info("cannot watch directory, polling", "dir", dir, "err", err)
			_ = watcher.Close()
			return nil
		}
	}
	return watcher
}

func (p *Producer) handleFSEvent(ctx context.Context, ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return
	}
	name := filepath.Clean(ev.Name)
	switch {
	case p.opts.EventPath != "" && name == filepath.Clean(p.opts.EventPath):
		p.drain(ctx)
	case p.opts.StatePath != "" && name == filepath.Clean(p.opts.StatePath):
		p.loadState(false)
	}
}

func (p *Producer) poll(ctx context.Context) {
	ok := p.drain(ctx)
	if p.opts.StatePath != "" {
		ok = p.loadState(false) && ok
	}
	if ok {
		p.failures = 0
	} else {
		p.failures++
	}
}

// drain pushes every line appended since the last drain.
func (p *Producer) drain(ctx context.Context) bool {
	if p.follower == nil {
		return true
	}
	lines, err := p.follower.Poll()
	if err != nil {
		p.logger.Warn("event feed read failed", "path", p.opts.EventPath, "err", err)
		return false
	}
	p.emit(ctx, lines)
	return true
}

func (p *Producer) emit(ctx context.Context, lines []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ev, err := display.DecodeWire([]byte(line), p.opts.Now)
		if err != nil {
			p.logger.Warn("skipping feed line", "err", err)
			continue
		}
		if err := p.queue.Push(ctx, ev); err != nil {
			return
		}
	}
}

// loadState replaces the store contents when the state file changed, or
// unconditionally when force is set, and queues a redraw.
func (p *Producer) loadState(force bool) bool {
	info, err := os.Stat(p.opts.StatePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if !force {
			return true
		}
	case err != nil:
		p.logger.Warn("state file stat failed", "path", p.opts.StatePath, "err", err)
		return false
	default:
		if !force && info.ModTime().Equal(p.stateMod) && info.Size() == p.stateSize {
			return true
		}
		p.stateMod, p.stateSize = info.ModTime(), info.Size()
	}

	snap, err := state.LoadFile(p.opts.StatePath)
	if err != nil {
		p.logger.Warn("state file load failed", "path", p.opts.StatePath, "err", err)
		return false
	}
	p.store.Replace(snap)
	p.logger.Debug("state reloaded", "char", snap.Char, "zone", snap.Zone)
	if err := p.queue.TryPush(display.NewRedraw()); err != nil {
		p.logger.Debug("redraw dropped", "err", err)
	}
	return true
}

// calculateBackoff doubles base per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
