package display

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/five82/eqdisplay/internal/state"
)

// DefaultPollInterval bounds how long the consumer waits on an empty queue
// before checking for cancellation again.
const DefaultPollInterval = 10 * time.Millisecond

// Drawer renders a frame onto the terminal surface.
type Drawer interface {
	Draw(Frame) error
}

// UIState is the transient state owned by the consumer.
type UIState struct {
	Page     Page
	Setting  string
	Selected int
	Events   []LogEntry
	Debug    []LogEntry
}

// LoopError reports an unexpected failure that stopped the consumer.
type LoopError struct {
	Event Event
	Cause error
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("display loop: %s %q: %v", e.Event.Kind, e.Event.Target, e.Cause)
}

func (e *LoopError) Unwrap() error {
	return e.Cause
}

// Option configures a Consumer.
type Option func(*Consumer)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Consumer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPollInterval sets the idle wait on an empty queue.
func WithPollInterval(d time.Duration) Option {
	return func(c *Consumer) {
		if d > 0 {
			c.poll = d
		}
	}
}

// WithPresenter sets a hook run after every render, given the frame just
// drawn, to push the result to the terminal.
func WithPresenter(present func(Frame)) Option {
	return func(c *Consumer) { c.present = present }
}

// WithInitialPage sets the page shown before the first draw event.
func WithInitialPage(page Page) Option {
	return func(c *Consumer) {
		if page != "" {
			c.ui.Page = page
		}
	}
}

// Consumer is the single reader of the queue and the only writer of the
// UI state and the surface behind its Drawer.
type Consumer struct {
	queue   *Queue
	store   *state.Store
	drawer  Drawer
	present func(Frame)
	logger  *slog.Logger
	poll    time.Duration

	ui UIState
}

// NewConsumer wires a consumer to its queue, state store and drawer.
func NewConsumer(queue *Queue, store *state.Store, drawer Drawer, opts ...Option) *Consumer {
	c := &Consumer{
		queue:  queue,
		store:  store,
		drawer: drawer,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		poll:   DefaultPollInterval,
		ui: UIState{
			Page:    PageEvents,
			Setting: SettingCharacter,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run processes events until ctx is cancelled, returning nil. It returns a
// *LoopError if handling an event panics; the caller decides whether that
// ends the process.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("display loop started", "page", c.ui.Page)
	for {
		ev, ok, err := c.queue.Next(ctx, c.poll)
		if err != nil {
			c.logger.Info("display loop stopped", "reason", err)
			return nil
		}
		if !ok {
			continue
		}
		if err := c.process(ev); err != nil {
			c.logger.Error("display loop failed", "kind", ev.Kind, "target", ev.Target, "err", err)
			return err
		}
	}
}

func (c *Consumer) process(ev Event) (err error) {
	defer c.queue.Ack()
	defer func() {
		if r := recover(); r != nil {
			err = &LoopError{Event: ev, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	c.handle(ev)
	return nil
}

func (c *Consumer) handle(ev Event) {
	switch ev.Kind {
	case KindUpdate:
		c.applyUpdate(ev)
		c.render()

	case KindDraw:
		if ev.Target != TargetRedraw {
			c.ui.Page = Page(ev.Target)
		}
		c.render()

	case KindLog:
		switch ev.Target {
		case TargetEvents:
			c.ui.Events = append(c.ui.Events, toEntry(ev.Payload))
			if c.ui.Page == PageEvents {
				c.render()
			}
		case TargetDebug:
			c.ui.Debug = append(c.ui.Debug, toEntry(ev.Payload))
			c.render()
		case TargetClear:
			c.ui.Events, c.ui.Debug = nil, nil
			c.render()
		default:
			c.logger.Warn("unknown log target", "target", ev.Target)
		}

	default:
		c.logger.Warn("unknown event kind", "kind", int(ev.Kind), "target", ev.Target)
	}
}

func (c *Consumer) applyUpdate(ev Event) {
	switch ev.Target {
	case TargetSetting:
		setting, ok := ev.Payload.(string)
		if !ok && ev.Payload != nil {
			c.badPayload(ev)
			return
		}
		c.ui.Setting = setting

	case TargetCharacter:
		c.ui.Setting = SettingCharacter

	case TargetSelectedChar:
		idx, ok := payloadIndex(ev.Payload)
		if !ok {
			c.badPayload(ev)
			return
		}
		c.ui.Selected = state.ClampIndex(idx, len(c.store.Snapshot().Chars))

	case TargetSelectChar:
		idx, ok := payloadIndex(ev.Payload)
		if !ok {
			c.badPayload(ev)
			return
		}
		c.ui.Selected = c.store.SelectCharacter(idx)

	case TargetChar:
		name, ok := ev.Payload.(string)
		if !ok {
			c.badPayload(ev)
			return
		}
		c.store.SetCharacter(name)

	case TargetZone:
		// Zone lives in the application state; the producer already stored it.

	default:
		c.logger.Warn("unknown update target", "target", ev.Target)
	}
}

func (c *Consumer) badPayload(ev Event) {
	c.logger.Warn("ignoring update with bad payload", "target", ev.Target, "payload", fmt.Sprintf("%v", ev.Payload))
}

// render hands the full snapshot to the drawer. A failed draw is logged and
// skipped; the next event renders again.
func (c *Consumer) render() {
	snap := c.store.Snapshot()
	c.ui.Selected = state.ClampIndex(c.ui.Selected, len(snap.Chars))

	frame := Frame{
		Page:     c.ui.Page,
		Setting:  c.ui.Setting,
		Selected: c.ui.Selected,
		Events:   c.ui.Events,
		Debug:    c.ui.Debug,
		State:    snap,
	}
	if err := c.drawer.Draw(frame); err != nil {
		c.logger.Error("render failed", "page", frame.Page, "err", err)
	}
	if c.present != nil {
		c.present(frame)
	}
}

func toEntry(payload any) LogEntry {
	switch p := payload.(type) {
	case LogEntry:
		return p
	case *LogEntry:
		if p != nil {
			return *p
		}
	case string:
		return LogEntry{Timestamp: Stamp(time.Now()), Text: p}
	}
	return LogEntry{Timestamp: Stamp(time.Now()), Text: fmt.Sprintf("%v", payload)}
}

func payloadIndex(payload any) (int, bool) {
	switch p := payload.(type) {
	case int:
		return p, true
	case int64:
		return int(p), true
	case float64:
		return int(p), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(p))
		return n, err == nil
	}
	return 0, false
}
