package display

import (
	"time"

	"github.com/five82/eqdisplay/internal/state"
)

// Kind selects how the consumer treats an event.
type Kind int

const (
	// KindUpdate mutates one transient field and re-renders.
	KindUpdate Kind = iota + 1
	// KindDraw switches page (or redraws the current one).
	KindDraw
	// KindLog appends to, or clears, the log sequences.
	KindLog
)

func (k Kind) String() string {
	switch k {
	case KindUpdate:
		return "update"
	case KindDraw:
		return "draw"
	case KindLog:
		return "event"
	default:
		return "unknown"
	}
}

// Page names one of the four top-level views.
type Page string

const (
	PageEvents   Page = "events"
	PageState    Page = "state"
	PageSettings Page = "settings"
	PageHelp     Page = "help"
)

// Pages lists the views in tab order.
var Pages = []Page{PageEvents, PageState, PageSettings, PageHelp}

// Event targets.
const (
	TargetSetting      = "setting"
	TargetCharacter    = "character"
	TargetSelectedChar = "selected_char"
	TargetSelectChar   = "select_char"
	TargetChar         = "char"
	TargetZone         = "zone"

	TargetRedraw = "redraw"

	TargetEvents = "events"
	TargetDebug  = "debug"
	TargetClear  = "clear"
)

// SettingCharacter is the settings sub-tab holding the roster.
const SettingCharacter = "character"

// Event is a queued display instruction. It is not modified after Push.
type Event struct {
	Kind    Kind
	Target  string
	Payload any
}

// LogEntry is one line of the events or debug panel. Category is only used
// by debug entries.
type LogEntry struct {
	Timestamp string
	Category  string
	Text      string
}

// Stamp formats t the way log entries carry it.
func Stamp(t time.Time) string {
	return t.Format("15:04:05.000")
}

// NewUpdate returns an update event for target.
func NewUpdate(target string, payload any) Event {
	return Event{Kind: KindUpdate, Target: target, Payload: payload}
}

// NewDraw returns an event switching to page.
func NewDraw(page Page) Event {
	return Event{Kind: KindDraw, Target: string(page)}
}

// NewRedraw returns an event re-rendering the current page.
func NewRedraw() Event {
	return Event{Kind: KindDraw, Target: TargetRedraw}
}

// NewLog returns an event appending entry to the events panel.
func NewLog(entry LogEntry) Event {
	return Event{Kind: KindLog, Target: TargetEvents, Payload: entry}
}

// NewDebug returns an event appending entry to the debug panel.
func NewDebug(entry LogEntry) Event {
	return Event{Kind: KindLog, Target: TargetDebug, Payload: entry}
}

// NewClear returns an event emptying both panels.
func NewClear() Event {
	return Event{Kind: KindLog, Target: TargetClear}
}

// Frame is everything a page renderer may read.
type Frame struct {
	Page     Page
	Setting  string
	Selected int
	Events   []LogEntry
	Debug    []LogEntry
	State    state.Snapshot
}
