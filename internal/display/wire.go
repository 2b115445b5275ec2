package display

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// wireItem is the JSON shape emitted by the producer. "type" is accepted as
// an alias of "kind".
type wireItem struct {
	Kind      string          `json:"kind"`
	Type      string          `json:"type"`
	Screen    string          `json:"screen"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp string          `json:"timestamp"`
}

// DecodeWire parses one producer item into an Event. now supplies the
// timestamp of log entries that carry none.
func DecodeWire(data []byte, now func() time.Time) (Event, error) {
	var item wireItem
	if err := json.Unmarshal(data, &item); err != nil {
		return Event{}, fmt.Errorf("decode display item: %w", err)
	}
	kind := strings.ToLower(strings.TrimSpace(item.Kind))
	if kind == "" {
		kind = strings.ToLower(strings.TrimSpace(item.Type))
	}
	screen := strings.TrimSpace(item.Screen)
	if screen == "" {
		return Event{}, fmt.Errorf("decode display item: missing screen")
	}
	if now == nil {
		now = time.Now
	}

	switch kind {
	case "update":
		payload, err := decodeUpdatePayload(screen, item.Payload)
		if err != nil {
			return Event{}, err
		}
		return NewUpdate(screen, payload), nil
	case "draw":
		return Event{Kind: KindDraw, Target: screen}, nil
	case "event":
		switch screen {
		case TargetEvents:
			entry, err := decodeLogPayload(item.Payload, item.Timestamp, now)
			if err != nil {
				return Event{}, err
			}
			return NewLog(entry), nil
		case TargetDebug:
			entry, err := decodeDebugPayload(item.Payload, item.Timestamp, now)
			if err != nil {
				return Event{}, err
			}
			return NewDebug(entry), nil
		default:
			return Event{Kind: KindLog, Target: screen}, nil
		}
	default:
		return Event{}, fmt.Errorf("decode display item: unknown kind %q", kind)
	}
}

func decodeUpdatePayload(screen string, raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch screen {
	case TargetSelectedChar, TargetSelectChar:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("decode %s payload: %w", screen, err)
			}
			n = json.Number(s)
		}
		idx, err := strconv.Atoi(n.String())
		if err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", screen, err)
		}
		return idx, nil
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", screen, err)
		}
		return v, nil
	}
}

func decodeLogPayload(raw json.RawMessage, ts string, now func() time.Time) (LogEntry, error) {
	entry := LogEntry{Timestamp: ts}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		entry.Text = text
	} else {
		var obj struct {
			Timestamp string `json:"timestamp"`
			Payload   string `json:"payload"`
			Text      string `json:"text"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return LogEntry{}, fmt.Errorf("decode events payload: %w", err)
		}
		if obj.Timestamp != "" {
			entry.Timestamp = obj.Timestamp
		}
		entry.Text = obj.Payload
		if entry.Text == "" {
			entry.Text = obj.Text
		}
	}
	if entry.Timestamp == "" {
		entry.Timestamp = Stamp(now())
	}
	return entry, nil
}

func decodeDebugPayload(raw json.RawMessage, ts string, now func() time.Time) (LogEntry, error) {
	entry := LogEntry{Timestamp: ts}
	var pair []string
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) != 2 {
			return LogEntry{}, fmt.Errorf("decode debug payload: want [category, text], got %d fields", len(pair))
		}
		entry.Category, entry.Text = pair[0], pair[1]
	} else {
		var obj struct {
			Category string `json:"category"`
			Text     string `json:"text"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return LogEntry{}, fmt.Errorf("decode debug payload: %w", err)
		}
		entry.Category, entry.Text = obj.Category, obj.Text
	}
	if entry.Timestamp == "" {
		entry.Timestamp = Stamp(now())
	}
	return entry, nil
}
