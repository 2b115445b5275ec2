package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
}

func TestDecodeWire(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
	}{
		{
			name: "events object",
			in:   `{"kind":"event","screen":"events","payload":{"timestamp":"01:02:03.456","payload":"Hello"}}`,
			want: NewLog(LogEntry{Timestamp: "01:02:03.456", Text: "Hello"}),
		},
		{
			name: "events string uses item timestamp",
			in:   `{"type":"event","screen":"events","timestamp":"10:00:00.001","payload":"You feel refreshed"}`,
			want: NewLog(LogEntry{Timestamp: "10:00:00.001", Text: "You feel refreshed"}),
		},
		{
			name: "events without timestamp uses now",
			in:   `{"kind":"event","screen":"events","payload":"tell"}`,
			want: NewLog(LogEntry{Timestamp: "03:04:05.678", Text: "tell"}),
		},
		{
			name: "debug pair",
			in:   `{"kind":"event","screen":"debug","timestamp":"00:00:01.000","payload":["combat_you_hit","You hit a rat"]}`,
			want: NewDebug(LogEntry{Timestamp: "00:00:01.000", Category: "combat_you_hit", Text: "You hit a rat"}),
		},
		{
			name: "debug object",
			in:   `{"kind":"event","screen":"debug","timestamp":"00:00:01.000","payload":{"category":"who","text":"There are 3 players"}}`,
			want: NewDebug(LogEntry{Timestamp: "00:00:01.000", Category: "who", Text: "There are 3 players"}),
		},
		{
			name: "clear",
			in:   `{"kind":"event","screen":"clear"}`,
			want: NewClear(),
		},
		{
			name: "draw page",
			in:   `{"kind":"draw","screen":"settings"}`,
			want: NewDraw(PageSettings),
		},
		{
			name: "redraw",
			in:   `{"kind":"draw","screen":"redraw"}`,
			want: NewRedraw(),
		},
		{
			name: "selected char number",
			in:   `{"kind":"update","screen":"selected_char","payload":2}`,
			want: NewUpdate(TargetSelectedChar, 2),
		},
		{
			name: "select char string",
			in:   `{"kind":"update","screen":"select_char","payload":"1"}`,
			want: NewUpdate(TargetSelectChar, 1),
		},
		{
			name: "char swap",
			in:   `{"kind":"update","screen":"char","payload":"tester"}`,
			want: NewUpdate(TargetChar, "tester"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeWire([]byte(tt.in), fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeWire_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"unknown kind":    `{"kind":"sound","screen":"events"}`,
		"missing screen":  `{"kind":"draw"}`,
		"bad index":       `{"kind":"update","screen":"selected_char","payload":"two"}`,
		"short debug":     `{"kind":"event","screen":"debug","payload":["only"]}`,
		"bad events body": `{"kind":"event","screen":"events","payload":[1,2]}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeWire([]byte(in), fixedNow)
			assert.Error(t, err)
		})
	}
}
