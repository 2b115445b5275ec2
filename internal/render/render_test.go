package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/state"
	"github.com/five82/eqdisplay/internal/surface"
)

func testState() state.Snapshot {
	st := state.Default()
	st.Char = "tester"
	st.Server = "p1999green"
	st.Version = "1.2.3"
	return st
}

func draw(t *testing.T, cols, rows int, f display.Frame) surface.Grid {
	t.Helper()
	buf := surface.NewFixedBuffer(cols, rows)
	require.NoError(t, NewRouter(buf).Draw(f))
	return buf.Snapshot()
}

func TestEventsPage_SingleEventOnBottomRow(t *testing.T) {
	g := draw(t, 80, 40, display.Frame{
		Page:   display.PageEvents,
		Events: []display.LogEntry{{Timestamp: "01:02:03.456", Text: "Hello"}},
		State:  testState(),
	})

	// Panel spans rows 3..18 on a 40 row terminal.
	assert.Contains(t, g.Line(18), "01:02:03.456 │ Hello")
	for row := 3; row < 18; row++ {
		assert.NotContains(t, g.Line(row), "Hello", "row %d", row)
	}
	assert.Equal(t, surface.Title, g.Cell(18, 18).Style)
	assert.Equal(t, surface.Header, g.Cell(18, 5).Style, "timestamp separators use the header style")
	assert.Equal(t, surface.Subtext, g.Cell(18, 3).Style)
}

func TestEventsPage_ShowsNewestThatFit(t *testing.T) {
	events := make([]display.LogEntry, 50)
	for i := range events {
		events[i] = display.LogEntry{Timestamp: "00:00:00.000", Text: fmt.Sprintf("event %02d", i)}
	}
	g := draw(t, 80, 40, display.Frame{Page: display.PageEvents, Events: events, State: testState()})

	assert.Contains(t, g.Line(18), "event 49")
	assert.Contains(t, g.Line(3), "event 34")
	assert.NotContains(t, g.String(), "event 33")
}

func TestEventsPage_TruncatesLongText(t *testing.T) {
	text := strings.Repeat("x", 100)
	g := draw(t, 80, 40, display.Frame{
		Page:   display.PageEvents,
		Events: []display.LogEntry{{Timestamp: "00:00:00.000", Text: text}},
		State:  testState(),
	})

	// Text starts at column 18 with room for 59 cells.
	assert.Equal(t, 59, strings.Count(g.Line(18), "x"))
	assert.Equal(t, 'x', g.Cell(18, 76).Rune)
	assert.Equal(t, ' ', g.Cell(18, 77).Rune)
	assert.Equal(t, surface.GlyphVLine, g.Cell(18, 79).Rune, "border intact")
}

func TestEventsPage_MalformedTimestampDrawnRaw(t *testing.T) {
	g := draw(t, 80, 40, display.Frame{
		Page:   display.PageEvents,
		Events: []display.LogEntry{{Timestamp: "yesterday at noon", Text: "late"}},
		State:  testState(),
	})
	assert.Contains(t, g.Line(18), "yesterday at")
	assert.Contains(t, g.Line(18), "│ late")
}

func TestEventsPage_DebugPanelFollowsFlag(t *testing.T) {
	f := display.Frame{
		Page:  display.PageEvents,
		Debug: []display.LogEntry{{Category: "combat", Text: "You slash"}},
		State: testState(),
	}

	g := draw(t, 80, 40, f)
	assert.NotContains(t, g.String(), "You slash")

	f.State.Debug = true
	g = draw(t, 80, 40, f)
	// Debug panel starts at row 23 and is 16 rows high.
	line := g.Line(38)
	assert.Contains(t, line, "combat")
	assert.Contains(t, line, "│ You slash")
	assert.Equal(t, surface.GlyphVLine, g.Cell(38, 33).Rune)
}

func TestStatusBar_OmitsUnavailableFields(t *testing.T) {
	st := testState()
	g := draw(t, 80, 40, display.Frame{Page: display.PageEvents, State: st})
	assert.NotContains(t, g.Line(20), "Unavailable")
	assert.NotContains(t, g.Line(21), "Unavailable")
	assert.NotContains(t, g.Line(21), "0.00")
	assert.Contains(t, g.Line(20), "Tester")
	assert.Contains(t, g.Line(20), "p1999green")

	st.Guild = "knights of truth"
	st.Zone = "east commonlands"
	st.Level = "12"
	st.Class = "paladin"
	st.Direction = "north"
	st.Loc = [3]string{"1.00", "-2.50", "3.00"}
	g = draw(t, 80, 40, display.Frame{Page: display.PageEvents, State: st})

	assert.Contains(t, g.Line(20), " Tester Knights Of Truth ")
	assert.True(t, strings.HasSuffix(strings.TrimRight(g.Line(20), "│"), "East Commonlands "))
	assert.Contains(t, g.Line(21), " 12 Paladin ")
	assert.Contains(t, g.Line(21), "1.00, -2.50, 3.00 North")
	assert.Equal(t, surface.GlyphLTee, g.Cell(19, 0).Rune)
	assert.Equal(t, surface.GlyphLTee, g.Cell(22, 0).Rune)
}

func TestStatusBar_ContextPrecedence(t *testing.T) {
	tests := []struct {
		name              string
		afk, raid, group  bool
		want, notExpected string
	}{
		{"solo", false, false, false, "Solo", "Group"},
		{"group", false, false, true, "Group", "Solo"},
		{"raid beats group", false, true, true, "Raid", "Group"},
		{"afk beats all", true, true, true, "AFK", "Raid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testState()
			st.AFK, st.Raid, st.Group = tt.afk, tt.raid, tt.group
			g := draw(t, 80, 40, display.Frame{Page: display.PageEvents, State: st})
			assert.Contains(t, g.Line(21), tt.want)
			assert.NotContains(t, g.Line(21), tt.notExpected)
		})
	}
}

func TestTabs_HighlightActivePage(t *testing.T) {
	for _, page := range display.Pages {
		t.Run(string(page), func(t *testing.T) {
			g := draw(t, 80, 40, display.Frame{Page: page, State: testState()})
			line := g.Line(1)
			assert.Contains(t, line, "1: events")
			assert.Contains(t, line, "4: help")
			assert.Contains(t, line, "EQ ALERT 1.2.3")

			label := strings.Index(line, string(page))
			require.GreaterOrEqual(t, label, 0)
			col := len([]rune(line[:label]))
			assert.Equal(t, surface.Highlight, g.Cell(1, col).Style)
		})
	}
}

func TestSettingsPage_HighlightsSelection(t *testing.T) {
	st := testState()
	st.Chars = []string{"alpha_p1999green", "bravo_p1999green", "charlie_p1999green", "delta_p1999green"}
	g := draw(t, 80, 40, display.Frame{
		Page:     display.PageSettings,
		Setting:  display.SettingCharacter,
		Selected: 2,
		State:    st,
	})

	// Highest index on top: rows 6..9 hold delta, charlie, bravo, alpha.
	assert.Contains(t, g.Line(6), "Delta p1999green")
	assert.Contains(t, g.Line(7), "Charlie p1999green")
	assert.Contains(t, g.Line(9), "Alpha p1999green")
	assert.Equal(t, surface.Highlight, g.Cell(7, 5).Style)
	assert.Equal(t, surface.Header, g.Cell(6, 5).Style)

	assert.Contains(t, g.Line(11), "Active Character")
	assert.Contains(t, g.Line(11), "Tester on p1999green")
	assert.True(t, g.Cell(4, 3).Style.Underline)
}

func TestSettingsPage_HeaderDimmedOffCharacterSetting(t *testing.T) {
	g := draw(t, 80, 40, display.Frame{Page: display.PageSettings, Setting: "", State: testState()})
	assert.Equal(t, surface.Subtext, g.Cell(4, 5).Style)
	assert.False(t, g.Cell(4, 5).Style.Underline)
	assert.Contains(t, g.Line(7), "Active Character", "empty roster keeps the summary below an empty box")
}

func TestSettingsPage_ScrollsLongRoster(t *testing.T) {
	st := testState()
	for i := 0; i < 60; i++ {
		st.Chars = append(st.Chars, fmt.Sprintf("char%02d_srv", i))
	}
	g := draw(t, 80, 40, display.Frame{Page: display.PageSettings, Selected: 59, State: st})

	assert.Contains(t, g.String(), "Char59 srv")
	assert.Contains(t, g.Line(38), "Active Character")
	for row := 0; row < 40; row++ {
		if strings.Contains(g.Line(row), "Char59") {
			assert.Equal(t, surface.Highlight, g.Cell(row, 5).Style)
		}
	}
}

func TestStatePage_Fields(t *testing.T) {
	st := testState()
	st.Loc = [3]string{"10.00", "20.00", "-5.00"}
	g := draw(t, 80, 40, display.Frame{Page: display.PageState, State: st})

	assert.Contains(t, g.Line(5), "Server     : P1999Green")
	assert.Contains(t, g.Line(6), "Character  : Tester")
	assert.Contains(t, g.Line(20), "Location   : 10.00 : 20.00 : -5.00")
	assert.Contains(t, g.Line(26), "Version    : 1.2.3")
	assert.Contains(t, g.Line(16), "Group      : False")
	assert.NotContains(t, g.Line(16), "Leader")

	st.Group = true
	st.Leader = "bob"
	g = draw(t, 80, 40, display.Frame{Page: display.PageState, State: st})
	assert.Contains(t, g.Line(16), "Leader : Bob")
}

func TestHelpPage_Literal(t *testing.T) {
	g := draw(t, 80, 40, display.Frame{Page: display.PageHelp, State: testState()})

	assert.Contains(t, g.Line(5), "Commands:")
	assert.Contains(t, g.Line(7), "Global")
	assert.Contains(t, g.Line(13), "0     : Reload config")
	assert.Contains(t, g.Line(15), "Events")
	assert.Contains(t, g.Line(21), "Settings")
	assert.Contains(t, g.Line(26), "space : Cycle selection")
}

func TestRouter_TooSmall(t *testing.T) {
	for _, size := range [][2]int{{79, 40}, {80, 39}, {20, 5}} {
		for _, page := range display.Pages {
			t.Run(fmt.Sprintf("%dx%d %s", size[0], size[1], page), func(t *testing.T) {
				g := draw(t, size[0], size[1], display.Frame{Page: page, State: testState()})
				assert.Contains(t, g.String(), "Terminal too small.")
				assert.NotContains(t, g.String(), "EQ ALERT")
			})
		}
	}
}

func TestRouter_UnknownPageDrawsNothing(t *testing.T) {
	buf := surface.NewFixedBuffer(80, 40)
	require.NoError(t, buf.Put(0, 0, "keep", surface.Plain))

	require.NoError(t, NewRouter(buf).Draw(display.Frame{Page: "inventory", State: testState()}))
	assert.True(t, strings.HasPrefix(buf.Snapshot().Line(0), "keep"))
}

type panicSurface struct{ *surface.Buffer }

func (panicSurface) Clear() { panic("terminal gone") }

func TestRouter_RecoversPanic(t *testing.T) {
	r := NewRouter(panicSurface{surface.NewFixedBuffer(80, 40)})
	err := r.Draw(display.Frame{Page: display.PageHelp, State: testState()})

	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "draw help", renderErr.Op)
	assert.Contains(t, err.Error(), "terminal gone")
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"tester":           "Tester",
		"east commonlands": "East Commonlands",
		"KNIGHTS of truth": "Knights Of Truth",
		"o'brien":          "O'Brien",
		"p1999green":       "P1999Green",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, title(in), in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hel", truncate("hello", 3))
	assert.Equal(t, "hi", truncate("hi", 10))
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "", truncate("hello", -4))
}
