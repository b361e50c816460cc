package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type fakeControl string

func (f fakeControl) ID() string              { return string(f) }
func (f fakeControl) activate(*Model) tea.Cmd { return nil }

func row(ids ...string) []focusable {
	out := make([]focusable, 0, len(ids))
	for _, id := range ids {
		out = append(out, fakeControl(id))
	}
	return out
}

func TestFocusGridMove(t *testing.T) {
	grid := focusGrid{
		row("back"),
		row("a", "b", "c", "d", "e"),
		row("f", "g"),
		row("plus"),
	}

	cases := []struct {
		name   string
		from   string
		dr, dc int
		want   string
	}{
		{"down_from_single_lands_first", "back", 1, 0, "a"},
		{"down_maps_column_left", "b", 1, 0, "f"},
		{"down_maps_column_right", "e", 1, 0, "g"},
		{"up_to_single", "c", -1, 0, "back"},
		{"right_stops_at_end", "e", 0, 1, "e"},
		{"left_stops_at_start", "a", 0, -1, "a"},
		{"right_moves", "f", 0, 1, "g"},
		{"down_from_last_stays", "plus", 1, 0, "plus"},
		{"unknown_stays", "zzz", 1, 0, "zzz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.move(tc.from, tc.dr, tc.dc); got != tc.want {
				t.Fatalf("move(%q, %d, %d) = %q, want %q", tc.from, tc.dr, tc.dc, got, tc.want)
			}
		})
	}
}

func TestFocusGridMoveSkipsEmptyRows(t *testing.T) {
	grid := focusGrid{row("top"), nil, row("bottom")}
	if got := grid.move("top", 1, 0); got != "bottom" {
		t.Fatalf("move over empty row = %q, want bottom", got)
	}
}

func TestFocusGridStepWraps(t *testing.T) {
	grid := focusGrid{row("a", "b"), row("c")}
	if got := grid.step("c", 1); got != "a" {
		t.Fatalf("step forward from last = %q, want a", got)
	}
	if got := grid.step("a", -1); got != "c" {
		t.Fatalf("step back from first = %q, want c", got)
	}
	if got := grid.step("missing", 1); got != "a" {
		t.Fatalf("step from unknown = %q, want a", got)
	}
}

func TestScrollInto(t *testing.T) {
	cases := []struct {
		start, pos, size, want int
	}{
		{0, 0, 3, 0},
		{0, 2, 3, 0},
		{0, 3, 3, 1},
		{4, 1, 3, 1},
		{2, 9, 2, 8},
	}
	for _, tc := range cases {
		if got := scrollInto(tc.start, tc.pos, tc.size); got != tc.want {
			t.Fatalf("scrollInto(%d, %d, %d) = %d, want %d", tc.start, tc.pos, tc.size, got, tc.want)
		}
	}
}

func TestOverlayCenter(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	got := overlayCenter(base, "XX", 10, 3)
	want := strings.Join([]string{"..........", "....XX....", ".........."}, "\n")
	if got != want {
		t.Fatalf("overlayCenter =\n%s\nwant\n%s", got, want)
	}
}

func TestOverlayAtPadsShortBase(t *testing.T) {
	got := overlayAt("ab", "Z", 3, 1, 5, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("overlayAt produced %d lines, want 2", len(lines))
	}
	if lines[1] != "   Z " {
		t.Fatalf("overlayAt line 1 = %q, want %q", lines[1], "   Z ")
	}
}

func TestOverlayAtClipsOversizedPanel(t *testing.T) {
	panel := strings.Join([]string{"ABCDEF", "GHIJKL", "MNOPQR"}, "\n")
	got := overlayAt("....\n....", panel, 1, 1, 4, 2)
	want := "....\n.ABC"
	if got != want {
		t.Fatalf("overlayAt =\n%q\nwant\n%q", got, want)
	}
}

func TestOverlayCenterKeepsFrameSize(t *testing.T) {
	base := strings.Join([]string{"......", "......"}, "\n")
	got := overlayCenter(base, "XXXXXXXXXX\nXXXXXXXXXX\nXXXXXXXXXX", 6, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("overlayCenter produced %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 6 {
			t.Fatalf("line %d width = %d (%q), want 6", i, w, line)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  hello  ", 0); got != "hello" {
		t.Fatalf("truncate no limit = %q, want hello", got)
	}
	got := truncate("FEED THE DOG", 6)
	if w := ansi.StringWidth(got); w != 6 {
		t.Fatalf("truncate width = %d (%q), want 6", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q, want ellipsis suffix", got)
	}
}

func TestClampLines(t *testing.T) {
	text := "one\ntwo\nthree\nfour"
	got := clampLines(text, 10, 2)
	if got != "one\ntwo…" {
		t.Fatalf("clampLines = %q, want %q", got, "one\ntwo…")
	}
	if got := clampLines("short", 10, 3); got != "short" {
		t.Fatalf("clampLines under limit = %q, want short", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight wider = %q, want unchanged", got)
	}
}
