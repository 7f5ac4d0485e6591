package ui

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	if got := formatDate("2026-08-01T10:30:00Z"); got != "1 Aug 2026" {
		t.Fatalf("formatDate = %q, want 1 Aug 2026", got)
	}
	if got := formatDate("2026-08-01"); got != "1 Aug 2026" {
		t.Fatalf("formatDate(bare date) = %q, want 1 Aug 2026", got)
	}
	if got := formatDate(""); got != "—" {
		t.Fatalf("formatDate(empty) = %q, want dash", got)
	}
	if got := formatDate("garbage"); got != "—" {
		t.Fatalf("formatDate(garbage) = %q, want dash", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := formatDateTime("2026-08-01T10:30:00Z"); got != "1 Aug 2026 10:30" {
		t.Fatalf("formatDateTime = %q", got)
	}
}

func TestParseISOAcceptsMillisecondForm(t *testing.T) {
	if _, ok := parseISO("2026-08-01T10:30:00.000Z"); !ok {
		t.Fatal("parseISO rejected millisecond timestamp")
	}
}

func TestTimeAgo(t *testing.T) {
	iso := func(d time.Duration) string {
		return time.Now().UTC().Add(-d).Format(time.RFC3339)
	}

	cases := []struct {
		in   string
		want string
	}{
		{iso(2 * time.Second), "just now"},
		{iso(30 * time.Second), "30s ago"},
		{iso(5 * time.Minute), "5m ago"},
		{iso(3 * time.Hour), "3h ago"},
		{iso(48 * time.Hour), "2d ago"},
		{"", "never"},
		{"garbage", "never"},
	}
	for _, tc := range cases {
		if got := timeAgo(tc.in); got != tc.want {
			t.Errorf("timeAgo(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// Older than a month degrades to an absolute date.
	old := time.Now().UTC().Add(-40 * 24 * time.Hour)
	if got := timeAgo(old.Format(time.RFC3339)); got != old.Format("2 Jan 2006") {
		t.Errorf("timeAgo(40d) = %q, want absolute date", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"héllo", 4, "hél…"}, // rune-aware, not byte-aware
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Fatalf("pad(overlong) = %q", got)
	}
	if got := pad("", 3); got != "   " {
		t.Fatalf("pad(empty) = %q", got)
	}
}

func TestCycle(t *testing.T) {
	options := []string{"Core", "Advanced"}

	if got := cycle("", options); got != "Core" {
		t.Fatalf("cycle from empty = %q, want Core", got)
	}
	if got := cycle("Core", options); got != "Advanced" {
		t.Fatalf("cycle from Core = %q, want Advanced", got)
	}
	// The last option wraps back to pass-through.
	if got := cycle("Advanced", options); got != "" {
		t.Fatalf("cycle from last = %q, want empty", got)
	}
	// An unknown current value restarts the cycle.
	if got := cycle("stale", options); got != "Core" {
		t.Fatalf("cycle from unknown = %q, want Core", got)
	}
	if got := cycle("anything", nil); got != "" {
		t.Fatalf("cycle with no options = %q, want empty", got)
	}
}
