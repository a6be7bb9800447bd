package dateparse

import (
	"errors"
	"testing"
	"time"

	"github.com/danieljhkim/zap/internal/filetime"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone database unavailable for %s: %v", name, err)
	}
	return loc
}

func TestParseDate_ExplicitOffset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "zulu",
			input: "2024-03-15T09:30:45Z",
			want:  time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC),
		},
		{
			name:  "positive offset",
			input: "2024-03-15T09:30:45+02:00",
			want:  time.Date(2024, 3, 15, 7, 30, 45, 0, time.UTC),
		},
		{
			name:  "negative offset with fraction",
			input: "2024-03-15T09:30:45.25-05:00",
			want:  time.Date(2024, 3, 15, 14, 30, 45, 250000000, time.UTC),
		},
		{
			name:  "space separator",
			input: "2024-03-15 09:30:45Z",
			want:  time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC),
		},
		{
			name:  "long fraction",
			input: "2024-03-15T09:30:45.123456789Z",
			want:  time.Date(2024, 3, 15, 9, 30, 45, 123456789, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, time.UTC)
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Time().Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got.Time(), tt.want)
			}
		})
	}
}

func TestParseDate_LocalWallClock(t *testing.T) {
	got, err := ParseDate("2024-03-15T09:30:45", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	if !got.Time().Equal(want) {
		t.Errorf("got %v, want %v", got.Time(), want)
	}

	t.Run("space separator", func(t *testing.T) {
		spaced, err := ParseDate("2024-03-15 09:30:45", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !spaced.Equal(got) {
			t.Errorf("space form = %v, T form = %v", spaced.Time(), got.Time())
		}
	})

	t.Run("fractional seconds", func(t *testing.T) {
		frac, err := ParseDate("2024-03-15T09:30:45.5", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if frac.Nanosecond() != 500000000 {
			t.Errorf("Nanosecond() = %d, want 500000000", frac.Nanosecond())
		}
	})
}

func TestParseDate_RoundTrip(t *testing.T) {
	// Whole-second instants survive format-then-parse unchanged.
	orig := filetime.FromTime(time.Date(2023, 11, 4, 17, 5, 9, 0, time.UTC))
	got, err := ParseDate(orig.String(), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestParseDate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
	}{
		{name: "garbage", input: "not-a-date", wantKind: KindSyntax},
		{name: "empty", input: "", wantKind: KindSyntax},
		{name: "month out of range", input: "2024-13-01T00:00:00Z", wantKind: KindRange},
		{name: "day out of range", input: "2024-02-30T00:00:00Z", wantKind: KindRange},
		{name: "truncated", input: "2024-03-15T09:30", wantKind: KindSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input, time.UTC)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseDate(%q) error = %v, want *ParseError", tt.input, err)
			}
			if perr.Kind != tt.wantKind {
				t.Errorf("ParseDate(%q) kind = %v, want %v", tt.input, perr.Kind, tt.wantKind)
			}
			if perr.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", perr.Input, tt.input)
			}
		})
	}
}

func TestParseDate_DSTGap(t *testing.T) {
	ny := mustLocation(t, "America/New_York")

	// 02:30 on 2024-03-10 never happened in New York; clocks jumped
	// from 02:00 EST to 03:00 EDT.
	_, err := ParseDate("2024-03-10T02:30:00", ny)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != KindAmbiguousTime {
		t.Errorf("kind = %v, want KindAmbiguousTime", perr.Kind)
	}
}

func TestParseDate_DSTAmbiguous(t *testing.T) {
	ny := mustLocation(t, "America/New_York")

	// 01:30 on 2024-11-03 happened twice in New York; clocks fell back
	// from 02:00 EDT to 01:00 EST.
	_, err := ParseDate("2024-11-03T01:30:00", ny)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != KindAmbiguousTime {
		t.Errorf("kind = %v, want KindAmbiguousTime", perr.Kind)
	}

	// The same wall clock with an explicit offset is unambiguous.
	got, err := ParseDate("2024-11-03T01:30:00-05:00", ny)
	if err != nil {
		t.Fatalf("explicit offset should parse: %v", err)
	}
	want := time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC)
	if !got.Time().Equal(want) {
		t.Errorf("got %v, want %v", got.Time(), want)
	}
}

func TestParseDate_OrdinaryLocalTimeNotFlagged(t *testing.T) {
	ny := mustLocation(t, "America/New_York")

	// A plain winter afternoon must not trip the ambiguity probe.
	got, err := ParseDate("2024-01-15T14:00:00", ny)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)
	if !got.Time().Equal(want) {
		t.Errorf("got %v, want %v", got.Time(), want)
	}
}
