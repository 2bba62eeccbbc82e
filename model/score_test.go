package model

import (
	"errors"
	"testing"
)

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 42.5, want: "42.5"},
		{v: 50.0, want: "50.0"},
		{v: 0, want: "0.0"},
		{v: 104.22, want: "104.22"},
		{v: 99.06, want: "99.06"},
		{v: 7, want: "7.0"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := FormatPoints(tc.v)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	s := &TeamScore{
		Key:       "1.l.1.t.1",
		Name:      "Test Team",
		Current:   42.5,
		Projected: 50.0,
	}

	want := "*Test Team*: Current = 42.5, Projected = 50.0"
	if got := s.FormatLine(); got != want {
		t.Errorf("expected: '%s', got: '%s'", want, got)
	}
}

func TestFormatErrorLine(t *testing.T) {
	got := FormatErrorLine("1.l.1.t.2", errors.New("connection refused"))
	want := "*1.l.1.t.2*: Error fetching data (connection refused)"
	if got != want {
		t.Errorf("expected: '%s', got: '%s'", want, got)
	}
}

func TestFormatScoreboard(t *testing.T) {
	got := FormatScoreboard([]string{"line one", "line two"})
	want := ScoreboardHeader + "\nline one\nline two"
	if got != want {
		t.Errorf("expected: '%s', got: '%s'", want, got)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "team", want: StrategyTeam},
		{in: "roster", want: StrategyRoster},
		{in: "league", want: StrategyLeague},
		{in: "", wantErr: true},
		{in: "TEAM", wantErr: true},
		{in: "matchup", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStrategy(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}
