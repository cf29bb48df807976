package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/clocked/internal/timecalc"
)

func TestResolveClock(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) // 16:30 CET

	tests := []struct {
		name  string
		clock string
		date  string
		want  time.Time
	}{
		{"now", timecalc.ClockNow, timecalc.DateToday, now},
		{"today earlier", "09:15", timecalc.DateToday, time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC)},
		{"today in future moves back a day", "18:00", timecalc.DateToday, time.Date(2024, 1, 9, 17, 0, 0, 0, time.UTC)},
		{"explicit date", "08:00", "2024-01-05", time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timecalc.ResolveClock(now, tt.clock, tt.date, cet)
			if err != nil {
				t.Fatalf("ResolveClock: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveClock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveClockDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	got, err := timecalc.ResolveClock(now, "09:00", timecalc.DateToday, loc)
	if err != nil {
		t.Fatalf("ResolveClock: %v", err)
	}
	want := time.Date(2024, 7, 1, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ResolveClock in summer = %v, want %v", got, want)
	}
}

func TestResolveClockErrors(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		clock string
		date  string
	}{
		{"date without time", timecalc.ClockNow, "2024-01-01"},
		{"bad clock", "9h", timecalc.DateToday},
		{"bad date", "09:00", "2024/01/01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := timecalc.ResolveClock(now, tt.clock, tt.date, time.UTC); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
