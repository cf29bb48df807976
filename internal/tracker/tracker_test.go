package tracker_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
	"github.com/Tiliavir/clocked/internal/tracker"
)

func strp(s string) *string { return &s }

func ev(status, ts string, tags ...string) model.Event {
	t, err := timecalc.ParseTimestamp(ts)
	if err != nil {
		panic(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return model.Event{Status: status, Timestamp: t, Description: status + " " + ts, Tags: tags}
}

func date(y int, m time.Month, d int) timecalc.Date {
	return timecalc.Date{Year: y, Month: m, Day: d}
}

func TestParseEvents(t *testing.T) {
	raw := []model.RawEvent{
		{Status: strp("in"), ID: "2024-01-01T09:00:00Z", Description: "work", Tags: []string{"acme"}},
		{ID: "2024-01-01T10:00:00Z", Description: "no status"},
		{Status: strp("out"), ID: "2024-01-01T17:00:00.250Z"},
		{Status: strp("in"), LegacyID: "2011-11-07T10:20:48.775Z"},
	}
	events, err := tracker.ParseEvents(raw)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3 (status-less record dropped)", len(events))
	}
	if events[0].Description != "work" || events[0].Tags[0] != "acme" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Tags == nil {
		t.Error("missing tags should default to an empty list")
	}
	if events[2].Timestamp.Year() != 2011 {
		t.Errorf("legacy id not used: %v", events[2].Timestamp)
	}
}

func TestParseEventsBadTimestamp(t *testing.T) {
	raw := []model.RawEvent{
		{Status: strp("in"), ID: "2024-01-01T09:00:00Z"},
		{Status: strp("out"), ID: "yesterday"},
	}
	events, err := tracker.ParseEvents(raw)
	var pe *timecalc.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Value != "yesterday" {
		t.Errorf("ParseError.Value = %q", pe.Value)
	}
	if events != nil {
		t.Errorf("expected no partial result, got %d events", len(events))
	}
}

func TestDecodeEvents(t *testing.T) {
	body := `[
		{"status": "in", "_id": "2024-01-01T09:00:00Z", "description": "work", "tags": ["a"]},
		{"_id": "2024-01-01T12:00:00Z", "note": "ignored"},
		{"status": "out", "_id": "2024-01-01T17:00:00Z", "description": null}
	]`
	events, err := tracker.DecodeEvents(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if _, err := tracker.DecodeEvents(strings.NewReader("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestPairScenario(t *testing.T) {
	events := []model.Event{
		ev("in", "2024-01-01T09:00:00Z"),
		ev("out", "2024-01-01T17:00:00Z"),
	}
	tasks := tracker.Pairer{Location: time.UTC}.Pair(events, nil)
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	if got := tasks[0].Hours(); got != 8.0 {
		t.Errorf("Hours = %v, want 8.0", got)
	}
	if !strings.Contains(tasks[0].Summary(), "09:00 -- 17:00 (8.0h)") {
		t.Errorf("Summary = %q", tasks[0].Summary())
	}
}

func TestPairSortsOutOfOrderEvents(t *testing.T) {
	events := []model.Event{
		ev("out", "2024-01-01T12:00:00Z"),
		ev("in", "2024-01-01T13:00:00Z"),
		ev("in", "2024-01-01T08:00:00Z"),
		ev("out", "2024-01-01T17:00:00Z"),
	}
	tasks := tracker.Pairer{Location: time.UTC}.Pair(events, nil)
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	if tasks[0].Start.Hour() != 8 || tasks[0].End.Hour() != 12 {
		t.Errorf("first task = %v -- %v", tasks[0].Start, tasks[0].End)
	}
	if tasks[1].Start.Hour() != 13 || tasks[1].End.Hour() != 17 {
		t.Errorf("second task = %v -- %v", tasks[1].Start, tasks[1].End)
	}
	// The input slice is left untouched.
	if events[0].Status != "out" {
		t.Error("Pair reordered the caller's slice")
	}
}

func TestPairInFollowedByIn(t *testing.T) {
	events := []model.Event{
		ev("in", "2024-01-01T09:00:00Z", "a"),
		ev("in", "2024-01-01T10:00:00Z", "b"),
		ev("out", "2024-01-01T11:00:00Z"),
	}
	tasks := tracker.Pairer{Location: time.UTC}.Pair(events, nil)
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	if tasks[0].TagKey() != "a" || tasks[1].TagKey() != "b" {
		t.Errorf("tags = %q, %q", tasks[0].TagKey(), tasks[1].TagKey())
	}
}

func TestPairTrailingInIsOmitted(t *testing.T) {
	events := []model.Event{
		ev("in", "2024-01-01T09:00:00Z"),
		ev("out", "2024-01-01T12:00:00Z"),
		ev("in", "2024-01-01T13:00:00Z"),
	}
	tasks := tracker.Pairer{Location: time.UTC}.Pair(events, nil)
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
}

func TestPairTaskCount(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"empty", nil, 0},
		{"single in", []string{"in"}, 0},
		{"single out", []string{"out"}, 0},
		{"alternating", []string{"in", "out", "in", "out", "in", "out"}, 3},
		{"double out", []string{"in", "out", "out", "in", "out"}, 2},
		{"all in", []string{"in", "in", "in"}, 2},
	}
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []model.Event
			ins := 0
			for i, s := range tt.statuses {
				events = append(events, model.Event{Status: s, Timestamp: base.Add(time.Duration(i) * time.Hour)})
				if s == "in" && i < len(tt.statuses)-1 {
					ins++
				}
			}
			tasks := tracker.Pairer{Location: time.UTC}.Pair(events, nil)
			if len(tasks) != tt.want {
				t.Errorf("tasks = %d, want %d", len(tasks), tt.want)
			}
			if len(tasks) != ins {
				t.Errorf("tasks = %d, want one per non-final in (%d)", len(tasks), ins)
			}
		})
	}
}

func TestPairLocalizes(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	events := []model.Event{
		ev("in", "2024-01-02T03:00:00Z"),
		ev("out", "2024-01-02T06:00:00Z"),
	}
	tasks := tracker.Pairer{Location: est}.Pair(events, nil)
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	if got := tasks[0].Date(); got != date(2024, 1, 1) {
		t.Errorf("task date = %v, want local start date 2024-01-01", got)
	}
	if tasks[0].Start.Hour() != 22 || tasks[0].End.Hour() != 1 {
		t.Errorf("local times = %v -- %v", tasks[0].Start, tasks[0].End)
	}
}

func TestFilterModesDisagreeAtBoundary(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	// UTC date 2024-01-02, local start date 2024-01-01.
	events := []model.Event{
		ev("in", "2024-01-02T03:00:00Z"),
		ev("out", "2024-01-02T06:00:00Z"),
	}
	rng := tracker.DateRange{Start: date(2024, 1, 2), End: date(2024, 1, 2)}
	p := tracker.Pairer{Location: est}

	byEvent, err := tracker.Select(events, tracker.FilterByEvent, rng, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(byEvent) != 1 {
		t.Errorf("event filter tasks = %d, want 1", len(byEvent))
	}

	byTask, err := tracker.Select(events, tracker.FilterByTask, rng, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(byTask) != 0 {
		t.Errorf("task filter tasks = %d, want 0", len(byTask))
	}
}

func TestFilterEventsInclusive(t *testing.T) {
	events := []model.Event{
		ev("in", "2023-12-31T23:59:59Z"),
		ev("in", "2024-01-01T00:00:00Z"),
		ev("in", "2024-01-31T23:59:59Z"),
		ev("in", "2024-02-01T00:00:00Z"),
	}
	got := tracker.FilterEvents(events, tracker.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 31)})
	if len(got) != 2 {
		t.Errorf("filtered = %d, want 2", len(got))
	}
	if all := tracker.FilterEvents(events, tracker.DateRange{}); len(all) != 4 {
		t.Errorf("open range kept %d, want 4", len(all))
	}
}

func TestFilterTasksHasNoUpperBound(t *testing.T) {
	tasks := []model.Task{
		{Start: time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC)},
		{Start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{Start: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	got := tracker.FilterTasks(tasks, date(2024, 1, 1))
	if len(got) != 2 {
		t.Errorf("filtered = %d, want 2", len(got))
	}
}

func TestParseFilterMode(t *testing.T) {
	if m, err := tracker.ParseFilterMode("task"); err != nil || m != tracker.FilterByTask {
		t.Errorf("ParseFilterMode(task) = %q, %v", m, err)
	}
	if _, err := tracker.ParseFilterMode("day"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestOpenSession(t *testing.T) {
	open := []model.Event{
		ev("in", "2024-01-01T13:00:00Z"),
		ev("in", "2024-01-01T09:00:00Z"),
		ev("out", "2024-01-01T12:00:00Z"),
	}
	e, ok := tracker.OpenSession(open)
	if !ok || e.Timestamp.Hour() != 13 {
		t.Errorf("OpenSession = %v, %v", e, ok)
	}

	closed := []model.Event{
		ev("in", "2024-01-01T09:00:00Z"),
		ev("out", "2024-01-01T12:00:00Z"),
	}
	if _, ok := tracker.OpenSession(closed); ok {
		t.Error("expected no open session")
	}
	if _, ok := tracker.OpenSession(nil); ok {
		t.Error("expected no open session for empty feed")
	}
}
