package vcslog

import (
	"math"
	"sort"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

// Bounds of the hours estimate.
const (
	MinHours = 6
	MaxHours = 12
	padding  = time.Hour
)

// DayBlock is the chronological run of commits attributed to one workday.
type DayBlock struct {
	Date    timecalc.Date
	Entries []model.LogEntry
}

// SortEntries orders entries by timestamp, keeping equal stamps in input order.
func SortEntries(entries []model.LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}

// GroupByDate sorts a copy of entries and splits it into runs sharing the
// same workday.
func GroupByDate(entries []model.LogEntry) []DayBlock {
	sorted := append([]model.LogEntry(nil), entries...)
	SortEntries(sorted)

	var blocks []DayBlock
	for _, e := range sorted {
		d := e.Date()
		if n := len(blocks); n > 0 && blocks[n-1].Date == d {
			blocks[n-1].Entries = append(blocks[n-1].Entries, e)
			continue
		}
		blocks = append(blocks, DayBlock{Date: d, Entries: []model.LogEntry{e}})
	}
	return blocks
}

// EstimateHours guesses the hours worked on a day from its first and last
// commit: one hour of padding on each side, rounded half away from zero, then
// clamped to [MinHours, MaxHours]. This is a heuristic, not a measurement.
// entries must be chronological and non-empty.
func EstimateHours(entries []model.LogEntry) int {
	if len(entries) == 0 {
		return 0
	}
	start := entries[0].Timestamp.Add(-padding)
	end := entries[len(entries)-1].Timestamp.Add(padding)
	hours := int(math.Round(end.Sub(start).Hours()))
	return clamp(hours, MinHours, MaxHours)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
