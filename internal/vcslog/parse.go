// Package vcslog estimates working hours and project areas from
// version-control commit history.
package vcslog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
	"github.com/Tiliavir/clocked/internal/timecalc"
)

// Separator starts every entry in the log output.
const Separator = "---+++---"

// ParseRawDate parses "<epoch seconds>[-<offset>]" and returns the instant in
// loc. The commit's own offset is discarded.
func ParseRawDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return time.Time{}, &timecalc.ParseError{Value: raw}
	}
	whole, frac := math.Modf(secs)
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(int64(whole), int64(frac*1e9)).In(loc), nil
}

// ParseLog splits log output into entries for repo. Blocks without any
// "key:value" line are skipped. Lines after "files:" that carry no known key
// extend the file list, which covers one-file-per-line output.
func ParseLog(repo, text string, loc *time.Location) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	for _, block := range strings.Split(text, Separator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		fields, ok := parseFields(block)
		if !ok {
			continue
		}
		raw, ok := fields["date"]
		if !ok {
			return nil, fmt.Errorf("log entry in %s has no date: %q", repo, strings.TrimSpace(block))
		}
		ts, err := ParseRawDate(raw, loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.LogEntry{
			Repo:        repo,
			Timestamp:   ts,
			Description: fields["desc"],
			Files:       fields["files"],
		})
	}
	return entries, nil
}

var knownKeys = map[string]bool{"date": true, "desc": true, "files": true}

func parseFields(block string) (map[string]string, bool) {
	fields := map[string]string{}
	inFiles := false
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		key, value, found := strings.Cut(line, ":")
		if found && (knownKeys[key] || !inFiles) {
			fields[key] = value
			inFiles = key == "files"
			continue
		}
		if inFiles && strings.TrimSpace(line) != "" {
			fields["files"] = strings.TrimSpace(fields["files"] + " " + strings.TrimSpace(line))
		}
	}
	return fields, len(fields) > 0
}
