package vcslog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tiliavir/clocked/internal/config"
	"github.com/Tiliavir/clocked/internal/model"
)

// NoCategory is reported for commits that match no rule.
const NoCategory = "None"

// ConfigError reports a repository that has no category rules.
type ConfigError struct {
	Repo string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no category rules for repository %q", e.Repo)
}

// Categorizer assigns commits to project areas using per-repository rules.
type Categorizer struct {
	rules config.CategoryRules
}

// NewCategorizer returns a Categorizer for rules.
func NewCategorizer(rules config.CategoryRules) *Categorizer {
	return &Categorizer{rules: rules}
}

// Category returns the category of the first rule whose Match occurs in the
// entry's file list, or NoCategory.
func (c *Categorizer) Category(e model.LogEntry) (string, error) {
	rules, ok := c.rules[e.Repo]
	if !ok {
		return "", &ConfigError{Repo: e.Repo}
	}
	for _, r := range rules {
		if strings.Contains(e.Files, r.Match) {
			return r.Category, nil
		}
	}
	return NoCategory, nil
}

// Count tallies entries per category.
func (c *Categorizer) Count(entries []model.LogEntry) (map[string]int, error) {
	counts := map[string]int{}
	for _, e := range entries {
		cat, err := c.Category(e)
		if err != nil {
			return nil, err
		}
		counts[cat]++
	}
	return counts, nil
}

// FormatCategories renders the category distribution of entries as
// "A2 (75%), IDE (25%)", sorted by category name.
func (c *Categorizer) FormatCategories(entries []model.LogEntry) (string, error) {
	counts, err := c.Count(entries)
	if err != nil {
		return "", err
	}
	cats := make([]string, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	total := float64(len(entries))
	parts := make([]string, len(cats))
	for i, cat := range cats {
		parts[i] = fmt.Sprintf("%s (%.0f%%)", cat, float64(counts[cat])/total*100)
	}
	return strings.Join(parts, ", "), nil
}
