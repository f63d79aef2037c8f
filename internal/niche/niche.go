// Package niche holds the catalogs that parameterize the scraping pipeline.
// A niche is pure data: search terms, locations, labels, blacklist overrides,
// and output naming. Adding a market means adding a value here (or loading
// one from YAML), not writing code.
package niche

import (
	"fmt"
	"path/filepath"
	"sort"
)

// TrackingStyle selects which constrained-choice columns get attached to the
// output artifact after a save.
type TrackingStyle string

const (
	// TrackingStatus attaches a single Status dropdown with pipeline-stage
	// labels.
	TrackingStatus TrackingStyle = "status"
	// TrackingCheckboxes attaches the Called / Followed Up / Closed trio with
	// checkbox glyphs.
	TrackingCheckboxes TrackingStyle = "checkboxes"
)

// SearchTerm is one directory search slug. Label, when set, overrides the
// niche label in the lead's industry column.
type SearchTerm struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
}

// Niche is the value object the pipeline is parameterized by.
type Niche struct {
	Key              string        `yaml:"key"`
	Label            string        `yaml:"label"`
	Pitch            string        `yaml:"pitch"`
	Terms            []SearchTerm  `yaml:"terms"`
	Locations        []string      `yaml:"locations"`
	Tracking         TrackingStyle `yaml:"tracking"`
	WebsiteBlacklist []string      `yaml:"website_blacklist"`
	EmailBlacklist   []string      `yaml:"email_blacklist"`
}

// OutputDir is the directory holding every artifact for this niche.
func (n *Niche) OutputDir(baseDir string) string {
	return filepath.Join(baseDir, "exports_"+n.Key)
}

// ArtifactPath is the per-task spreadsheet path.
func (n *Niche) ArtifactPath(baseDir, location, term string) string {
	return filepath.Join(n.OutputDir(baseDir), fmt.Sprintf("yp_%s_%s_%s.xlsx", n.Key, location, term))
}

// MergedPath is the corpus-wide merged artifact path.
func (n *Niche) MergedPath(baseDir string) string {
	return filepath.Join(n.OutputDir(baseDir), fmt.Sprintf("%s_ALL_LEADS_MERGED.xlsx", n.Key))
}

// HotPath is the has-email sub-export path.
func (n *Niche) HotPath(baseDir string) string {
	return filepath.Join(n.OutputDir(baseDir), fmt.Sprintf("%s_HOT_LEADS_WITH_EMAILS.xlsx", n.Key))
}

// ProgressPath is the checkpoint file for this niche's task scheduler.
func (n *Niche) ProgressPath(baseDir string) string {
	return filepath.Join(baseDir, fmt.Sprintf("scrape_progress_%s.json", n.Key))
}

// IndustryLabel is the value written to the lead's industry column for the
// given term.
func (n *Niche) IndustryLabel(term SearchTerm) string {
	if term.Label != "" {
		return term.Label
	}
	return n.Label
}

// Validate rejects niches that cannot produce a runnable task list.
func (n *Niche) Validate() error {
	if n.Key == "" {
		return fmt.Errorf("niche key must not be empty")
	}
	if n.Label == "" {
		return fmt.Errorf("niche %q: label must not be empty", n.Key)
	}
	if len(n.Terms) == 0 {
		return fmt.Errorf("niche %q: at least one search term required", n.Key)
	}
	if len(n.Locations) == 0 {
		return fmt.Errorf("niche %q: at least one location required", n.Key)
	}
	for _, t := range n.Terms {
		if t.Slug == "" {
			return fmt.Errorf("niche %q: search term with empty slug", n.Key)
		}
	}
	switch n.Tracking {
	case TrackingStatus, TrackingCheckboxes, "":
	default:
		return fmt.Errorf("niche %q: unknown tracking style %q", n.Key, n.Tracking)
	}
	return nil
}

var registry = map[string]*Niche{}

func register(n *Niche) {
	registry[n.Key] = n
}

// Get returns a built-in niche by key.
func Get(key string) (*Niche, error) {
	n, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown niche %q (available: %v)", key, Keys())
	}
	return n, nil
}

// Keys lists the built-in niche keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
