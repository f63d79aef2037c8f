package export

import (
	"fmt"
	"sort"

	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
)

// MergeResult summarizes a corpus merge.
type MergeResult struct {
	FilesMerged int
	UniqueLeads int
	WithEmails  int
	MergedPath  string
	HotPath     string
}

// Merge reads every per-task artifact for the niche, re-applies the website
// filter, deduplicates by identity (first occurrence wins), and writes the
// consolidated artifact plus the has-email sub-export. The merged files are
// projections: they are never read back by the live pipeline.
func (s *Sink) Merge(n *niche.Niche, baseDir string) (*MergeResult, error) {
	paths, err := s.ListArtifacts(n, baseDir)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no artifacts to merge for niche %q", n.Key)
	}

	seen := make(map[string]struct{})
	var unique []*models.Lead

	for _, path := range paths {
		leads, err := s.Load(path)
		if err != nil {
			s.logger.Warn("skipping unreadable artifact", "path", path, "error", err)
			continue
		}
		for _, lead := range leads {
			if _, dup := seen[lead.ID]; dup {
				continue
			}
			seen[lead.ID] = struct{}{}
			unique = append(unique, lead)
		}
	}

	if len(unique) == 0 {
		return nil, fmt.Errorf("no leads found across %d artifacts", len(paths))
	}

	mergedPath := n.MergedPath(baseDir)
	if err := s.Save(mergedPath, unique, n.Tracking); err != nil {
		return nil, fmt.Errorf("writing merged artifact: %w", err)
	}

	var hot []*models.Lead
	for _, lead := range unique {
		if lead.HasEmail() {
			hot = append(hot, lead)
		}
	}

	result := &MergeResult{
		FilesMerged: len(paths),
		UniqueLeads: len(unique),
		WithEmails:  len(hot),
		MergedPath:  mergedPath,
	}

	if len(hot) > 0 {
		hotPath := n.HotPath(baseDir)
		if err := s.Save(hotPath, hot, n.Tracking); err != nil {
			return nil, fmt.Errorf("writing hot-leads artifact: %w", err)
		}
		result.HotPath = hotPath
	}

	return result, nil
}

// CategoryCount is one row of the stats report.
type CategoryCount struct {
	Category string
	Count    int
}

// Stats summarizes the merged corpus by category, most common first.
func (s *Sink) Stats(n *niche.Niche, baseDir string) (total, withEmails int, byCategory []CategoryCount, err error) {
	leads, err := s.Load(n.MergedPath(baseDir))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("reading merged artifact (run merge first): %w", err)
	}
	if len(leads) == 0 {
		return 0, 0, nil, fmt.Errorf("merged artifact is empty (run merge first)")
	}

	counts := make(map[string]int)
	for _, lead := range leads {
		total++
		if lead.HasEmail() {
			withEmails++
		}
		if lead.Category != "" {
			counts[lead.Category]++
		}
	}

	for category, count := range counts {
		byCategory = append(byCategory, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].Count != byCategory[j].Count {
			return byCategory[i].Count > byCategory[j].Count
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return total, withEmails, byCategory, nil
}
