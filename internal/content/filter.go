package content

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// SectionPath is the slash-separated address of a section, "tab/section".
func SectionPath(tabID, sectionID string) string {
	return tabID + "/" + sectionID
}

// Filter returns a copy of the page holding only the sections whose path
// matches one of the glob patterns. Tabs left without sections are dropped.
// Patterns use doublestar syntax, so "regex/*" and "**/input" both work.
func (p *Page) Filter(patterns ...string) (*Page, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid section pattern %q", pattern)
		}
	}

	out := &Page{Title: p.Title, DocumentTitle: p.DocumentTitle}
	for _, tab := range p.Tabs {
		var kept []Section
		for _, s := range tab.Sections {
			if matchesAny(SectionPath(tab.ID, s.ID), patterns) {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			tab.Sections = kept
			out.Tabs = append(out.Tabs, tab)
		}
	}
	return out, nil
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
