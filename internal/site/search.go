package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/quickref/internal/content"
)

// SearchEntry represents a single searchable section of the page.
type SearchEntry struct {
	Tab     string `json:"tab"`
	Section string `json:"section"`
	Anchor  string `json:"anchor"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BuildSearchIndex lists every section in page order.
func BuildSearchIndex(page *content.Page) []SearchEntry {
	entries := make([]SearchEntry, 0, page.SectionCount())
	for _, tab := range page.Tabs {
		for _, s := range tab.Sections {
			entries = append(entries, SearchEntry{
				Tab:     tab.ID,
				Section: s.ID,
				Anchor:  tab.ID + "-" + s.ID,
				Title:   s.Title,
				Content: s.Body,
			})
		}
	}
	return entries
}

// Search returns the entries whose title or content contains query,
// case-insensitively. An empty query matches nothing.
func Search(entries []SearchEntry, query string) []SearchEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []SearchEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Content), q) {
			out = append(out, e)
		}
	}
	return out
}

// MarshalSearchIndex encodes entries in the format the page script fetches.
func MarshalSearchIndex(entries []SearchEntry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := MarshalSearchIndex(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
