package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/quickref/internal/progress"
)

// Exporter writes the rendered page to a directory as a static site.
type Exporter struct {
	Renderer  *Renderer
	OutputDir string
	Progress  progress.Reporter
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(r *Renderer, outputDir string) *Exporter {
	return &Exporter{Renderer: r, OutputDir: outputDir, Progress: progress.Nop{}}
}

// Export writes index.html and search-index.json. Returns the number of
// sections written.
func (e *Exporter) Export() (int, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}

	reporter := e.Progress
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(2)
	defer reporter.Finish()

	page, err := e.Renderer.Bytes()
	if err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "index.html"), page, 0o644); err != nil {
		return 0, err
	}
	reporter.Update(1, "index.html")

	entries := BuildSearchIndex(e.Renderer.Page())
	if err := WriteSearchIndex(entries, filepath.Join(e.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}
	reporter.Update(2, "search-index.json")

	return len(entries), nil
}
