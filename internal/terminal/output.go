// Package terminal prints the cheatsheet to a terminal with rendered
// markdown tables. No TUI framework, just styled output.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/quickref/internal/content"
)

// Options configures the markdown renderer.
type Options struct {
	// Style is a glamour standard style name, or "auto".
	Style    string
	WordWrap int
}

// NewMarkdownRenderer builds the glamour renderer shared by the printer and the TUI.
func NewMarkdownRenderer(opts Options) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 100
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
}

// Writer prints pages, tabs and sections.
type Writer struct {
	out      io.Writer
	renderer *glamour.TermRenderer
	mu       sync.Mutex

	titleStyle   lipgloss.Style
	tabStyle     lipgloss.Style
	sectionStyle lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewWithOutput creates a Writer with a custom output destination.
func NewWithOutput(out io.Writer, opts Options) (*Writer, error) {
	renderer, err := NewMarkdownRenderer(opts)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	return &Writer{
		out:      out,
		renderer: renderer,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),

		tabStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).
			Bold(true),

		sectionStyle: lipgloss.NewStyle().Bold(true),

		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}, nil
}

// Page prints the title followed by every tab.
func (w *Writer) Page(p *content.Page) error {
	w.mu.Lock()
	fmt.Fprintln(w.out, w.titleStyle.Render(p.Title))
	fmt.Fprintln(w.out)
	w.mu.Unlock()

	for _, tab := range p.Tabs {
		if err := w.Tab(tab); err != nil {
			return err
		}
	}
	return nil
}

// Tab prints one tab with all of its sections expanded.
func (w *Writer) Tab(tab content.Tab) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	heading := tab.Heading
	if heading == "" {
		heading = tab.Label
	}
	fmt.Fprintln(w.out, w.tabStyle.Render(heading))

	for _, s := range tab.Sections {
		fmt.Fprintln(w.out, w.sectionStyle.Render("▸ "+s.Title))
		if err := w.markdown(s.Body); err != nil {
			return fmt.Errorf("rendering %s/%s: %w", tab.ID, s.ID, err)
		}
	}
	fmt.Fprintln(w.out)
	return nil
}

// Outline prints tab and section ids without bodies.
func (w *Writer) Outline(p *content.Page) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintln(w.out, w.titleStyle.Render(p.Title))
	for _, tab := range p.Tabs {
		fmt.Fprintf(w.out, "%s %s\n", w.tabStyle.Render(tab.Label), w.dimStyle.Render("("+tab.ID+")"))
		for _, s := range tab.Sections {
			fmt.Fprintf(w.out, "  %s %s\n", s.Title, w.dimStyle.Render("("+tab.ID+"/"+s.ID+")"))
		}
	}
}

// markdown renders a body, falling back to the raw text. Caller holds mu.
func (w *Writer) markdown(md string) error {
	rendered, err := w.renderer.Render(md)
	if err != nil {
		fmt.Fprintln(w.out, md)
		return err
	}
	fmt.Fprint(w.out, rendered)
	return nil
}
