package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

//go:embed cheatsheet.yaml
var builtinYAML []byte

var builtin = sync.OnceValues(func() (*Page, error) {
	return Parse(builtinYAML)
})

// Default returns a private copy of the built-in cheatsheet.
// It panics if the embedded document is malformed, which is a build defect.
func Default() *Page {
	p, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("content: embedded cheatsheet: %v", err))
	}
	return p.Clone()
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a content document from path. An empty path yields the built-in tree.
func Load(path string) (*Page, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks the structural rules of the tree.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: page title is required", ErrInvalid)
	}
	if len(p.Tabs) == 0 {
		return fmt.Errorf("%w: at least one tab is required", ErrInvalid)
	}

	tabIDs := make(map[string]bool, len(p.Tabs))
	for i, tab := range p.Tabs {
		if tab.ID == "" {
			return fmt.Errorf("%w: tab %d has no id", ErrInvalid, i)
		}
		if tabIDs[tab.ID] {
			return fmt.Errorf("%w: duplicate tab id %q", ErrInvalid, tab.ID)
		}
		tabIDs[tab.ID] = true
		if strings.TrimSpace(tab.Label) == "" {
			return fmt.Errorf("%w: tab %q has no label", ErrInvalid, tab.ID)
		}
		if len(tab.Sections) == 0 {
			return fmt.Errorf("%w: tab %q has no sections", ErrInvalid, tab.ID)
		}

		sectionIDs := make(map[string]bool, len(tab.Sections))
		for j, s := range tab.Sections {
			if s.ID == "" {
				return fmt.Errorf("%w: section %d of tab %q has no id", ErrInvalid, j, tab.ID)
			}
			if sectionIDs[s.ID] {
				return fmt.Errorf("%w: duplicate section id %q in tab %q", ErrInvalid, s.ID, tab.ID)
			}
			sectionIDs[s.ID] = true
			if strings.TrimSpace(s.Body) == "" {
				return fmt.Errorf("%w: section %s/%s has an empty body", ErrInvalid, tab.ID, s.ID)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	out := &Page{
		Title:         p.Title,
		DocumentTitle: p.DocumentTitle,
		Tabs:          make([]Tab, len(p.Tabs)),
	}
	for i, tab := range p.Tabs {
		tab.Sections = append([]Section(nil), tab.Sections...)
		out.Tabs[i] = tab
	}
	return out
}

// WindowTitle is the browser/window title, falling back to the page title.
func (p *Page) WindowTitle() string {
	if p.DocumentTitle != "" {
		return p.DocumentTitle
	}
	return p.Title
}

// TabIndex returns the position of the tab with the given id, or -1.
func (p *Page) TabIndex(id string) int {
	for i, tab := range p.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Tab looks up a tab by id.
func (p *Page) Tab(id string) (Tab, bool) {
	if i := p.TabIndex(id); i >= 0 {
		return p.Tabs[i], true
	}
	return Tab{}, false
}

// Section looks up a section by tab and section id.
func (p *Page) Section(tabID, sectionID string) (Section, bool) {
	tab, ok := p.Tab(tabID)
	if !ok {
		return Section{}, false
	}
	for _, s := range tab.Sections {
		if s.ID == sectionID {
			return s, true
		}
	}
	return Section{}, false
}

// SectionCount is the total number of sections across all tabs.
func (p *Page) SectionCount() int {
	n := 0
	for _, tab := range p.Tabs {
		n += len(tab.Sections)
	}
	return n
}
