package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/quickref/internal/content"
	"github.com/ziadkadry99/quickref/internal/view"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// Renderer turns a content tree into an HTML page. Section bodies are
// converted once in NewRenderer; Render only executes the template.
type Renderer struct {
	page   *content.Page
	tmpl   *template.Template
	bodies [][]template.HTML
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	highlightStyle string
}

// WithHighlightStyle sets the chroma style name for code blocks.
func WithHighlightStyle(style string) Option {
	return func(o *options) {
		if style != "" {
			o.highlightStyle = style
		}
	}
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title         string
	DocumentTitle string
	Tabs          []tabData
	CSS           template.CSS
	JS            template.JS
}

type tabData struct {
	ID       string
	Label    string
	Heading  string
	Selected bool
	Sections []sectionData
}

type sectionData struct {
	Anchor string
	Title  string
	Open   bool
	Body   template.HTML
}

// NewRenderer converts every section body to HTML and parses the page template.
func NewRenderer(page *content.Page, opts ...Option) (*Renderer, error) {
	o := options{highlightStyle: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&o)
	}

	md := newMarkdown(o.highlightStyle)

	bodies := make([][]template.HTML, len(page.Tabs))
	for i, tab := range page.Tabs {
		bodies[i] = make([]template.HTML, len(tab.Sections))
		for j, s := range tab.Sections {
			var buf bytes.Buffer
			if err := md.Convert([]byte(s.Body), &buf); err != nil {
				return nil, fmt.Errorf("converting %s/%s: %w", tab.ID, s.ID, err)
			}
			bodies[i][j] = template.HTML(buf.String())
		}
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{page: page, tmpl: tmpl, bodies: bodies}, nil
}

// newMarkdown builds the goldmark converter used for section bodies.
// Raw HTML in bodies is escaped, not passed through.
func newMarkdown(style string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Page returns the content tree being rendered.
func (r *Renderer) Page() *content.Page { return r.page }

// Render writes the page as seen by the given session.
func (r *Renderer) Render(w io.Writer, s *view.Session) error {
	data := pageData{
		Title:         r.page.Title,
		DocumentTitle: r.page.WindowTitle(),
		Tabs:          make([]tabData, len(r.page.Tabs)),
		CSS:           template.CSS(cssContent),
		JS:            template.JS(jsContent),
	}

	for i, tab := range r.page.Tabs {
		td := tabData{
			ID:       tab.ID,
			Label:    tab.Label,
			Heading:  tab.Heading,
			Selected: i == s.Selected(),
			Sections: make([]sectionData, len(tab.Sections)),
		}
		for j, sec := range tab.Sections {
			td.Sections[j] = sectionData{
				Anchor: tab.ID + "-" + sec.ID,
				Title:  sec.Title,
				Open:   s.Expanded(i, j),
				Body:   r.bodies[i][j],
			}
		}
		data.Tabs[i] = td
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// RenderInitial writes the page in its initial state: first tab selected,
// every section collapsed.
func (r *Renderer) RenderInitial(w io.Writer) error {
	return r.Render(w, view.New(r.page))
}

// Bytes renders the initial state into memory.
func (r *Renderer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderInitial(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
