package site

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/quickref/internal/content"
	"github.com/ziadkadry99/quickref/internal/progress"
	"github.com/ziadkadry99/quickref/internal/view"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(content.Default())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func parseDoc(t *testing.T, html []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parsing rendered HTML: %v", err)
	}
	return doc
}

func TestRenderTabsInOrder(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	if got := strings.TrimSpace(doc.Find("h1.page-title").Text()); got != "🧠 Python Cheatsheet" {
		t.Errorf("page title = %q", got)
	}
	if got := doc.Find("title").Text(); got != "Python Cheatsheet" {
		t.Errorf("document title = %q", got)
	}

	tabs := doc.Find(".tabs .tab")
	want := []string{"🔍 Regex", "🪟 Tkinter Widgets", "🌐 Streamlit Widgets"}
	if tabs.Length() != len(want) {
		t.Fatalf("tabs = %d, want %d", tabs.Length(), len(want))
	}
	tabs.Each(func(i int, s *goquery.Selection) {
		if got := strings.TrimSpace(s.Text()); got != want[i] {
			t.Errorf("tab %d = %q, want %q", i, got, want[i])
		}
	})
}

func TestRenderSectionCounts(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	panels := doc.Find("section.tab-panel")
	want := []int{3, 1, 3}
	if panels.Length() != len(want) {
		t.Fatalf("panels = %d, want %d", panels.Length(), len(want))
	}
	panels.Each(func(i int, s *goquery.Selection) {
		if n := s.Find("details.section").Length(); n != want[i] {
			t.Errorf("panel %d sections = %d, want %d", i, n, want[i])
		}
	})
}

func TestRenderInitialState(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	doc.Find(".tab").Each(func(i int, s *goquery.Selection) {
		selected, _ := s.Attr("aria-selected")
		if want := i == 0; (selected == "true") != want {
			t.Errorf("tab %d aria-selected = %q", i, selected)
		}
	})
	doc.Find("section.tab-panel").Each(func(i int, s *goquery.Selection) {
		_, hidden := s.Attr("hidden")
		if hidden != (i != 0) {
			t.Errorf("panel %d hidden = %v", i, hidden)
		}
	})
	if n := doc.Find("details[open]").Length(); n != 0 {
		t.Errorf("open sections = %d, want 0", n)
	}
}

func TestRenderBodiesAsTables(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	if n := doc.Find("details.section table").Length(); n != 7 {
		t.Errorf("tables = %d, want 7", n)
	}
	header := doc.Find("#regex-basic-syntax table th").First().Text()
	if header != "Pattern" {
		t.Errorf("first header = %q, want Pattern", header)
	}
	if !strings.Contains(doc.Find("#regex-common-use-cases").Text(), `r'^\d{10}$'`) {
		t.Error("regex body should be rendered verbatim")
	}
	if !strings.Contains(doc.Find("#tkinter-widgets").Text(), `tk.Button(root, text="Click", command=cb)`) {
		t.Error("tkinter body should be rendered verbatim")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newTestRenderer(t)

	first, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	second, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders without interaction should be byte-identical")
	}

	other, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(first, other) {
		t.Error("independent renderers should produce identical output")
	}
}

func TestRenderFollowsSession(t *testing.T) {
	r := newTestRenderer(t)
	s := view.New(r.Page())
	if err := s.SelectTab(2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle(2, 1); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc := parseDoc(t, buf.Bytes())

	if sel, _ := doc.Find("#tab-streamlit").Attr("aria-selected"); sel != "true" {
		t.Errorf("streamlit tab aria-selected = %q", sel)
	}
	open := doc.Find("details[open]")
	if open.Length() != 1 {
		t.Fatalf("open sections = %d, want 1", open.Length())
	}
	if id, _ := open.Attr("id"); id != "streamlit-display" {
		t.Errorf("open section = %q, want streamlit-display", id)
	}
}

func TestTabSelectionDoesNotChangeBodies(t *testing.T) {
	r := newTestRenderer(t)

	bodies := func(s *view.Session) []string {
		var buf bytes.Buffer
		if err := r.Render(&buf, s); err != nil {
			t.Fatalf("Render: %v", err)
		}
		var out []string
		parseDoc(t, buf.Bytes()).Find(".section-body").Each(func(_ int, sel *goquery.Selection) {
			h, _ := sel.Html()
			out = append(out, h)
		})
		return out
	}

	s := view.New(r.Page())
	before := bodies(s)
	for i := range r.Page().Tabs {
		if err := s.SelectTab(i); err != nil {
			t.Fatal(err)
		}
		after := bodies(s)
		if len(after) != len(before) {
			t.Fatalf("section count changed: %d vs %d", len(after), len(before))
		}
		for j := range before {
			if before[j] != after[j] {
				t.Errorf("selecting tab %d changed body %d", i, j)
			}
		}
	}
}

func TestRenderEscapesRawHTML(t *testing.T) {
	page := &content.Page{
		Title: "<b>t</b>",
		Tabs: []content.Tab{{
			ID: "a", Label: "A",
			Sections: []content.Section{{ID: "s", Title: "S", Body: "<script>alert(1)</script>\n\n| x |\n|---|\n| y |\n"}},
		}},
	}
	r, err := NewRenderer(page)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	html, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if strings.Contains(string(html), "<script>alert(1)</script>") {
		t.Error("raw HTML in a body should not be passed through")
	}
	if strings.Contains(string(html), "<b>t</b>") {
		t.Error("page title should be escaped")
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	n, err := NewExporter(newTestRenderer(t), dir).Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 7 {
		t.Errorf("exported sections = %d, want 7", n)
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	if doc := parseDoc(t, html); doc.Find(".tab").Length() != 3 {
		t.Error("exported page should contain 3 tabs")
	}

	data, err := os.ReadFile(filepath.Join(dir, "search-index.json"))
	if err != nil {
		t.Fatalf("reading search index: %v", err)
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 7 {
		t.Errorf("index entries = %d, want 7", len(entries))
	}
}

func TestExportReportsProgress(t *testing.T) {
	var buf bytes.Buffer
	e := NewExporter(newTestRenderer(t), t.TempDir())
	e.Progress = progress.NewCIReporter(&buf)

	if _, err := e.Export(); err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, want := range []string{"[1/2] index.html", "[2/2] search-index.json", "Export complete"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("progress output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRenderSearchBox(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	input := doc.Find("input#search-input")
	if input.Length() != 1 {
		t.Fatalf("search inputs = %d, want 1", input.Length())
	}
	if controls, _ := input.Attr("aria-controls"); controls != "search-results" {
		t.Errorf("search input controls %q, want search-results", controls)
	}
	if _, hidden := doc.Find("#search-results").Attr("hidden"); !hidden {
		t.Error("search results should start hidden")
	}
	if !strings.Contains(doc.Find("script").Text(), `fetch("search-index.json")`) {
		t.Error("page script should load search-index.json")
	}
}

func TestSearchAnchorsMatchSections(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := parseDoc(t, html)

	for _, e := range BuildSearchIndex(r.Page()) {
		section := doc.Find("details#" + e.Anchor)
		if section.Length() != 1 {
			t.Errorf("anchor %q does not name a section", e.Anchor)
			continue
		}
		panel, _ := section.Closest(".tab-panel").Attr("id")
		if panel != "panel-"+e.Tab {
			t.Errorf("anchor %q is in %q, want panel-%s", e.Anchor, panel, e.Tab)
		}
	}
}

func TestPageUsesFullWidth(t *testing.T) {
	html, err := newTestRenderer(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	css := parseDoc(t, html).Find("style").Text()
	for _, rule := range strings.Split(css, "}") {
		if strings.HasPrefix(strings.TrimSpace(rule), ".content {") && strings.Contains(rule, "max-width") {
			t.Errorf("content column should not be capped: %s}", strings.TrimSpace(rule))
		}
	}
}
