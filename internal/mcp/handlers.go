package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/quickref/internal/site"
)

// handleListSections returns an outline of the page.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.page.Title)
	for _, tab := range s.page.Tabs {
		fmt.Fprintf(&b, "\n## %s (`%s`)\n", tab.Label, tab.ID)
		for _, sec := range tab.Sections {
			fmt.Fprintf(&b, "- `%s/%s`: %s\n", tab.ID, sec.ID, sec.Title)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetSection returns one section body verbatim.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tabID, err := request.RequireString("tab")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: tab"), nil
	}
	sectionID, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}

	sec, ok := s.page.Section(tabID, sectionID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No section %s/%s. Use list_sections to see the available ids.", tabID, sectionID,
		)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("### %s\n\n%s", sec.Title, sec.Body)), nil
}

// handleSearchSections performs a substring search over titles and bodies.
func (s *Server) handleSearchSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results := site.Search(s.index, query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections mention %q.", query)), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// formatSearchResults lists matches as tab/section ids with titles.
func formatSearchResults(results []site.SearchEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d section(s):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "- `%s/%s`: %s\n", r.Tab, r.Section, r.Title)
	}
	return b.String()
}
