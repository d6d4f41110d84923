package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the cheatsheet tabs and the ids and titles of their sections."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the markdown table of one cheatsheet section."),
	mcp.WithString("tab",
		mcp.Required(),
		mcp.Description("Tab id, as returned by list_sections"),
	),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section id within the tab"),
	),
)

// searchSectionsTool defines the search_sections MCP tool.
var searchSectionsTool = mcp.NewTool("search_sections",
	mcp.WithDescription("Find cheatsheet sections whose title or table mentions the query (case-insensitive)."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for, e.g. a function name or regex token"),
	),
)
