package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/quickref/internal/content"
	"github.com/ziadkadry99/quickref/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the cheatsheet as read-only tools.
type Server struct {
	page  *content.Page
	index []site.SearchEntry
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over the given page.
func NewServer(page *content.Page) *Server {
	s := &Server{
		page:  page,
		index: site.BuildSearchIndex(page),
	}

	s.mcp = server.NewMCPServer(
		"quickref",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(searchSectionsTool, s.handleSearchSections)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
