package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/quickref/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the cheatsheet sections as read-only tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		page, err := loadPage(cfg)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		// stdout carries protocol frames.
		fmt.Fprintf(os.Stderr, "quickref MCP server started on stdio (tabs=%d, sections=%d)\n", len(page.Tabs), page.SectionCount())

		return mcpserver.NewServer(page).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
