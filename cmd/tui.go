package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/terminal"
	"github.com/ziadkadry99/quickref/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the cheatsheet in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		page, err := loadPage(cfg)
		if err != nil {
			return err
		}
		renderer, err := terminal.NewMarkdownRenderer(terminalOptions(cfg))
		if err != nil {
			return err
		}
		return tui.Run(page, renderer)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
