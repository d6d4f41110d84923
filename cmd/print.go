package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/terminal"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the cheatsheet to the terminal",
	Long:  `Prints every tab, or a single one with --tab, rendering the markdown tables for the terminal. --section narrows the output with globs such as "regex/*".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		page, err := loadPage(cfg)
		if err != nil {
			return err
		}

		w, err := terminal.NewWithOutput(cmd.OutOrStdout(), terminalOptions(cfg))
		if err != nil {
			return err
		}

		if patterns, _ := cmd.Flags().GetStringSlice("section"); len(patterns) > 0 {
			page, err = page.Filter(patterns...)
			if err != nil {
				return err
			}
			if len(page.Tabs) == 0 {
				return fmt.Errorf("no sections match %v", patterns)
			}
		}

		if outline, _ := cmd.Flags().GetBool("outline"); outline {
			w.Outline(page)
			return nil
		}

		tabID, _ := cmd.Flags().GetString("tab")
		if tabID == "" {
			return w.Page(page)
		}
		tab, ok := page.Tab(tabID)
		if !ok {
			return fmt.Errorf("unknown tab %q", tabID)
		}
		return w.Tab(tab)
	},
}

func init() {
	printCmd.Flags().String("tab", "", "print only the tab with this id (regex, tkinter, streamlit)")
	printCmd.Flags().StringSlice("section", nil, "print only sections whose tab/section path matches this glob (repeatable)")
	printCmd.Flags().Bool("outline", false, "print tab and section ids only")
	rootCmd.AddCommand(printCmd)
}
