package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quickref",
	Short: "Tabbed Python cheatsheet for the browser and the terminal",
	Long: `quickref shows a single-page Python cheatsheet: regular expression syntax,
Tkinter widgets and Streamlit widgets, each as collapsible markdown tables.
Serve it over HTTP, export it as a static page, print it, browse it in a
terminal UI, or expose it to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logVerbose prints a detail line to stderr when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
