package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize quickref configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the answers to the config file (.quickref.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
