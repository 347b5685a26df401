package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration YAML. Redirect it to
~/.rockfall/configs/rockfall.yaml as a starting point for customization.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
