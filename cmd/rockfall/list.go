package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmarchenko/rockfall/internal/cave"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in caves",
	Long:  `Show each built-in cave with its diamond quota and time limit at normal difficulty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Built-in caves:")
		fmt.Println()
		fmt.Printf("  %-4s %-16s %-10s %s\n", "ID", "NAME", "DIAMONDS", "TIME")
		fmt.Printf("  %-4s %-16s %-10s %s\n", "--", "----", "--------", "----")

		for id := 1; id <= cave.CaveCount(); id++ {
			d, err := cave.Decode(id, 1)
			if err != nil {
				return fmt.Errorf("cave %d: %w", id, err)
			}
			fmt.Printf("  %-4d %-16s %-10d %ds\n",
				id, d.Info.Name, d.Info.DiamondsRequired, d.Info.TimeSeconds)
		}

		fmt.Println()
		fmt.Println("Play with: rockfall play <id>")
		return nil
	},
}
