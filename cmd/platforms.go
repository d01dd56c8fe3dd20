package main

import (
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Compare supported platforms and their recovery processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		return printJSON(reg.Options())
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
