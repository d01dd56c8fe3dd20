package main

import (
	"github.com/spf13/cobra"
)

var instructionsPlatform string

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Show step-by-step form instructions for a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		return printJSON(reg.GuideReport(instructionsPlatform))
	},
}

func init() {
	instructionsCmd.Flags().StringVar(&instructionsPlatform, "platform", "", "platform name (required)")
	_ = instructionsCmd.MarkFlagRequired("platform")
	rootCmd.AddCommand(instructionsCmd)
}
