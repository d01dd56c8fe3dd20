package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/lifecycle"
)

var statusCaseID string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the current lifecycle status of a recovery case",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		st, err := initStore()
		if err != nil {
			return err
		}

		tracker := lifecycle.New(reg, st)
		return printJSON(tracker.Status(statusCaseID))
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusCaseID, "case-id", "", "case identifier, e.g. GOOGLE_20260301_143052 (required)")
	_ = statusCmd.MarkFlagRequired("case-id")
	rootCmd.AddCommand(statusCmd)
}
