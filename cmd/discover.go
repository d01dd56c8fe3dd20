package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/discovery"
)

var (
	discoverName   string
	discoverEmails []string
	discoverInfo   string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Infer likely digital accounts from known contact information",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}

		report := discovery.New(reg).Discover(discoverName, discoverEmails, discoverInfo)

		zap.L().Info("discovery complete",
			zap.Int("assets", report.TotalAssets),
			zap.Int("high_priority", report.HighPriorityAssets),
		)

		return printJSON(report)
	},
}

func init() {
	f := discoverCmd.Flags()
	f.StringVar(&discoverName, "name", "", "full name of the deceased (required)")
	f.StringSliceVar(&discoverEmails, "email", nil, "known email address (repeatable)")
	f.StringVar(&discoverInfo, "info", "", "free-text notes about the deceased's affairs")
	_ = discoverCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(discoverCmd)
}
