package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/outreach"
)

var outreachReq outreach.Request

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Generate and optionally send a recovery email to a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		st, err := initStore()
		if err != nil {
			return err
		}

		svc := outreach.NewService(reg, st, initTransport())
		result := svc.Generate(cmd.Context(), outreachReq)

		zap.L().Info("outreach generated",
			zap.String("case_id", result.CaseID),
			zap.String("status", string(result.Status)),
		)

		return printJSON(result)
	},
}

func init() {
	f := outreachCmd.Flags()
	f.StringVar(&outreachReq.Platform, "platform", "", "platform name or domain (required)")
	f.StringVar(&outreachReq.DeceasedName, "deceased-name", "", "full name of the deceased (required)")
	f.StringVar(&outreachReq.DeceasedEmail, "deceased-email", "", "email address of the deceased")
	f.StringVar(&outreachReq.DeceasedDate, "deceased-date", "", "date of death")
	f.StringVar(&outreachReq.ExecutorName, "executor-name", "", "name of the executor (required)")
	f.StringVar(&outreachReq.ExecutorEmail, "executor-email", "", "email address of the executor")
	f.StringVar(&outreachReq.ExecutorRelationship, "relationship", "", "executor's relationship to the deceased")
	f.StringVar(&outreachReq.AvailableDocuments, "documents", "", "description of available documentation")
	_ = outreachCmd.MarkFlagRequired("platform")
	_ = outreachCmd.MarkFlagRequired("deceased-name")
	_ = outreachCmd.MarkFlagRequired("executor-name")
	rootCmd.AddCommand(outreachCmd)
}
