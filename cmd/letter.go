package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/legal"
)

var (
	letterPlatform     string
	letterDeceased     string
	letterExecutor     string
	letterRelationship string
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate a formal death notification letter for a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}

		result, err := legal.NewLetters(reg).Notification(letterPlatform, letterDeceased, letterExecutor, letterRelationship)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := letterCmd.Flags()
	f.StringVar(&letterPlatform, "platform", "", "platform name or domain (required)")
	f.StringVar(&letterDeceased, "deceased-name", "", "full name of the deceased (required)")
	f.StringVar(&letterExecutor, "executor-name", "", "name of the executor (required)")
	f.StringVar(&letterRelationship, "relationship", "", "executor's relationship to the deceased")
	_ = letterCmd.MarkFlagRequired("platform")
	_ = letterCmd.MarkFlagRequired("deceased-name")
	_ = letterCmd.MarkFlagRequired("executor-name")
	rootCmd.AddCommand(letterCmd)
}
