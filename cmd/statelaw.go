package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/legal"
)

var stateLawState string

var stateLawCmd = &cobra.Command{
	Use:   "statelaw",
	Short: "Summarize a state's digital asset inheritance law",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		return printJSON(legal.NewLetters(reg).CheckStateLaw(stateLawState))
	},
}

func init() {
	stateLawCmd.Flags().StringVar(&stateLawState, "state", "", "state name, e.g. California (required)")
	_ = stateLawCmd.MarkFlagRequired("state")
	rootCmd.AddCommand(stateLawCmd)
}
