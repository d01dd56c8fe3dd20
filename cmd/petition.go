package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/legal"
)

var (
	petitionState    string
	petitionDeceased string
	petitionExecutor string
	petitionAssets   string
)

var petitionCmd = &cobra.Command{
	Use:   "petition",
	Short: "Generate a probate petition outline for digital assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}

		result, err := legal.NewLetters(reg).Petition(petitionState, petitionDeceased, petitionExecutor, petitionAssets)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	f := petitionCmd.Flags()
	f.StringVar(&petitionState, "state", "", "probate jurisdiction, e.g. California (required)")
	f.StringVar(&petitionDeceased, "deceased-name", "", "full name of the deceased (required)")
	f.StringVar(&petitionExecutor, "executor-name", "", "name of the proposed executor (required)")
	f.StringVar(&petitionAssets, "assets", "", "summary of known digital assets")
	_ = petitionCmd.MarkFlagRequired("state")
	_ = petitionCmd.MarkFlagRequired("deceased-name")
	_ = petitionCmd.MarkFlagRequired("executor-name")
	rootCmd.AddCommand(petitionCmd)
}
