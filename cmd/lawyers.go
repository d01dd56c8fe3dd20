package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/directory"
)

var (
	lawyersZipcode   string
	lawyersRadius    int
	lawyersSpecialty string
)

var lawyersCmd = &cobra.Command{
	Use:   "lawyers",
	Short: "Find nearby probate attorneys from the seeded directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry()
		if err != nil {
			return err
		}
		return printJSON(directory.New(reg).Find(lawyersZipcode, lawyersRadius, lawyersSpecialty))
	},
}

func init() {
	f := lawyersCmd.Flags()
	f.StringVar(&lawyersZipcode, "zipcode", "", "5-digit US zipcode (required)")
	f.IntVar(&lawyersRadius, "radius", directory.DefaultRadiusMiles, "search radius in miles")
	f.StringVar(&lawyersSpecialty, "specialty", "probate", "desired specialty (advisory only)")
	_ = lawyersCmd.MarkFlagRequired("zipcode")
	rootCmd.AddCommand(lawyersCmd)
}
