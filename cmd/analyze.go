package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/estate-cli/internal/discovery"
)

var (
	analyzeText string
	analyzeFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan correspondence text for digital asset indicators",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := analyzeText
		if analyzeFile != "" {
			data, err := os.ReadFile(analyzeFile)
			if err != nil {
				return eris.Wrap(err, "read correspondence file")
			}
			text = string(data)
		}
		if text == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return eris.Wrap(err, "read stdin")
			}
			text = string(data)
		}

		return printJSON(discovery.AnalyzeCorrespondence(text))
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "correspondence text to scan")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a file of correspondence text")
	rootCmd.AddCommand(analyzeCmd)
}
