package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/profile"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report missing fields in the stored profile",
	RunE:  runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the missing-field list as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	_, _, st, err := setup()
	if err != nil {
		return err
	}

	current, err := st.LoadProfile()
	if err != nil {
		return err
	}

	missing := profile.Analyze(current)
	if analyzeJSON {
		out, err := json.MarshalIndent(missing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printMissing(missing)
	return nil
}
