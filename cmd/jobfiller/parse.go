package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/collect"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/document"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/parsing"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/profile"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume files...]",
	Short: "Extract profile data from resume files",
	Long: "Parse one or more resume files (txt, md, pdf, docx), merge the " +
		"extracted data into the stored profile, and report what is still missing.",
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var parseInteractive bool

func init() {
	parseCmd.Flags().BoolVar(&parseInteractive, "interactive", false, "Prompt for missing fields after parsing")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	_, log, st, err := setup()
	if err != nil {
		return err
	}

	current, err := st.LoadProfile()
	if err != nil {
		return err
	}

	fragments := make([]*types.Profile, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			text, err := document.ExtractText(path)
			if err != nil {
				return err
			}
			fragments[i] = parsing.ExtractProfile(text)
			log.Debug("resume parsed", zap.String("file", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Merge in argument order so earlier files win conflicts.
	for _, fragment := range fragments {
		profile.Merge(current, fragment)
	}

	missing := profile.Analyze(current)
	if parseInteractive && len(missing) > 0 {
		if err := collect.New(log).Fill(current, missing); err != nil {
			return err
		}
		missing = profile.Analyze(current)
	}

	if err := st.SaveProfile(current); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Profile updated: %s\n", st.ProfilePath())
	printMissing(missing)
	return nil
}

func printMissing(missing []types.MissingField) {
	if len(missing) == 0 {
		fmt.Fprintln(os.Stdout, "Profile is complete.")
		return
	}
	fmt.Fprintf(os.Stdout, "Missing fields (%d):\n", len(missing))
	for _, field := range missing {
		fmt.Fprintf(os.Stdout, "  - %s\n", field)
	}
}
