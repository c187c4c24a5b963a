package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/applying"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/auth"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/browser"
)

var applyCmd = &cobra.Command{
	Use:   "apply [job posting URLs...]",
	Short: "Fill application forms for the given job postings",
	Long: "Open each job posting in a browser, authenticate where needed, and " +
		"fill the application form from the stored profile. Forms are never " +
		"submitted; review and submit each application yourself.",
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, args []string) error {
	cfg, log, st, err := setup()
	if err != nil {
		return err
	}

	current, err := st.LoadProfile()
	if err != nil {
		return err
	}

	credentials, err := st.LoadCredentials()
	if err != nil {
		return err
	}
	// Credentials collected into the profile participate too; the store's
	// credential file wins conflicts.
	for key, credential := range current.Credentials {
		if _, ok := credentials[key]; !ok {
			credentials[key] = credential
		}
	}

	// The overall timeout scales with the number of postings.
	perPosting := time.Duration(cfg.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(),
		perPosting*time.Duration(len(args))+time.Duration(cfg.DelaySeconds*len(args))*time.Second)
	defer cancel()

	b, err := browser.New(ctx, browser.Options{Headless: cfg.BrowserHeadless()}, log)
	if err != nil {
		return err
	}
	defer b.Close()

	authenticator := auth.New(b, st, credentials, nil, log)
	runner := applying.NewRunner(b, authenticator,
		time.Duration(cfg.DelaySeconds)*time.Second, log)

	results := runner.Apply(ctx, current, args)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	failed := 0
	for _, result := range results {
		if result.Error != "" {
			failed++
		}
	}
	fmt.Fprintf(os.Stdout, "%d of %d application(s) filled; review and submit them in the browser\n",
		len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d application(s) failed", failed)
	}
	return nil
}
