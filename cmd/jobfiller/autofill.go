package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/browser"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/forms"
)

var autofillCmd = &cobra.Command{
	Use:   "autofill",
	Short: "Dry-run the form mapper against a page",
	Long: "Classify the form fields of a page and report which profile values " +
		"would be filled, without touching any browser input. The page comes " +
		"from a saved HTML file (--html) or a live URL (--url).",
	RunE: runAutofill,
}

var (
	autofillHTMLFile string
	autofillURL      string
)

func init() {
	autofillCmd.Flags().StringVar(&autofillHTMLFile, "html", "", "Path to a saved HTML file")
	autofillCmd.Flags().StringVar(&autofillURL, "url", "", "URL to load in a headless browser")
	autofillCmd.MarkFlagsMutuallyExclusive("html", "url")
	autofillCmd.MarkFlagsOneRequired("html", "url")

	rootCmd.AddCommand(autofillCmd)
}

func runAutofill(_ *cobra.Command, _ []string) error {
	cfg, log, st, err := setup()
	if err != nil {
		return err
	}

	current, err := st.LoadProfile()
	if err != nil {
		return err
	}

	var html string
	if autofillHTMLFile != "" {
		data, err := os.ReadFile(autofillHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read html file: %w", err)
		}
		html = string(data)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()

		b, err := browser.New(ctx, browser.Options{Headless: cfg.BrowserHeadless()}, log)
		if err != nil {
			return err
		}
		defer b.Close()

		if err := b.Navigate(ctx, autofillURL); err != nil {
			return err
		}
		if err := b.WaitForLoad(ctx); err != nil {
			return err
		}
		if html, err = b.HTML(ctx); err != nil {
			return err
		}
	}

	descriptors, err := forms.SnapshotHTML(html)
	if err != nil {
		return err
	}
	classifications := forms.NewClassifier().ClassifyAll(descriptors)
	report := forms.MapValues(current, classifications)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	fmt.Fprintf(os.Stdout, "%d field(s) would be filled, %d skipped\n",
		report.FilledCount(), len(report.Skipped))
	return nil
}
