package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/auth"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/browser"
)

var loginCmd = &cobra.Command{
	Use:   "login [domain or site keyword]",
	Short: "Register credentials for a job site",
	Long: "Store a username and password for a site, keyed by domain " +
		"(careers.example.com) or site keyword (linkedin). The password is " +
		"prompted for and never echoed or logged.",
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var (
	loginUsername string
	loginVerify   bool
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username or email for the site")
	loginCmd.Flags().BoolVar(&loginVerify, "verify", false, "Log in to the site now and persist the session")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, args []string) error {
	cfg, log, st, err := setup()
	if err != nil {
		return err
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	if key == "" {
		return fmt.Errorf("site key is empty")
	}

	username := loginUsername
	if username == "" {
		prompt := promptui.Prompt{Label: "Username"}
		if username, err = prompt.Run(); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	passwordPrompt := promptui.Prompt{Label: "Password", Mask: '*'}
	password, err := passwordPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password is empty")
	}

	credentials, err := st.LoadCredentials()
	if err != nil {
		return err
	}
	credential := credentials[key]
	credential.Username = strings.TrimSpace(username)
	credential.Password = password
	credentials[key] = credential

	if err := st.SaveCredentials(credentials); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Credential stored for %s\n", key)
	if !loginVerify {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	b, err := browser.New(ctx, browser.Options{Headless: cfg.BrowserHeadless()}, log)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.Navigate(ctx, siteURL(key)); err != nil {
		return err
	}
	if err := b.WaitForLoad(ctx); err != nil {
		return err
	}

	authenticator := auth.New(b, st, credentials, nil, log)
	result, err := authenticator.Authenticate(ctx, siteURL(key))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Authentication: %s (%s)\n", result.State, result.Strategy)
	return nil
}

// siteURL turns a bare domain or site keyword into a navigable URL. Known
// site keywords resolve through the registry's login URL.
func siteURL(key string) string {
	for _, site := range auth.DefaultRegistry() {
		if site.DomainKeyword == key {
			return site.LoginURL
		}
	}
	return "https://" + key
}
