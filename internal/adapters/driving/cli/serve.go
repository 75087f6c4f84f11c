package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the token relay server",
	Long: `Runs the HTTP relay that exchanges authorization codes for tokens
on behalf of the browser console.

The relay holds the OAuth client secret so the browser never sees it.
Supply the secret via the SENTENG_GOOGLE_CLIENT_SECRET environment
variable; it is never written to the config file and never logged.`,
	RunE: runServe,
}

var serveListen string

func init() {
	serveCmd.Flags().StringVar(
		&serveListen, "listen", "", "listen address (default from settings, e.g. :8787)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := httpapi.Config{
		ClientID:       settings.Google.ClientID,
		ClientSecret:   settings.Google.ClientSecret,
		AllowedOrigins: settings.Relay.AllowedOrigins,
		Listen:         settings.Relay.Listen,
	}
	if serveListen != "" {
		cfg.Listen = serveListen
	}

	if !settings.Google.HasSecret() {
		cmd.Println("Warning: no client secret configured; token exchanges will fail.")
		cmd.Println("Set SENTENG_GOOGLE_CLIENT_SECRET and restart.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Token relay listening on %s. Press Ctrl+C to stop.\n", cfg.Listen)

	server := httpapi.New(cfg, nil)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("relay server failed: %w", err)
	}

	cmd.Println("Relay stopped.")
	return nil
}
