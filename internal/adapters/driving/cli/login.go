package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with the studio Google account",
	Long: `Signs in with Google and stores the session locally.

Opens a browser for consent. The granted session covers the project
sheet, Drive folders and the studio calendar, and is reused by every
command until you run 'senteng logout'.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity and role",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	if sessionService.Initialize(ctx) {
		session, err := sessionService.Current()
		if err == nil {
			cmd.Printf("Already signed in as %s.\n", formatIdentity(session))
			cmd.Println("Run 'senteng logout' first to switch accounts.")
			return nil
		}
	}

	cmd.Println("Opening browser for Google sign-in...")

	session, err := sessionService.SignIn(ctx)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cmd.Printf("Signed in as %s.\n", formatIdentity(session))
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	if err := sessionService.SignOut(ctx); err != nil {
		return fmt.Errorf("sign-out failed: %w", err)
	}

	cmd.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	sessionService.Initialize(ctx)
	session, err := sessionService.Current()
	if errors.Is(err, domain.ErrAuthRequired) {
		cmd.Println("Not signed in. Run 'senteng login' to sign in.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	cmd.Printf("Signed in as %s\n", formatIdentity(session))

	access, err := sessionService.Access(ctx)
	if err != nil {
		logger.Warn("access lookup failed: %v", err)
		return nil
	}
	cmd.Printf("Role: %s\n", access.Role)
	if len(access.Pages) > 0 {
		cmd.Printf("Pages: %s\n", strings.Join(access.Pages, ", "))
	}
	return nil
}

// formatIdentity renders a session's profile for terminal output.
// Profile enrichment is best-effort, so both fields can be empty.
func formatIdentity(session *domain.Session) string {
	switch {
	case session.Profile.Name != "" && session.Profile.Email != "":
		return fmt.Sprintf("%s <%s>", session.Profile.Name, session.Profile.Email)
	case session.Profile.Email != "":
		return session.Profile.Email
	case session.Profile.Name != "":
		return session.Profile.Name
	default:
		return "(profile unavailable)"
	}
}
