package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/config"
	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session",
		Long: `Authenticate against the local database and store the session in
~/.camptrack/config.yaml. The password is prompted unless --password
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSession()
			if err != nil {
				return err
			}
			username := args[0]

			if !cmd.Flags().Changed("password") {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, result, err := wire.AuthService().Authenticate(NewContext(), username, password)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			switch result {
			case primary.AuthBadCredentials:
				return fmt.Errorf("invalid username or password")
			case primary.AuthDisabled:
				return fmt.Errorf("account %s is disabled", username)
			}

			cfg.CurrentUser = user.Username
			cfg.CurrentUserID = user.ID
			cfg.CurrentUserRole = user.Role
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			fmt.Printf("✓ Logged in as %s (%s)\n", user.Username, colorRole(user.Role))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSession()
			if err != nil {
				return err
			}
			if cfg.CurrentUserID == 0 {
				fmt.Println("Not logged in")
				return nil
			}

			username := cfg.CurrentUser
			config.ClearSession(cfg)
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			fmt.Printf("✓ Logged out %s\n", username)
			return nil
		},
	}
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s, id %d)\n", cfg.CurrentUser, colorRole(cfg.CurrentUserRole), cfg.CurrentUserID)
			return nil
		},
	}
}
