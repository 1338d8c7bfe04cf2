package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
		Long: `Create, list, disable and enable accounts.

Accounts are never deleted; disabling keeps historical camps, messages
and notifications pointing at a valid user.`,
	}

	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userListCmd())
	cmd.AddCommand(userDisableCmd())
	cmd.AddCommand(userEnableCmd())
	cmd.AddCommand(userSetPasswordCmd())

	return cmd
}

func userCreateCmd() *cobra.Command {
	var role, password string

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a new account",
		Long: `Create a new account with the given role.

Examples:
  camptrack user create marta --role coordinator
  camptrack user create sam --role leader --password changeme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleAdmin); err != nil {
				return err
			}

			if !cmd.Flags().Changed("password") {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := wire.UserService().CreateUser(NewContext(), primary.CreateUserRequest{
				Username: args[0],
				Password: password,
				Role:     role,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("✓ Created user %d: %s (%s)\n", user.ID, user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Account role: admin, coordinator or leader")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.MarkFlagRequired("role")

	return cmd
}

func userListCmd() *cobra.Command {
	var disabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleAdmin); err != nil {
				return err
			}

			users, err := wire.UserService().ListUsers(NewContext(), disabledOnly)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if len(users) == 0 {
				fmt.Println("No accounts found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tSTATUS\tCREATED")
			fmt.Fprintln(w, "--\t--------\t----\t------\t-------")

			for _, u := range users {
				status := "active"
				if u.IsDisabled {
					status = "disabled"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					u.ID,
					u.Username,
					u.Role,
					status,
					u.CreatedAt,
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&disabledOnly, "disabled", false, "Show only disabled accounts")

	return cmd
}

func userDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <user-id>",
		Short: "Disable an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireRole(primary.RoleAdmin)
			if err != nil {
				return err
			}

			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}
			if userID == cfg.CurrentUserID {
				return fmt.Errorf("refusing to disable the logged-in account")
			}

			if err := wire.UserService().DisableUser(NewContext(), userID); err != nil {
				return fmt.Errorf("failed to disable user: %w", err)
			}

			fmt.Printf("✓ Disabled user %d\n", userID)
			return nil
		},
	}
}

func userEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <user-id>",
		Short: "Reactivate a disabled account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleAdmin); err != nil {
				return err
			}

			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}

			if err := wire.UserService().EnableUser(NewContext(), userID); err != nil {
				return fmt.Errorf("failed to enable user: %w", err)
			}

			fmt.Printf("✓ Enabled user %d\n", userID)
			return nil
		},
	}
}

func userSetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password [user-id]",
		Short: "Change a password",
		Long: `Change an account password. Without a user ID the logged-in
account's own password is changed; changing someone else's requires
the admin role.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			userID := cfg.CurrentUserID
			if len(args) == 1 {
				userID, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid user ID: %s", args[0])
				}
				if userID != cfg.CurrentUserID && cfg.CurrentUserRole != primary.RoleAdmin {
					return fmt.Errorf("changing another account's password requires the admin role")
				}
			}

			if !cmd.Flags().Changed("password") {
				password, err = promptPassword("New password: ")
				if err != nil {
					return err
				}
			}

			if err := wire.UserService().SetPassword(NewContext(), userID, password); err != nil {
				return fmt.Errorf("failed to set password: %w", err)
			}

			fmt.Printf("✓ Password updated for user %d\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")

	return cmd
}
