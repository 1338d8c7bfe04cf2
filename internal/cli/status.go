package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show an overview for the logged-in user",
		Long: `Show the camps relevant to the logged-in user with their derived
status, plus unread message and notification counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			ctx := NewContext()
			fmt.Printf("Logged in as %s (%s)\n\n", cfg.CurrentUser, colorRole(cfg.CurrentUserRole))

			filters := primary.CampFilters{}
			switch cfg.CurrentUserRole {
			case primary.RoleCoordinator:
				filters.CoordinatorID = cfg.CurrentUserID
			case primary.RoleLeader:
				filters.LeaderID = cfg.CurrentUserID
			}

			camps, err := wire.CampService().ListCamps(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list camps: %w", err)
			}

			if len(camps) == 0 {
				fmt.Println("No camps")
			} else {
				fmt.Printf("Camps (%d):\n", len(camps))
				for _, c := range camps {
					status, err := wire.CampService().CampStatus(ctx, c.ID)
					if err != nil {
						return fmt.Errorf("failed to derive status for camp %d: %w", c.ID, err)
					}
					fmt.Printf("  %d %s (%s to %s) %s\n", c.ID, c.Name, c.StartDate, c.EndDate, colorStatus(status))
				}
			}

			unread, err := wire.MessageService().Inbox(ctx, cfg.CurrentUserID, true)
			if err != nil {
				return fmt.Errorf("failed to check inbox: %w", err)
			}
			fmt.Printf("\nUnread messages: %d\n", len(unread))

			if cfg.CurrentUserRole == primary.RoleCoordinator || cfg.CurrentUserRole == primary.RoleAdmin {
				notifications, err := wire.NotificationService().ListNotifications(ctx, cfg.CurrentUserID, true)
				if err != nil {
					return fmt.Errorf("failed to check notifications: %w", err)
				}
				fmt.Printf("Unread notifications: %d\n", len(notifications))
			}

			return nil
		},
	}
}
