package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// NotifyCmd returns the notify command
func NotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Coordinator alerts for camps in trouble",
		Long: `Scan camps for problems (insufficient food for the days remaining,
daily payment rate too low for the roster size) and manage the
resulting notifications.`,
	}

	cmd.AddCommand(notifyGenerateCmd())
	cmd.AddCommand(notifyListCmd())
	cmd.AddCommand(notifyReadCmd())

	return cmd
}

func notifyGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Scan camps and raise notifications",
		Long: `Scan every camp with campers that has not ended. An unread
notification of the same type for the same camp suppresses a new one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}

			raised, err := wire.NotificationService().Generate(NewContext())
			if err != nil {
				return fmt.Errorf("failed to generate notifications: %w", err)
			}

			if raised == 0 {
				fmt.Println("No new notifications")
				return nil
			}
			fmt.Printf("✓ Raised %d notifications\n", raised)
			return nil
		},
	}
}

func notifyListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications",
		Long: `List notifications for the camps you coordinate.

By default, shows only unread notifications. Use --all to include read ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireRole(primary.RoleCoordinator)
			if err != nil {
				return err
			}

			notifications, err := wire.NotificationService().ListNotifications(NewContext(), cfg.CurrentUserID, !all)
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			if len(notifications) == 0 {
				if all {
					fmt.Println("No notifications")
				} else {
					fmt.Println("No unread notifications")
				}
				return nil
			}

			for _, n := range notifications {
				marker := color.New(color.FgYellow).Sprint("●")
				if n.IsRead {
					marker = "○"
				}
				fmt.Printf("%s %d [camp %d] %s\n", marker, n.ID, n.CampID, n.CreatedAt)
				fmt.Printf("  %s\n", n.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include read notifications")

	return cmd
}

func notifyReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			notificationID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid notification ID: %s", args[0])
			}

			if err := wire.NotificationService().MarkRead(NewContext(), notificationID); err != nil {
				return fmt.Errorf("failed to mark notification read: %w", err)
			}

			fmt.Printf("✓ Notification %d marked read\n", notificationID)
			return nil
		},
	}
}
