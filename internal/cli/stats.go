package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate statistics",
	}

	cmd.AddCommand(statsLeaderCmd())

	return cmd
}

func statsLeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leader [leader-id]",
		Short: "Show a leader's history across every camp they have led",
		Long: `Aggregate a leader's figures over camps that have started: camps
led, money earned, campers led, incidents, food consumed and the
roster-weighted activity participation rate.

Without an ID the logged-in leader's own figures are shown; other
leaders' figures require the coordinator or admin role.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			leaderID := cfg.CurrentUserID
			if len(args) == 1 {
				leaderID, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid leader ID: %s", args[0])
				}
				if leaderID != cfg.CurrentUserID && cfg.CurrentUserRole == primary.RoleLeader {
					return fmt.Errorf("viewing another leader's stats requires the coordinator or admin role")
				}
			} else if cfg.CurrentUserRole != primary.RoleLeader {
				return fmt.Errorf("a leader ID is required")
			}

			overview, err := wire.StatsService().LeaderOverview(NewContext(), leaderID)
			if err != nil {
				return fmt.Errorf("failed to get leader overview: %w", err)
			}

			fmt.Printf("Leader %d overview\n", leaderID)
			fmt.Printf("  Camps led:           %d\n", overview.CampsLed)
			fmt.Printf("  Money earned:        %.2f\n", overview.MoneyEarned)
			fmt.Printf("  Campers led:         %d\n", overview.CampersLed)
			fmt.Printf("  Incidents:           %d\n", overview.IncidentCount)
			fmt.Printf("  Food consumed:       %d units\n", overview.FoodConsumed)
			fmt.Printf("  Participation rate:  %.0f%%\n", overview.ParticipationRate*100)
			return nil
		},
	}
}
