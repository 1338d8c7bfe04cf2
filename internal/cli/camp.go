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

// CampCmd returns the camp command
func CampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camp",
		Short: "Manage camps",
		Long:  `Create, list, claim and configure camps.`,
	}

	cmd.AddCommand(campCreateCmd())
	cmd.AddCommand(campListCmd())
	cmd.AddCommand(campShowCmd())
	cmd.AddCommand(campClaimCmd())
	cmd.AddCommand(campSetRateCmd())
	cmd.AddCommand(campSetFoodCmd())
	cmd.AddCommand(campDeleteCmd())

	return cmd
}

func parseCampID(arg string) (int64, error) {
	campID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid camp ID: %s", arg)
	}
	return campID, nil
}

func campCreateCmd() *cobra.Command {
	var location, start, end, campType string
	var lat, lng float64
	var capacity int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new camp",
		Long: `Create a camp owned by the logged-in coordinator.

Examples:
  camptrack camp create "Pine Ridge" --start 2026-07-01 --end 2026-07-14 --type day_camp --capacity 40
  camptrack camp create "North Trek" --start 2026-08-01 --end 2026-08-10 --type expedition --location "Ben Nevis" --lat 56.79 --lng -5.00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireRole(primary.RoleCoordinator)
			if err != nil {
				return err
			}

			camp, err := wire.CampService().CreateCamp(NewContext(), primary.CreateCampRequest{
				Name:          args[0],
				CoordinatorID: cfg.CurrentUserID,
				Location:      location,
				Latitude:      lat,
				Longitude:     lng,
				StartDate:     start,
				EndDate:       end,
				Type:          campType,
				Capacity:      capacity,
			})
			if err != nil {
				return fmt.Errorf("failed to create camp: %w", err)
			}

			fmt.Printf("✓ Created camp %d: %s\n", camp.ID, camp.Name)
			fmt.Printf("  Dates: %s to %s\n", camp.StartDate, camp.EndDate)
			fmt.Printf("  Type: %s, capacity %d\n", camp.Type, camp.Capacity)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&campType, "type", "", "Camp type: day_camp, overnight or expedition")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Maximum roster size")
	cmd.Flags().StringVar(&location, "location", "", "Location name")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("type")

	return cmd
}

func campListCmd() *cobra.Command {
	var mine, unassigned bool
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List camps",
		Long: `List camps with their derived status.

By default every camp is shown. --mine restricts to camps the
logged-in user owns (coordinator) or leads (leader); --unassigned
shows camps still waiting for a leader.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			filters := primary.CampFilters{Unassigned: unassigned, FromDate: from, ToDate: to}
			if mine {
				switch cfg.CurrentUserRole {
				case primary.RoleLeader:
					filters.LeaderID = cfg.CurrentUserID
				default:
					filters.CoordinatorID = cfg.CurrentUserID
				}
			}

			ctx := NewContext()
			camps, err := wire.CampService().ListCamps(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list camps: %w", err)
			}

			if len(camps) == 0 {
				fmt.Println("No camps found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATES\tTYPE\tLEADER\tCAMPERS\tSTATUS")
			fmt.Fprintln(w, "--\t----\t-----\t----\t------\t-------\t------")

			for _, c := range camps {
				leader := c.LeaderUsername
				if leader == "" {
					leader = "-"
				}
				status, err := wire.CampService().CampStatus(ctx, c.ID)
				if err != nil {
					return fmt.Errorf("failed to derive status for camp %d: %w", c.ID, err)
				}
				fmt.Fprintf(w, "%d\t%s\t%s to %s\t%s\t%s\t%d/%d\t%s\n",
					c.ID,
					truncate(c.Name, 30),
					c.StartDate, c.EndDate,
					c.Type,
					leader,
					c.NumCampers, c.Capacity,
					colorStatus(status),
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only camps you own or lead")
	cmd.Flags().BoolVar(&unassigned, "unassigned", false, "Only camps without a leader")
	cmd.Flags().StringVar(&from, "from", "", "Only camps ending on or after this date")
	cmd.Flags().StringVar(&to, "to", "", "Only camps starting on or before this date")

	return cmd
}

func campShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <camp-id>",
		Short: "Show one camp in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			ctx := NewContext()
			camp, err := wire.CampService().GetCamp(ctx, campID)
			if err != nil {
				return fmt.Errorf("failed to get camp: %w", err)
			}
			status, err := wire.CampService().CampStatus(ctx, campID)
			if err != nil {
				return fmt.Errorf("failed to derive status: %w", err)
			}

			fmt.Printf("Camp %d: %s\n", camp.ID, camp.Name)
			fmt.Printf("  Status: %s\n", colorStatus(status))
			fmt.Printf("  Dates: %s to %s (%s)\n", camp.StartDate, camp.EndDate, camp.Type)
			if camp.Location != "" {
				fmt.Printf("  Location: %s (%.4f, %.4f)\n", camp.Location, camp.Latitude, camp.Longitude)
			}
			if camp.LeaderID != 0 {
				fmt.Printf("  Leader: %s (id %d), daily rate %.2f\n", camp.LeaderUsername, camp.LeaderID, camp.LeaderDailyPaymentRate)
			} else {
				fmt.Println("  Leader: unclaimed")
			}
			fmt.Printf("  Campers: %d of %d\n", camp.NumCampers, camp.Capacity)
			fmt.Printf("  Food: %d units approved, %d per camper per day\n", camp.ApprovedDailyFoodStock, camp.DailyFoodPerCamper)
			return nil
		},
	}
}

func campClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <camp-id>",
		Short: "Claim an unassigned camp as its leader",
		Long: `Claim a camp for the logged-in leader. Fails when the camp is
already claimed or when its dates overlap another camp you lead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireRole(primary.RoleLeader)
			if err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			if err := wire.CampService().ClaimCamp(NewContext(), campID, cfg.CurrentUserID); err != nil {
				return fmt.Errorf("failed to claim camp: %w", err)
			}

			fmt.Printf("✓ Camp %d claimed by %s\n", campID, cfg.CurrentUser)
			return nil
		},
	}
}

func campSetRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-rate <camp-id> <rate>",
		Short: "Set the leader's daily payment rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rate: %s", args[1])
			}

			if err := wire.CampService().SetLeaderDailyRate(NewContext(), campID, rate); err != nil {
				return fmt.Errorf("failed to set rate: %w", err)
			}

			fmt.Printf("✓ Camp %d daily rate set to %.2f\n", campID, rate)
			return nil
		},
	}
}

func campSetFoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-food <camp-id> <units-per-camper>",
		Short: "Set the per-camper daily food allotment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			units, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid allotment: %s", args[1])
			}

			if err := wire.CampService().SetDailyFoodPerCamper(NewContext(), campID, units); err != nil {
				return fmt.Errorf("failed to set food allotment: %w", err)
			}

			fmt.Printf("✓ Camp %d food allotment set to %d units per camper per day\n", campID, units)
			return nil
		},
	}
}

func campDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <camp-id>",
		Short: "Delete a camp and everything under it",
		Long: `Delete a camp. The roster, attendance, activities, stock history
and notifications scoped to the camp are removed with it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			ctx := NewContext()
			camp, err := wire.CampService().GetCamp(ctx, campID)
			if err != nil {
				return fmt.Errorf("failed to get camp: %w", err)
			}

			if !force {
				return fmt.Errorf("deleting %q removes its roster and history; re-run with --force", camp.Name)
			}

			if err := wire.CampService().DeleteCamp(ctx, campID); err != nil {
				return fmt.Errorf("failed to delete camp: %w", err)
			}

			fmt.Printf("✓ Deleted camp %d: %s\n", campID, camp.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation")

	return cmd
}
