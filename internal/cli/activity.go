package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log camp activities and participation",
	}

	cmd.AddCommand(activityLogCmd())
	cmd.AddCommand(activityListCmd())
	cmd.AddCommand(activityMarkCmd())
	cmd.AddCommand(activityParticipantsCmd())
	cmd.AddCommand(activityHistoryCmd())

	return cmd
}

func activityLogCmd() *cobra.Command {
	var date, notes string
	var incidents int

	cmd := &cobra.Command{
		Use:   "log <camp-id> <name>",
		Short: "Log an activity for a camp day",
		Long: `Log an activity.

Examples:
  camptrack activity log 3 "Canoe trip" --incidents 1 --notes "one capsize, no injuries"
  camptrack activity log 3 "Campfire" --date 2026-07-04`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleLeader); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			activity, err := wire.ActivityService().LogActivity(NewContext(), primary.LogActivityRequest{
				CampID:        campID,
				Date:          date,
				Name:          args[1],
				IncidentCount: incidents,
				Notes:         notes,
			})
			if err != nil {
				return fmt.Errorf("failed to log activity: %w", err)
			}

			fmt.Printf("✓ Logged activity %d: %s on %s\n", activity.ID, activity.Name, activity.Date)
			if incidents > 0 {
				fmt.Printf("  Incidents: %d\n", incidents)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&incidents, "incidents", 0, "Number of incidents during the activity")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func activityListCmd() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list [camp-id]",
		Short: "List activities for a camp",
		Long: `List a camp's activity timeline in date order. With --mine and no
camp ID, lists activities across every camp the logged-in leader leads.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireLogin()
			if err != nil {
				return err
			}

			var activities []*primary.Activity
			switch {
			case len(args) == 1:
				campID, err := parseCampID(args[0])
				if err != nil {
					return err
				}
				activities, err = wire.ActivityService().Timeline(NewContext(), campID)
				if err != nil {
					return fmt.Errorf("failed to list activities: %w", err)
				}
			case mine:
				activities, err = wire.ActivityService().LeaderActivities(NewContext(), cfg.CurrentUserID)
				if err != nil {
					return fmt.Errorf("failed to list activities: %w", err)
				}
			default:
				return fmt.Errorf("a camp ID or --mine is required")
			}

			if len(activities) == 0 {
				fmt.Println("No activities logged")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCAMP\tACTIVITY\tINCIDENTS\tNOTES")
			fmt.Fprintln(w, "--\t----\t----\t--------\t---------\t-----")

			for _, a := range activities {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
					a.ID,
					a.Date,
					truncate(a.CampName, 20),
					truncate(a.Name, 30),
					a.IncidentCount,
					truncate(a.Notes, 40),
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Activities across every camp you lead")

	return cmd
}

func activityMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <activity-id> <camper-id>",
		Short: "Mark a camper as a participant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleLeader); err != nil {
				return err
			}
			activityID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid activity ID: %s", args[0])
			}
			camperID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid camper ID: %s", args[1])
			}

			added, err := wire.ActivityService().MarkParticipation(NewContext(), activityID, camperID)
			if err != nil {
				return fmt.Errorf("failed to mark participation: %w", err)
			}
			if !added {
				fmt.Printf("Camper %d already marked for activity %d\n", camperID, activityID)
				return nil
			}

			fmt.Printf("✓ Camper %d marked for activity %d\n", camperID, activityID)
			return nil
		},
	}
}

func activityParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants <activity-id>",
		Short: "List the campers recorded for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			activityID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid activity ID: %s", args[0])
			}

			campers, err := wire.ActivityService().Participants(NewContext(), activityID)
			if err != nil {
				return fmt.Errorf("failed to list participants: %w", err)
			}

			if len(campers) == 0 {
				fmt.Println("No participants recorded")
				return nil
			}

			for _, c := range campers {
				fmt.Printf("%d  %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func activityHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <camper-id>",
		Short: "List the activities a camper attended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			camperID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid camper ID: %s", args[0])
			}

			activities, err := wire.ActivityService().CamperHistory(NewContext(), camperID)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(activities) == 0 {
				fmt.Println("No activities recorded for this camper")
				return nil
			}

			for _, a := range activities {
				fmt.Printf("%s  %s (%s)\n", a.Date, a.Name, a.CampName)
			}
			return nil
		},
	}
}
