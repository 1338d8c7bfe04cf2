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

// AttendanceCmd returns the attendance command
func AttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Record and inspect daily attendance",
	}

	cmd.AddCommand(attendanceRecordCmd())
	cmd.AddCommand(attendanceSheetCmd())

	return cmd
}

func attendanceRecordCmd() *cobra.Command {
	var date, status string

	cmd := &cobra.Command{
		Use:   "record <camp-id> <camper-id>",
		Short: "Record a camper's attendance for one day",
		Long: `Record attendance. Recording the same camper and date again
overwrites the earlier status.

Examples:
  camptrack attendance record 3 17 --status present
  camptrack attendance record 3 17 --status absent --date 2026-07-04`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleLeader, primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			camperID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid camper ID: %s", args[1])
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			err = wire.AttendanceService().RecordAttendance(NewContext(), primary.RecordAttendanceRequest{
				CampID:   campID,
				CamperID: camperID,
				Date:     date,
				Status:   status,
			})
			if err != nil {
				return fmt.Errorf("failed to record attendance: %w", err)
			}

			fmt.Printf("✓ Camper %d marked %s for %s\n", camperID, status, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status: pending, present or absent")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.MarkFlagRequired("status")

	return cmd
}

func attendanceSheetCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sheet <camp-id>",
		Short: "Show a camp's attendance sheet for one day",
		Long: `Show the whole roster with each camper's status for the date.
Campers without a recorded status show as pending.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			ctx := NewContext()
			entries, err := wire.AttendanceService().Sheet(ctx, campID, date)
			if err != nil {
				return fmt.Errorf("failed to get attendance sheet: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No campers enrolled")
				return nil
			}

			fmt.Printf("Attendance for camp %d on %s\n\n", campID, date)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CAMPER\tNAME\tSTATUS")
			fmt.Fprintln(w, "------\t----\t------")

			present := 0
			for _, e := range entries {
				if e.Status == primary.AttendancePresent {
					present++
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", e.CamperID, e.CamperName, e.Status)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			absences, err := wire.AttendanceService().Absences(ctx, campID, date)
			if err != nil {
				return fmt.Errorf("failed to count absences: %w", err)
			}
			fmt.Printf("\nTotal: %d campers (%d present, %d absent)\n", len(entries), present, absences)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}
