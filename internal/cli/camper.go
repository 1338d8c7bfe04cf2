package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/wire"
)

// CamperCmd returns the camper command
func CamperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camper",
		Short: "Manage camp rosters",
		Long:  `Import, add and list campers.`,
	}

	cmd.AddCommand(camperImportCmd())
	cmd.AddCommand(camperAddCmd())
	cmd.AddCommand(camperListCmd())

	return cmd
}

func camperImportCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "import <camp-id> <csv-file>",
		Short: "Import a roster from a CSV file",
		Long: `Import campers from a CSV file with columns first_name, last_name
and date_of_birth. Rows with blank fields, campers already enrolled in
any camp, and rows beyond the camp's remaining capacity are skipped.
Re-importing the same file changes nothing.

Examples:
  camptrack camper import 3 roster.csv
  camptrack camper import 3 roster.csv --limit 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			result, err := wire.RosterService().ImportCSV(NewContext(), primary.ImportRosterRequest{
				CampID: campID,
				Path:   args[1],
				Limit:  limit,
			})
			if err != nil {
				return fmt.Errorf("failed to import roster: %w", err)
			}

			fmt.Printf("✓ Imported %d campers into camp %d\n", result.Imported, campID)
			if result.SkippedMissing > 0 {
				fmt.Printf("  Skipped %d rows with missing fields\n", result.SkippedMissing)
			}
			if result.SkippedExisting > 0 {
				fmt.Printf("  Skipped %d campers already enrolled\n", result.SkippedExisting)
			}
			if result.SkippedCapacity > 0 {
				fmt.Printf("  Skipped %d rows beyond capacity\n", result.SkippedCapacity)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of rows imported (0 = camp capacity only)")

	return cmd
}

func camperAddCmd() *cobra.Command {
	var dob string

	cmd := &cobra.Command{
		Use:   "add <camp-id> <name>",
		Short: "Enroll a single camper",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			added, err := wire.RosterService().AddCamper(NewContext(), campID, args[1], dob)
			if err != nil {
				return fmt.Errorf("failed to add camper: %w", err)
			}
			if !added {
				fmt.Printf("Camper %s already enrolled in camp %d\n", args[1], campID)
				return nil
			}

			fmt.Printf("✓ Enrolled %s in camp %d\n", args[1], campID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.MarkFlagRequired("dob")

	return cmd
}

func camperListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <camp-id>",
		Short: "List a camp's roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			campers, err := wire.RosterService().ListCampers(NewContext(), campID)
			if err != nil {
				return fmt.Errorf("failed to list campers: %w", err)
			}

			if len(campers) == 0 {
				fmt.Println("No campers enrolled")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATE OF BIRTH")
			fmt.Fprintln(w, "--\t----\t-------------")

			for _, c := range campers {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.DateOfBirth)
			}

			return w.Flush()
		},
	}
}
