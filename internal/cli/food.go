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

// FoodCmd returns the food command
func FoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the camp food stock ledger",
		Long: `Track food stock per camp. Every change moves the camp's level and
appends a ledger row, so the history always reconciles with the level.`,
	}

	cmd.AddCommand(foodAllocateCmd())
	cmd.AddCommand(foodTopUpCmd())
	cmd.AddCommand(foodConsumeCmd())
	cmd.AddCommand(foodLevelCmd())
	cmd.AddCommand(foodHistoryCmd())

	return cmd
}

func foodDate(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return time.Now().Format("2006-01-02")
}

func foodAllocateCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "allocate <camp-id> <amount>",
		Short: "Book a camp's opening food allocation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			level, err := wire.StockService().AllocateInitial(NewContext(), campID, foodDate(date), amount)
			if err != nil {
				return fmt.Errorf("failed to allocate stock: %w", err)
			}

			fmt.Printf("✓ Allocated %d units to camp %d (level now %d)\n", amount, campID, level)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Ledger date (YYYY-MM-DD, default today)")

	return cmd
}

func foodTopUpCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "top-up <camp-id> <amount>",
		Short: "Add stock to a camp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			level, err := wire.StockService().TopUp(NewContext(), campID, foodDate(date), amount)
			if err != nil {
				return fmt.Errorf("failed to top up stock: %w", err)
			}

			fmt.Printf("✓ Added %d units to camp %d (level now %d)\n", amount, campID, level)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Ledger date (YYYY-MM-DD, default today)")

	return cmd
}

func foodConsumeCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "consume <camp-id>",
		Short: "Book one day of food consumption",
		Long: `Book a day's consumption: the per-camper allotment times the number
of campers not marked absent for the date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(primary.RoleLeader, primary.RoleCoordinator); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			level, err := wire.StockService().ConsumeDaily(NewContext(), campID, foodDate(date))
			if err != nil {
				return fmt.Errorf("failed to book consumption: %w", err)
			}

			fmt.Printf("✓ Consumption booked for camp %d (level now %d)\n", campID, level)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Ledger date (YYYY-MM-DD, default today)")

	return cmd
}

func foodLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level <camp-id>",
		Short: "Show a camp's current stock level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			level, err := wire.StockService().Level(NewContext(), campID)
			if err != nil {
				return fmt.Errorf("failed to get stock level: %w", err)
			}

			fmt.Printf("Camp %d stock level: %d units\n", campID, level)
			return nil
		},
	}
}

func foodHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <camp-id>",
		Short: "Show a camp's stock ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			entries, err := wire.StockService().History(NewContext(), campID)
			if err != nil {
				return fmt.Errorf("failed to get stock history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No stock movements recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DATE\tCHANGE\tLEVEL\tREASON")
			fmt.Fprintln(w, "----\t------\t-----\t------")

			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%+d\t%d\t%s\n", e.Date, e.ChangeAmount, e.StockAvailable, e.ChangeReason)
			}

			return w.Flush()
		},
	}
}
