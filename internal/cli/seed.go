package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var fixtures bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed default accounts and optional demo data",
		Long: `Create the default accounts (admin, coordinator, leader1-3) with
empty passwords. With --fixtures, also load a set of demo camps,
campers, attendance and stock history for exploring the tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSession(); err != nil {
				return err
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedDefaultUsers(database); err != nil {
				return fmt.Errorf("failed to seed default users: %w", err)
			}
			fmt.Println("✓ Default accounts created (admin, coordinator, leader1, leader2, leader3)")

			if fixtures {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Demo fixtures loaded")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "Also load demo camps and campers")

	return cmd
}
