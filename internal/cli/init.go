package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the camptrack database",
		Long:  `Initialize the camptrack database at ~/.camptrack/camptrack.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSession(); err != nil {
				return err
			}

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing camptrack database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  camptrack seed")
			fmt.Println("  camptrack login admin")

			return nil
		},
	}
}
