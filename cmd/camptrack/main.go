package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/camptrack/internal/cli"
	"github.com/example/camptrack/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "camptrack",
		Short:   "CampTrack - summer camp operations from the terminal",
		Version: version.String(),
		Long: `CampTrack manages summer camp operations: camps, camper rosters,
attendance, activities, food stock and leader payments, all persisted
in a single local SQLite file.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	// Entity commands
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.CampCmd())
	rootCmd.AddCommand(cli.CamperCmd())
	rootCmd.AddCommand(cli.AttendanceCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.FoodCmd())
	rootCmd.AddCommand(cli.NotifyCmd())
	rootCmd.AddCommand(cli.MailCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
