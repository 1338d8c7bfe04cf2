// Package cli provides CLI commands for the camptrack application.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/example/camptrack/internal/config"
	"github.com/example/camptrack/internal/db"
	"github.com/example/camptrack/internal/ports/primary"
)

// NewContext creates the context CLI commands run under.
func NewContext() context.Context {
	return context.Background()
}

// loadSession reads the config file and applies the data directory
// override before any command touches the database.
func loadSession() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DataDir != "" {
		db.DataDir = cfg.DataDir
	}
	return cfg, nil
}

// requireLogin loads the session and fails when nobody is logged in.
func requireLogin() (*config.Config, error) {
	cfg, err := loadSession()
	if err != nil {
		return nil, err
	}
	if cfg.CurrentUserID == 0 {
		return nil, fmt.Errorf("not logged in\nHint: run `camptrack login <username>` first")
	}
	return cfg, nil
}

// requireRole loads the session and fails unless the logged-in user
// holds one of the given roles. Admins pass every check.
func requireRole(roles ...string) (*config.Config, error) {
	cfg, err := requireLogin()
	if err != nil {
		return nil, err
	}
	if cfg.CurrentUserRole == primary.RoleAdmin {
		return cfg, nil
	}
	for _, role := range roles {
		if cfg.CurrentUserRole == role {
			return cfg, nil
		}
	}
	return nil, fmt.Errorf("requires %s role (logged in as %s)", strings.Join(roles, " or "), cfg.CurrentUserRole)
}

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to a plain line read otherwise.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// colorStatus renders a derived camp status with a color cue.
func colorStatus(status string) string {
	switch status {
	case "ready", "in_progress":
		return color.New(color.FgGreen).Sprint(status)
	case "completed":
		return color.New(color.FgHiBlue).Sprint(status)
	case "cancelled":
		return color.New(color.FgRed).Sprint(status)
	case "no_campers", "insufficient_food":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return status
	}
}

// colorRole renders a user role with a color cue.
func colorRole(role string) string {
	switch role {
	case primary.RoleAdmin:
		return color.New(color.FgHiMagenta).Sprint(role)
	case primary.RoleCoordinator:
		return color.New(color.FgCyan).Sprint(role)
	case primary.RoleLeader:
		return color.New(color.FgHiGreen).Sprint(role)
	default:
		return role
	}
}
