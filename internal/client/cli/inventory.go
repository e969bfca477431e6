package cli

import (
	"context"
	"fmt"
)

// Refresh reloads the user collection. The session manager is notified by
// the inventory itself.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.inventory.Refresh(ctx); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Loaded %d users", len(a.inventory.Users())))
	return nil
}

// ListUsers prints the current user collection. Only signed-in users may see it.
func (a *App) ListUsers(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return nil
	}

	users := a.inventory.Users()
	if len(users) == 0 {
		printlnFn("No users")
		return nil
	}

	for _, u := range users {
		printlnFn(fmt.Sprintf("%-12s %-20s %-10s %s", u.ID, u.Username, u.Role, u.Status))
	}
	return nil
}
