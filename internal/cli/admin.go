package cli

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/users"
)

// Users lists every account, most recently registered first. Admin only.
func (a *App) Users(ctx context.Context) error {
	acting, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if acting == nil || !acting.IsAdmin() {
		fmt.Fprintln(a.out, "Admins only.")
		return nil
	}

	for _, u := range a.users.ListUsers(ctx) {
		line := fmt.Sprintf("%-30s %-20s %-5s registered %s",
			u.Email, u.Name, u.Role, u.CreatedAt.Format("2006-01-02"))
		if label, ok := a.scores.BestLabel(ctx, u.ID); ok {
			line += " | " + label
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// ToggleRole flips the target account between user and admin. Admin only,
// never on the acting account.
func (a *App) ToggleRole(ctx context.Context, email string) error {
	acting, target, err := a.resolveTarget(ctx, email)
	if err != nil || target == nil {
		return err
	}

	updated, err := a.users.ToggleRole(ctx, acting.ID, target.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Role change failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s is now %s.\n", updated.Email, updated.Role)
	return nil
}

// DeleteUser removes the target account. Admin only, never on the acting
// account. The target's score records stay behind.
func (a *App) DeleteUser(ctx context.Context, email string) error {
	acting, target, err := a.resolveTarget(ctx, email)
	if err != nil || target == nil {
		return err
	}

	if err := a.users.DeleteUser(ctx, acting.ID, target.ID); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s.\n", target.Email)
	return nil
}

// resolveTarget finds the acting user and the target by email, reporting
// missing prerequisites to the user. A nil target with a nil error means
// the command was handled (message already printed).
func (a *App) resolveTarget(ctx context.Context, email string) (acting, target *users.User, err error) {
	u, err := a.users.CurrentUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil, nil, nil
	}

	t, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(a.out, "No user with email %s.\n", email)
		return nil, nil, nil
	}
	return u, t, nil
}
