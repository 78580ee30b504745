package cli

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/shared"
)

// currentName resolves the logged-in user's name for the REPL prompt.
// Empty string means nobody is logged in.
func (a *App) currentName(ctx context.Context) string {
	u, err := a.users.CurrentUser(ctx)
	if err != nil || u == nil {
		return ""
	}
	return u.Name
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetSecret("Enter password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	u, err := a.users.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	if label, ok := a.scores.BestLabel(ctx, u.ID); ok {
		fmt.Fprintln(a.out, label)
	}
	return nil
}

// Logout clears the session. Safe to call when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current account and its standout achievement.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (%s), registered %s\n",
		u.Name, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	if label, ok := a.scores.BestLabel(ctx, u.ID); ok {
		fmt.Fprintln(a.out, label)
	}
	return nil
}
