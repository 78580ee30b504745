package cli

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/shared"
)

// Reset verifies the recovery phrase and installs a new password. Any
// session for the account is cleared; the user logs in again afterwards.
func (a *App) Reset(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	recovery, err := GetSecret("Enter your recovery phrase", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(recovery)

	password, err := GetSecret("Choose a new password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.users.ResetPassword(ctx, email, string(recovery), string(password)); err != nil {
		fmt.Fprintf(a.out, "Reset failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Password reset. Please log in with the new password.")
	return nil
}
