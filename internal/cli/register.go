package cli

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/shared"
)

// Register prompts for the account details and creates a new user. The new
// account is not logged in automatically.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetSecret("Choose a password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	recovery, err := GetSecret("Choose a recovery phrase (needed to reset your password)", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(recovery)

	u, err := a.users.Register(ctx, name, email, string(password), string(recovery))
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can log in now.\n", u.Email)
	return nil
}
