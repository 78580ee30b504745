package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/games"
)

// Play launches a mini-game for the logged-in user.
func (a *App) Play(ctx context.Context, game string) error {
	u, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.games.Play(ctx, game, u.ID); err != nil {
		if errors.Is(err, common.ErrUnknownGame) {
			fmt.Fprintf(a.out, "Unknown game %q. Available: %s\n", game, strings.Join(games.Names(), ", "))
			return nil
		}
		return err
	}
	return nil
}

// Best prints every recorded personal best for the logged-in user.
func (a *App) Best(ctx context.Context) error {
	u, err := a.users.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	records := a.scores.ForUser(ctx, u.ID)
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No personal bests yet. Try 'play <game>'.")
		return nil
	}

	for _, game := range games.Names() {
		rec, ok := records[game]
		if !ok {
			continue
		}
		for key, value := range rec.Best {
			fmt.Fprintf(a.out, "%-10s %s = %.0f (set %s)\n",
				game, key, value, rec.UpdatedAt.Format("2006-01-02"))
		}
	}

	if label, ok := a.scores.BestLabel(ctx, u.ID); ok {
		fmt.Fprintln(a.out, "Standout:", label)
	}
	return nil
}
