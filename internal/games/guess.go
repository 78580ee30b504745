package games

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/scores"
)

// playGuess is a classic higher/lower guessing game over 1..100. Fewer
// attempts is better.
func (r *Runner) playGuess(ctx context.Context, userID string) error {
	secret := r.rng.IntN(100) + 1
	fmt.Fprintln(r.out, "I picked a number between 1 and 100.")

	attempts := 0
	for {
		guess, err := r.readInt("Your guess: ")
		if err != nil {
			return err
		}
		attempts++

		switch {
		case guess < secret:
			fmt.Fprintln(r.out, "Higher.")
		case guess > secret:
			fmt.Fprintln(r.out, "Lower.")
		default:
			fmt.Fprintf(r.out, "Correct! %d attempts.\n", attempts)
			return r.report(ctx, userID, scores.GameGuess, scores.KeyBestAttempts, float64(attempts), scores.Minimize)
		}
	}
}
