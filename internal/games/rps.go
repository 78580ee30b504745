package games

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/scores"
)

var rpsBeats = map[string]string{"r": "s", "p": "r", "s": "p"}

var rpsNames = map[string]string{"r": "rock", "p": "paper", "s": "scissors"}

// playRPS plays rock-paper-scissors until the player loses. Ties keep the
// streak alive; the longest win streak is recorded, higher is better.
func (r *Runner) playRPS(ctx context.Context, userID string) error {
	fmt.Fprintln(r.out, "Rock, paper, scissors! Play r, p or s; first loss ends the run.")

	streak := 0
	for {
		fmt.Fprint(r.out, "Your move: ")
		move, err := r.readLine()
		if err != nil {
			return err
		}
		if _, ok := rpsBeats[move]; !ok {
			fmt.Fprintln(r.out, "Play r, p or s.")
			continue
		}

		mine := []string{"r", "p", "s"}[r.rng.IntN(3)]
		fmt.Fprintf(r.out, "I play %s.\n", rpsNames[mine])

		switch {
		case move == mine:
			fmt.Fprintln(r.out, "Tie, go again.")
		case rpsBeats[move] == mine:
			streak++
			fmt.Fprintf(r.out, "You win! Streak: %d.\n", streak)
		default:
			fmt.Fprintln(r.out, "You lose!")
			if streak == 0 {
				return nil
			}
			return r.report(ctx, userID, scores.GameRPS, scores.KeyBestStreak, float64(streak), scores.Maximize)
		}
	}
}
