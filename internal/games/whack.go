package games

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/scores"
)

const whackRounds = 10

// playWhack shows a mole in one of three holes for ten rounds; hitting the
// right hole scores a point. Higher is better.
func (r *Runner) playWhack(ctx context.Context, userID string) error {
	fmt.Fprintln(r.out, "Whack the mole! Type the hole number (1-3) it pops out of.")

	hits := 0
	for round := 0; round < whackRounds; round++ {
		hole := r.rng.IntN(3) + 1

		holes := []string{"( )", "( )", "( )"}
		holes[hole-1] = "(o)"
		fmt.Fprintf(r.out, "%s %s %s\n", holes[0], holes[1], holes[2])

		answer, err := r.readInt("Whack: ")
		if err != nil {
			return err
		}
		if answer == hole {
			hits++
			fmt.Fprintln(r.out, "Bonk!")
		} else {
			fmt.Fprintln(r.out, "Missed!")
		}
	}

	fmt.Fprintf(r.out, "You scored %d/%d.\n", hits, whackRounds)
	return r.report(ctx, userID, scores.GameWhack, scores.KeyBestScore, float64(hits), scores.Maximize)
}
