package games

import (
	"context"
	"fmt"

	"github.com/dkarklins/gamebox/internal/scores"
)

const memoryRounds = 3

// playMemory shows growing digit sequences the player has to type back.
// Every digit entered counts as a move; clearing all rounds records the
// total, and fewer moves is better. A failed round records nothing.
func (r *Runner) playMemory(ctx context.Context, userID string) error {
	fmt.Fprintln(r.out, "Memorize each sequence and type it back.")

	moves := 0
	for round := 0; round < memoryRounds; round++ {
		length := 3 + round
		seq := make([]byte, length)
		for i := range seq {
			seq[i] = byte('0' + r.rng.IntN(10))
		}

		fmt.Fprintf(r.out, "Sequence: %s\n", seq)
		fmt.Fprint(r.out, "Repeat it: ")

		answer, err := r.readLine()
		if err != nil {
			return err
		}
		moves += len(answer)

		if answer != string(seq) {
			fmt.Fprintln(r.out, "Wrong! Game over.")
			return nil
		}
		fmt.Fprintln(r.out, "Correct!")
	}

	fmt.Fprintf(r.out, "Cleared in %d moves.\n", moves)
	return r.report(ctx, userID, scores.GameMemory, scores.KeyBestMoves, float64(moves), scores.Minimize)
}
