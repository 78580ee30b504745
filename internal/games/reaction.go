package games

import (
	"context"
	"fmt"
	"time"

	"github.com/dkarklins/gamebox/internal/scores"
)

// playReaction waits a random delay, prints GO!, and measures the time
// until the player presses Enter. Lower is better.
func (r *Runner) playReaction(ctx context.Context, userID string) error {
	fmt.Fprintln(r.out, "Wait for GO!, then press Enter as fast as you can.")

	r.sleep(time.Duration(1000+r.rng.IntN(3000)) * time.Millisecond)

	fmt.Fprintln(r.out, "GO!")
	start := r.now()
	if _, err := r.readLine(); err != nil {
		return err
	}
	ms := float64(r.now().Sub(start).Milliseconds())

	fmt.Fprintf(r.out, "Your reaction time: %.0f ms\n", ms)
	return r.report(ctx, userID, scores.GameReaction, scores.KeyBestMs, ms, scores.Minimize)
}
