// Package games contains the five GameBox mini-games. Each game runs one
// interactive round and reports the result through the score ledger, which
// alone decides whether the result is a new personal best.
package games

import (
	"bufio"
	"context"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/scores"
)

// Runner executes game rounds for one input/output pair. The rng, sleep and
// now fields are seams for deterministic tests.
type Runner struct {
	reader *bufio.Reader
	out    io.Writer
	scores *scores.Service

	rng   *mrand.Rand
	sleep func(time.Duration)
	now   func() time.Time
}

func NewRunner(reader *bufio.Reader, out io.Writer, sc *scores.Service) *Runner {
	return &Runner{
		reader: reader,
		out:    out,
		scores: sc,
		rng:    mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64())),
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Names lists the playable game identifiers.
func Names() []string {
	return []string{scores.GameReaction, scores.GameGuess, scores.GameMemory, scores.GameWhack, scores.GameRPS}
}

// Play runs one round of the named game for userID.
func (r *Runner) Play(ctx context.Context, game, userID string) error {
	switch game {
	case scores.GameReaction:
		return r.playReaction(ctx, userID)
	case scores.GameGuess:
		return r.playGuess(ctx, userID)
	case scores.GameMemory:
		return r.playMemory(ctx, userID)
	case scores.GameWhack:
		return r.playWhack(ctx, userID)
	case scores.GameRPS:
		return r.playRPS(ctx, userID)
	default:
		return common.ErrUnknownGame
	}
}

func (r *Runner) readLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *Runner) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(r.out, "Please enter a number.")
			continue
		}
		return n, nil
	}
}

// report pushes a finished round into the ledger and tells the player
// whether it was a personal best.
func (r *Runner) report(ctx context.Context, userID, game, key string, value float64, policy scores.Policy) error {
	improved, err := r.scores.UpdateBest(ctx, userID, game, key, value, policy)
	if err != nil {
		return err
	}
	if improved {
		fmt.Fprintln(r.out, "New personal best!")
	}
	return nil
}
