package games

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	mrand "math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/logging"
	"github.com/dkarklins/gamebox/internal/scores"
	"github.com/dkarklins/gamebox/internal/storage"
	"github.com/dkarklins/gamebox/internal/store"
)

const testUser = "user-1"

// seededRng gives every test a reproducible random sequence; tests clone
// the generator to predict what the game will roll.
func seededRng() *mrand.Rand {
	return mrand.New(mrand.NewPCG(7, 42))
}

func newTestRunner(t *testing.T, input string) (*Runner, *scores.Service, *bytes.Buffer) {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sc := scores.NewService(store.New(storage.NewMemory(), "test"), logger)

	var out bytes.Buffer
	r := NewRunner(bufio.NewReader(strings.NewReader(input)), &out, sc)
	r.rng = seededRng()
	r.sleep = func(time.Duration) {}
	return r, sc, &out
}

func TestPlay_UnknownGame(t *testing.T) {
	r, _, _ := newTestRunner(t, "")
	err := r.Play(context.Background(), "chess", testUser)
	require.ErrorIs(t, err, common.ErrUnknownGame)
}

func TestNames_CoverAllGames(t *testing.T) {
	require.ElementsMatch(t,
		[]string{scores.GameReaction, scores.GameGuess, scores.GameMemory, scores.GameWhack, scores.GameRPS},
		Names())
}

func TestPlayReaction_RecordsElapsedMs(t *testing.T) {
	r, sc, out := newTestRunner(t, "\n")

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{start, start.Add(215 * time.Millisecond)}
	r.now = func() time.Time {
		next := times[0]
		times = times[1:]
		return next
	}

	require.NoError(t, r.Play(context.Background(), scores.GameReaction, testUser))

	best := sc.ForUser(context.Background(), testUser)[scores.GameReaction].Best[scores.KeyBestMs]
	require.Equal(t, 215.0, best)
	require.Contains(t, out.String(), "New personal best!")
}

func TestPlayGuess_CountsAttempts(t *testing.T) {
	// Predict the secret with a cloned generator, then guess wrong once
	// and right once.
	secret := seededRng().IntN(100) + 1
	wrong := secret - 1
	if wrong < 1 {
		wrong = secret + 1
	}

	input := fmt.Sprintf("%d\n%d\n", wrong, secret)
	r, sc, _ := newTestRunner(t, input)

	require.NoError(t, r.Play(context.Background(), scores.GameGuess, testUser))

	best := sc.ForUser(context.Background(), testUser)[scores.GameGuess].Best[scores.KeyBestAttempts]
	require.Equal(t, 2.0, best)
}

func TestPlayMemory_RecordsMovesOnClear(t *testing.T) {
	// Replay the generator to predict the three sequences.
	clone := seededRng()
	var input strings.Builder
	moves := 0
	for round := 0; round < memoryRounds; round++ {
		length := 3 + round
		seq := make([]byte, length)
		for i := range seq {
			seq[i] = byte('0' + clone.IntN(10))
		}
		input.WriteString(string(seq) + "\n")
		moves += length
	}

	r, sc, _ := newTestRunner(t, input.String())

	require.NoError(t, r.Play(context.Background(), scores.GameMemory, testUser))

	best := sc.ForUser(context.Background(), testUser)[scores.GameMemory].Best[scores.KeyBestMoves]
	require.Equal(t, float64(moves), best)
}

func TestPlayMemory_FailedRoundRecordsNothing(t *testing.T) {
	r, sc, out := newTestRunner(t, "nope\n")

	require.NoError(t, r.Play(context.Background(), scores.GameMemory, testUser))

	require.Nil(t, sc.ForUser(context.Background(), testUser))
	require.Contains(t, out.String(), "Game over")
}

func TestPlayWhack_PerfectScore(t *testing.T) {
	clone := seededRng()
	var input strings.Builder
	for round := 0; round < whackRounds; round++ {
		input.WriteString(fmt.Sprintf("%d\n", clone.IntN(3)+1))
	}

	r, sc, _ := newTestRunner(t, input.String())

	require.NoError(t, r.Play(context.Background(), scores.GameWhack, testUser))

	best := sc.ForUser(context.Background(), testUser)[scores.GameWhack].Best[scores.KeyBestScore]
	require.Equal(t, float64(whackRounds), best)
}

func TestPlayRPS_RecordsStreak(t *testing.T) {
	// Win twice, then lose on purpose.
	clone := seededRng()
	beats := map[string]string{"s": "r", "r": "p", "p": "s"} // beats[x] defeats x

	var input strings.Builder
	for wins := 0; wins < 2; wins++ {
		mine := []string{"r", "p", "s"}[clone.IntN(3)]
		input.WriteString(beats[mine] + "\n")
	}
	// now lose: play the move the opponent's next roll defeats
	mine := []string{"r", "p", "s"}[clone.IntN(3)]
	input.WriteString(rpsBeats[mine] + "\n")

	r, sc, _ := newTestRunner(t, input.String())

	require.NoError(t, r.Play(context.Background(), scores.GameRPS, testUser))

	best := sc.ForUser(context.Background(), testUser)[scores.GameRPS].Best[scores.KeyBestStreak]
	require.Equal(t, 2.0, best)
}
