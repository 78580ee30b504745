// Package scores implements the achievement ledger: per-user, per-game best
// values merged under a maximize or minimize policy. UpdateBest is the sole
// mutation path for achievement data; game engines never write scores
// directly.
package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/logging"
	"github.com/dkarklins/gamebox/internal/store"
)

const storeKey = "scores"

// Policy decides when a new value beats the stored one.
type Policy string

const (
	// Maximize keeps the largest value seen (strict >).
	Maximize Policy = "maximize"
	// Minimize keeps the smallest value seen (strict <).
	Minimize Policy = "minimize"
)

// Game identifiers and the metric key each game reports.
const (
	GameReaction = "reaction"
	GameGuess    = "guess"
	GameMemory   = "memory"
	GameWhack    = "whack"
	GameRPS      = "rps"

	KeyBestMs       = "bestMs"
	KeyBestAttempts = "bestAttempts"
	KeyBestMoves    = "bestMoves"
	KeyBestScore    = "bestScore"
	KeyBestStreak   = "bestStreak"
)

// GameRecord holds the named numeric bests for one game.
type GameRecord struct {
	Best      map[string]float64 `json:"best"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Book maps user id → game id → record. Records are keyed by user id only;
// deleting the owning user leaves its entry behind (orphaned, not removed).
type Book map[string]map[string]GameRecord

type Service struct {
	store  *store.Store
	logger logging.Logger
	now    func() time.Time
}

func NewService(st *store.Store, logger logging.Logger) *Service {
	return &Service{store: st, logger: logger.With("component", "scores"), now: time.Now}
}

// UpdateBest merges value into the record at (userID, gameID, key). The
// first write for a slot always counts as an improvement; afterwards the
// value is replaced only when it strictly beats the stored one under the
// policy. Exactly one store update per call.
func (s *Service) UpdateBest(ctx context.Context, userID, gameID, key string, value float64, policy Policy) (bool, error) {
	if policy != Maximize && policy != Minimize {
		return false, common.ErrUnknownPolicy
	}

	improved := false
	_, err := store.Update(ctx, s.store, storeKey, Book(nil), func(b Book) Book {
		if b == nil {
			b = Book{}
		}
		games := b[userID]
		if games == nil {
			games = map[string]GameRecord{}
			b[userID] = games
		}

		rec := games[gameID]
		if rec.Best == nil {
			rec.Best = map[string]float64{}
		}

		prev, exists := rec.Best[key]
		improved = !exists ||
			(policy == Maximize && value > prev) ||
			(policy == Minimize && value < prev)
		if improved {
			rec.Best[key] = value
			rec.UpdatedAt = s.now()
			games[gameID] = rec
		}
		return b
	})
	if err != nil {
		return false, err
	}

	if improved {
		s.logger.Debug(ctx, "new personal best", "user", userID, "game", gameID, "key", key, "value", value)
	}
	return improved, nil
}

// ForUser returns the user's records by game id. Missing users yield nil.
func (s *Service) ForUser(ctx context.Context, userID string) map[string]GameRecord {
	return store.Get(ctx, s.store, storeKey, Book(nil))[userID]
}

// bestPriority fixes the order BestLabel searches in; the first game with a
// recorded metric wins.
var bestPriority = []struct {
	game   string
	key    string
	format string
}{
	{GameReaction, KeyBestMs, "Fastest reaction: %.0f ms"},
	{GameGuess, KeyBestAttempts, "Fewest guesses: %.0f"},
	{GameMemory, KeyBestMoves, "Fewest memory moves: %.0f"},
	{GameWhack, KeyBestScore, "Top whack score: %.0f"},
	{GameRPS, KeyBestStreak, "Best RPS streak: %.0f"},
}

// BestLabel returns a one-line summary of the user's standout achievement,
// or ok=false when the user has no recorded bests.
func (s *Service) BestLabel(ctx context.Context, userID string) (string, bool) {
	games := s.ForUser(ctx, userID)
	for _, p := range bestPriority {
		rec, ok := games[p.game]
		if !ok {
			continue
		}
		if v, ok := rec.Best[p.key]; ok {
			return fmt.Sprintf(p.format, v), true
		}
	}
	return "", false
}
