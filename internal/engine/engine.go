// Package engine holds the game rules. Scoring functions are pure; transitions take
// an AppState value and return a new one, leaving the input untouched.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/utils"
)

// Engine applies the rules with injectable time, randomness and id generation
type Engine struct {
	now   func() time.Time
	intn  func(n int) int
	newID func() string
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the time source used for loot expiry
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithRandom overrides the uniform source used by Explore. intn must return a value in [0,n).
func WithRandom(intn func(n int) int) Option {
	return func(e *Engine) {
		e.intn = intn
	}
}

// WithIDGenerator overrides item id generation
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an Engine. Without options it uses the wall clock, math/rand and uuids.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		intn:  func(n int) int { return utils.RandomInt(0, n-1) },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) newItem(name string, kind domain.ItemKind, ttl time.Duration) domain.Item {
	item := domain.Item{ID: e.newID(), Name: name, Kind: kind}
	if ttl > 0 {
		expires := e.now().Add(ttl)
		item.ExpiresAt = &expires
	}
	return item
}
