// Package health supplies daily activity data to the game
package health

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// Provider reads the day's health statistics
type Provider interface {
	// RequestAuthorization fails with domain.ErrAuthorization when access is refused
	RequestAuthorization(ctx context.Context) error
	// ReadTodayStats fails with domain.ErrDataUnavailable when no data exists for today
	ReadTodayStats(ctx context.Context) (domain.HealthStats, error)
}

// Provider kinds selectable from configuration
const (
	KindMock = "mock"
	KindFile = "file"
)

// NewProvider builds the provider named by kind
func NewProvider(kind, path string) (Provider, error) {
	switch strings.ToLower(kind) {
	case KindMock, "":
		return NewMockProvider(), nil
	case KindFile:
		if path == "" {
			return nil, fmt.Errorf("%w: file health provider needs a path", domain.ErrInvalidInput)
		}
		return NewFileProvider(path), nil
	}
	return nil, fmt.Errorf("%w: unknown health provider %q", domain.ErrInvalidInput, kind)
}
