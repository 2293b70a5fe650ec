package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func TestValidator_ValidateSettings(t *testing.T) {
	v := Get()

	tests := []struct {
		name    string
		quota   int
		keep    int
		wantErr bool
	}{
		{"default", 50, 30, false},
		{"lower bound", 25, 0, false},
		{"upper bound", 500, 1, false},
		{"below minimum", 0, 30, true},
		{"above maximum", 525, 30, true},
		{"not a step of 25", 60, 30, true},
		{"negative keep", 50, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			s.StorageQuotaMB = tt.quota
			s.KeepDaysMin = tt.keep

			err := v.ValidateSettings(s)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateState(t *testing.T) {
	v := Get()

	t.Run("default state is valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateState(domain.DefaultAppState()))
	})

	t.Run("duplicate item ids", func(t *testing.T) {
		s := domain.DefaultAppState()
		s.Avatar.Inventory.Add(domain.Item{ID: "dup", Name: "Potion", Kind: domain.ItemKindArtifact})
		s.Avatar.Inventory.Add(domain.Item{ID: "dup", Name: "Dague rapide", Kind: domain.ItemKindWeapon})

		err := v.ValidateState(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "dup")
	})

	t.Run("level zero", func(t *testing.T) {
		s := domain.DefaultAppState()
		s.Avatar.Level = 0

		err := v.ValidateState(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "level")
	})
}

func TestFormatValidationError(t *testing.T) {
	s := domain.DefaultSettings()
	s.StorageQuotaMB = 60

	err := Get().ValidateStruct(s)
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be a multiple of 25", fields["storageQuotaMB"])
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
