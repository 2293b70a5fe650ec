package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// decodeState decodes a canonical record leniently: fields absent from the record keep
// their defaults and older schema versions are migrated forward. Records written by a
// newer schema are refused.
func decodeState(data []byte) (domain.AppState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.AppState{}, fmt.Errorf("%w: empty record", domain.ErrDeserialization)
	}

	var probe struct {
		SchemaVersion *int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}

	version := 0
	if probe.SchemaVersion != nil {
		version = *probe.SchemaVersion
	}
	switch {
	case version > domain.CurrentSchemaVersion:
		return domain.AppState{}, fmt.Errorf("%w: %w: record version %d, newest supported %d",
			domain.ErrDeserialization, domain.ErrUnsupportedSchema, version, domain.CurrentSchemaVersion)
	case version < 0:
		return domain.AppState{}, fmt.Errorf("%w: negative schema version %d", domain.ErrDeserialization, version)
	}

	state := domain.DefaultAppState()
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}

	state = migrate(state, version)
	repair(&state)
	state.Normalize()
	return state, nil
}

// migrate upgrades a decoded record from version to the current schema
func migrate(state domain.AppState, version int) domain.AppState {
	if version < 1 {
		// version 0 records predate the field; the shape is otherwise identical
		state.SchemaVersion = 1
	}
	return state
}

// repair restores invariants the rules depend on. A loaded record can be hand-edited.
func repair(state *domain.AppState) {
	if state.Avatar.Level < 1 {
		state.Avatar.Level = 1
	}
	if state.Boss.HPPercent < 0 || state.Boss.HPPercent > 1 {
		state.Boss.HPPercent = 1.0
	}
	if state.Journey.DistanceToNext <= 0 {
		state.Journey.DistanceToNext = domain.DefaultDistanceToNext
	}
	if state.Journey.StepsToday < 0 {
		state.Journey.StepsToday = 0
	}
}

// encodeState renders the canonical record
func encodeState(state domain.AppState) ([]byte, error) {
	out := state.Clone()
	out.SchemaVersion = domain.CurrentSchemaVersion
	out.Normalize()
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return append(data, '\n'), nil
}
