package domain

// AppState is the root aggregate persisted as the canonical record
type AppState struct {
	SchemaVersion int          `json:"schemaVersion"`
	Avatar        Avatar       `json:"avatar"`
	Boss          Boss         `json:"boss"`
	Journey       Journey      `json:"journey"`
	Settings      Settings     `json:"settings"`
	Today         *DayProgress `json:"today,omitempty"`
}

// DefaultAppState is the state of a fresh install
func DefaultAppState() AppState {
	return AppState{
		SchemaVersion: CurrentSchemaVersion,
		Avatar:        DefaultAvatar(),
		Boss:          DefaultBoss(),
		Journey:       DefaultJourney(),
		Settings:      DefaultSettings(),
	}
}

// Clone returns a deep copy. Transitions operate on clones so a half-applied
// change is never visible through the original.
func (s AppState) Clone() AppState {
	s.Avatar.Inventory = s.Avatar.Inventory.Clone()
	s.Journey = s.Journey.Clone()
	if s.Today != nil {
		today := s.Today.Clone()
		s.Today = &today
	}
	return s
}

// Normalize replaces nil sequences with empty ones so the record always
// serializes arrays rather than null.
func (s *AppState) Normalize() {
	inv := &s.Avatar.Inventory
	if inv.Weapons == nil {
		inv.Weapons = []Item{}
	}
	if inv.Shields == nil {
		inv.Shields = []Item{}
	}
	if inv.Capes == nil {
		inv.Capes = []Item{}
	}
	if inv.Artifacts == nil {
		inv.Artifacts = []Item{}
	}
	if s.Journey.Unlocked == nil {
		s.Journey.Unlocked = []string{}
	}
	if s.Today != nil && s.Today.Meals == nil {
		s.Today.Meals = []Meal{}
	}
}
