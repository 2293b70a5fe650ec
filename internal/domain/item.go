package domain

import "time"

// ItemKind selects which inventory sequence an item belongs to
type ItemKind string

const (
	ItemKindWeapon   ItemKind = "weapon"
	ItemKindShield   ItemKind = "shield"
	ItemKindCape     ItemKind = "cape"
	ItemKindArtifact ItemKind = "artifact"
)

// Valid reports whether k is one of the four known kinds
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindWeapon, ItemKindShield, ItemKindCape, ItemKindArtifact:
		return true
	}
	return false
}

// Item is loot granted by health thresholds or exploration.
// ExpiresAt is informational only; nothing removes expired items.
type Item struct {
	ID        string     `json:"id" validate:"required"`
	Name      string     `json:"name"`
	Kind      ItemKind   `json:"kind" validate:"oneof=weapon shield cape artifact"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the item carries an expiry that is not after now
func (i Item) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !i.ExpiresAt.After(now)
}

func (i Item) clone() Item {
	if i.ExpiresAt != nil {
		t := *i.ExpiresAt
		i.ExpiresAt = &t
	}
	return i
}
