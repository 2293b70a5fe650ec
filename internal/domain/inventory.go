package domain

// Inventory holds one ordered sequence per item kind. There is no dedup and no cap.
type Inventory struct {
	Weapons   []Item `json:"weapons" validate:"dive"`
	Shields   []Item `json:"shields" validate:"dive"`
	Capes     []Item `json:"capes" validate:"dive"`
	Artifacts []Item `json:"artifacts" validate:"dive"`
}

// EmptyInventory returns an inventory with non-nil empty sequences
func EmptyInventory() Inventory {
	return Inventory{
		Weapons:   []Item{},
		Shields:   []Item{},
		Capes:     []Item{},
		Artifacts: []Item{},
	}
}

// Add appends the item to the sequence matching its kind.
// Items with an unknown kind are rejected and Add returns false.
func (inv *Inventory) Add(item Item) bool {
	switch item.Kind {
	case ItemKindWeapon:
		inv.Weapons = append(inv.Weapons, item)
	case ItemKindShield:
		inv.Shields = append(inv.Shields, item)
	case ItemKindCape:
		inv.Capes = append(inv.Capes, item)
	case ItemKindArtifact:
		inv.Artifacts = append(inv.Artifacts, item)
	default:
		return false
	}
	return true
}

// Count returns the number of items across all kinds
func (inv Inventory) Count() int {
	return len(inv.Weapons) + len(inv.Shields) + len(inv.Capes) + len(inv.Artifacts)
}

// Items returns every item, weapons first, then shields, capes and artifacts
func (inv Inventory) Items() []Item {
	out := make([]Item, 0, inv.Count())
	out = append(out, inv.Weapons...)
	out = append(out, inv.Shields...)
	out = append(out, inv.Capes...)
	out = append(out, inv.Artifacts...)
	return out
}

// HasID reports whether any item in the inventory carries id
func (inv Inventory) HasID(id string) bool {
	for _, item := range inv.Items() {
		if item.ID == id {
			return true
		}
	}
	return false
}

// DuplicateIDs returns ids that appear more than once, in first-seen order
func (inv Inventory) DuplicateIDs() []string {
	seen := make(map[string]int)
	var dups []string
	for _, item := range inv.Items() {
		seen[item.ID]++
		if seen[item.ID] == 2 {
			dups = append(dups, item.ID)
		}
	}
	return dups
}

// Clone returns a deep copy
func (inv Inventory) Clone() Inventory {
	return Inventory{
		Weapons:   cloneItems(inv.Weapons),
		Shields:   cloneItems(inv.Shields),
		Capes:     cloneItems(inv.Capes),
		Artifacts: cloneItems(inv.Artifacts),
	}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}
