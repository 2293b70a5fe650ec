package domain

// Avatar is the player's progression. XP may go negative; no floor is enforced.
// HPCurrent is clamped at zero by the transitions that lower it, and HPMax is not
// guaranteed to bound HPCurrent.
type Avatar struct {
	Level     int       `json:"level" validate:"min=1"`
	XP        int       `json:"xp"`
	HPCurrent int       `json:"hpCurrent"`
	HPMax     int       `json:"hpMax" validate:"min=0"`
	Streak    int       `json:"streak" validate:"min=0"`
	Inventory Inventory `json:"inventory"`
}

// DefaultAvatar returns a level 1 avatar at full health
func DefaultAvatar() Avatar {
	return Avatar{
		Level:     DefaultAvatarLevel,
		XP:        0,
		HPCurrent: DefaultAvatarHP,
		HPMax:     DefaultAvatarHP,
		Streak:    0,
		Inventory: EmptyInventory(),
	}
}

// XPForNextLevel is the XP threshold checked at daily close
func (a Avatar) XPForNextLevel() int {
	return a.Level * XPPerLevel
}
