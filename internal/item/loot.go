package item

import "vexdrift/assets"

// DropRoller rolls the post-battle loot table. It carries the pity
// counter: after three consecutive empty rolls the next miss is upgraded
// to a guaranteed potion.
type DropRoller struct {
	missStreak int
}

// Roll returns the drop for defeating an enemy of the given archetype, or
// ItemNone. The roll derives from the tick counter; the exact tick on
// which a battle ends is effectively random from the player's view.
func (d *DropRoller) Roll(tick uint32, archetype assets.ArchetypeID) assets.ItemID {
	roll := uint8(tick*31 + uint32(archetype)*17)

	result := assets.ItemNone
	switch archetype {
	case assets.ArchetypeScout:
		if roll < 77 {
			result = assets.ItemHPPotionS
		}
	case assets.ArchetypeFighter:
		switch {
		case roll < 64:
			result = assets.ItemHPPotionS
		case roll < 128:
			result = assets.ItemSPCharge
		}
	case assets.ArchetypeHeavy:
		switch {
		case roll < 50:
			result = assets.ItemHPPotionL
		case roll < 100:
			result = assets.ItemATKBoost
		case roll < 180:
			result = assets.ItemSPCharge
		}
	case assets.ArchetypeElite:
		switch {
		case roll < 80:
			result = assets.ItemHPPotionL
		case roll < 130:
			result = assets.ItemFullRestore
		case roll < 200:
			result = assets.ItemDEFBoost
		}
	}

	if result == assets.ItemNone {
		d.missStreak++
		if d.missStreak >= 3 {
			if archetype >= assets.ArchetypeHeavy {
				result = assets.ItemHPPotionL
			} else {
				result = assets.ItemHPPotionS
			}
			d.missStreak = 0
		}
	} else {
		d.missStreak = 0
	}
	return result
}

// Reset clears the pity counter. Called on save and load so a restored
// game never inherits a stale streak.
func (d *DropRoller) Reset() {
	d.missStreak = 0
}
