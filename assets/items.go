package assets

// ItemID identifies a consumable. ItemNone marks an empty inventory slot.
type ItemID int

const (
	ItemNone ItemID = iota
	ItemHPPotionS
	ItemHPPotionL
	ItemSPCharge
	ItemATKBoost
	ItemDEFBoost
	ItemFullRestore
	ItemCount
)

// itemNames is indexed by ItemID. Kept to the original 9-character HUD
// column width.
var itemNames = [ItemCount]string{
	ItemNone:        "",
	ItemHPPotionS:   "HP POT S",
	ItemHPPotionL:   "HP POT L",
	ItemSPCharge:    "SP CHARGE",
	ItemATKBoost:    "ATK BOOST",
	ItemDEFBoost:    "DEF BOOST",
	ItemFullRestore: "FULL REST",
}

// itemEffects is the primary numeric effect per item: HP restored for
// potions, SP for the charge, stat bonus for boosts. Full Restore is 0
// because the battle engine special-cases it (full HP and SP).
var itemEffects = [ItemCount]int{
	ItemNone:        0,
	ItemHPPotionS:   30,
	ItemHPPotionL:   80,
	ItemSPCharge:    1,
	ItemATKBoost:    5,
	ItemDEFBoost:    5,
	ItemFullRestore: 0,
}

// ItemName returns the display name for id, or "" for invalid ids.
func ItemName(id ItemID) string {
	if id < 0 || id >= ItemCount {
		return ""
	}
	return itemNames[id]
}

// ItemEffect returns the primary effect value for id, or 0 for invalid ids.
func ItemEffect(id ItemID) int {
	if id < 0 || id >= ItemCount {
		return 0
	}
	return itemEffects[id]
}
