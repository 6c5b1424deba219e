// Package assets holds the static data tables that drive the simulation:
// battle archetypes, boss definitions, item effects, level growth, and the
// per-zone wave schedules. Everything here is plain data; the packages under
// internal/ interpret it.
package assets

// ArchetypeID identifies a turn-based battle opponent class.
type ArchetypeID int

const (
	ArchetypeScout ArchetypeID = iota
	ArchetypeFighter
	ArchetypeHeavy
	ArchetypeElite
	ArchetypeCount
)

// ArchetypeDef is the base battle stat block for one opponent class.
// Zone scaling is applied on top of these by the battle engine.
type ArchetypeDef struct {
	Name  string
	HP    int
	ATK   int
	DEF   int
	SPD   int
	MaxSP int
	SP    int
	XP    int // base XP award on victory
}

var archetypes = [ArchetypeCount]ArchetypeDef{
	ArchetypeScout:   {Name: "SCOUT", HP: 30, ATK: 8, DEF: 3, SPD: 5, MaxSP: 0, SP: 0, XP: 15},
	ArchetypeFighter: {Name: "FIGHTER", HP: 60, ATK: 14, DEF: 8, SPD: 10, MaxSP: 2, SP: 2, XP: 30},
	ArchetypeHeavy:   {Name: "HEAVY", HP: 100, ATK: 20, DEF: 15, SPD: 6, MaxSP: 3, SP: 3, XP: 50},
	ArchetypeElite:   {Name: "ELITE", HP: 80, ATK: 18, DEF: 10, SPD: 14, MaxSP: 4, SP: 4, XP: 75},
}

// Archetype returns the stat block for id. Out-of-range ids fall back to
// the scout so a corrupt encounter table can never index past the array.
func Archetype(id ArchetypeID) ArchetypeDef {
	if id < 0 || id >= ArchetypeCount {
		return archetypes[ArchetypeScout]
	}
	return archetypes[id]
}

// ZoneCount is the number of playable zones.
const ZoneCount = 3

// ScaleBattleHP applies the per-zone difficulty curve to an opponent's HP:
// +25% in zone 1, +50% in zone 2.
func ScaleBattleHP(hp, zone int) int {
	switch zone {
	case 1:
		return hp + hp>>2
	case 2:
		return hp + hp>>1
	}
	return hp
}

// ScaleBattleATK applies the same per-zone curve to ATK.
func ScaleBattleATK(atk, zone int) int {
	return ScaleBattleHP(atk, zone)
}

// ScaleBattleXP raises the XP award for later zones: +50% in zone 1,
// +75% in zone 2.
func ScaleBattleXP(xp, zone int) int {
	switch zone {
	case 1:
		return xp + xp>>1
	case 2:
		return xp + xp>>1 + xp>>2
	}
	return xp
}
