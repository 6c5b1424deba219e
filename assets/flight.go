package assets

// Flight-mode enemy definitions. Velocities elsewhere are 8.8 fixed point;
// these tables are plain integers interpreted by internal/flight.

// PatternID selects a flight movement pattern.
type PatternID int

const (
	PatternLinear PatternID = iota
	PatternSine
	PatternHover
	PatternChase
	PatternSwoop
)

// FlightTypeID identifies a flight-mode enemy type.
type FlightTypeID int

const (
	FlightScout FlightTypeID = iota
	FlightDrone
	FlightHeavy
	FlightHunter
	FlightTypeCount
)

// FlightDef describes one flight enemy type. FireRate is the cooldown in
// ticks between volleys; Shots is the volley size.
type FlightDef struct {
	HP       int
	Shots    int
	FireRate int
	Pattern  PatternID
	Score    int
	XP       int
}

var flightTypes = [FlightTypeCount]FlightDef{
	FlightScout:  {HP: 10, Shots: 2, FireRate: 90, Pattern: PatternLinear, Score: 100, XP: 10},
	FlightDrone:  {HP: 20, Shots: 1, FireRate: 60, Pattern: PatternSine, Score: 200, XP: 15},
	FlightHeavy:  {HP: 40, Shots: 1, FireRate: 45, Pattern: PatternHover, Score: 350, XP: 20},
	FlightHunter: {HP: 30, Shots: 2, FireRate: 50, Pattern: PatternChase, Score: 500, XP: 20},
}

// FlightType returns the definition for id, clamping invalid ids to the
// scout.
func FlightType(id FlightTypeID) FlightDef {
	if id < 0 || id >= FlightTypeCount {
		return flightTypes[FlightScout]
	}
	return flightTypes[id]
}

// ScaleFlightHP applies the per-zone flight HP curve: +50% in zone 1,
// +100% in zone 2.
func ScaleFlightHP(hp, zone int) int {
	switch zone {
	case 1:
		return hp + hp>>1
	case 2:
		return hp << 1
	}
	return hp
}

// BattleArchetypeFor maps a flight enemy type to the battle archetype the
// player fights when a collision triggers an encounter.
func BattleArchetypeFor(id FlightTypeID) ArchetypeID {
	switch id {
	case FlightDrone:
		return ArchetypeFighter
	case FlightHeavy:
		return ArchetypeHeavy
	case FlightHunter:
		return ArchetypeElite
	default:
		return ArchetypeScout
	}
}
