// Package rpg implements player progression: stats, XP and level growth,
// defeat penalties, and the slow SP regeneration that runs in flight mode.
package rpg

import "vexdrift/assets"

// statCap is the saturation ceiling for XP, credits, and score counters.
const statCap = 0xFFFF

// spRegenTicks is the flight-mode tick interval per regenerated SP point.
const spRegenTicks = 600

// Stats is the player's persistent progression state. It survives battles
// and zone transitions and is the payload of the save file.
type Stats struct {
	Level int
	XP    int

	MaxHP int
	HP    int
	ATK   int
	DEF   int
	SPD   int
	MaxSP int
	SP    int

	Credits int
	Kills   int
	Score   int

	WinStreak    int
	DefeatStreak int

	Zone         int
	ZonesCleared int
	StoryFlags   uint16
	PlaySeconds  int

	HighScore   int
	MaxCombo    int
	WeaponKills [3]int
	ZoneRanks   [assets.ZoneCount]int

	spRegen int
}

// New returns a fresh level-1 player.
func New() *Stats {
	b := assets.BasePlayer
	return &Stats{
		Level: 1,
		MaxHP: b.HP, HP: b.HP,
		ATK: b.ATK, DEF: b.DEF, SPD: b.SPD,
		MaxSP: b.SP, SP: b.SP,
	}
}

// satAdd adds b to a, saturating at the 16-bit counter ceiling.
func satAdd(a, b int) int {
	if a+b > statCap {
		return statCap
	}
	return a + b
}

// AddXP grants xp, applies any level-ups (multiple in one call if the
// grant crosses several thresholds), and returns the number of levels
// gained. Each level-up applies the growth row and fully restores HP and
// SP. Earning XP also ends a defeat streak.
func (s *Stats) AddXP(xp int) int {
	s.XP = satAdd(s.XP, xp)
	s.DefeatStreak = 0

	levels := 0
	for s.Level < assets.MaxLevel && s.XP >= assets.XPTable[s.Level] {
		s.Level++
		g := assets.Growth[s.Level-2]
		s.MaxHP += g.HP
		s.ATK += g.ATK
		s.DEF += g.DEF
		s.SPD += g.SPD
		s.MaxSP += g.SP
		s.HP = s.MaxHP
		s.SP = s.MaxSP
		levels++
	}
	return levels
}

// XPToNext returns the XP remaining until the next level, or 0 at the cap.
func (s *Stats) XPToNext() int {
	if s.Level >= assets.MaxLevel {
		return 0
	}
	return assets.XPTable[s.Level] - s.XP
}

// AddCredits grants credits, saturating.
func (s *Stats) AddCredits(n int) {
	s.Credits = satAdd(s.Credits, n)
}

// AddScore grants score, saturating, and tracks the high score.
func (s *Stats) AddScore(n int) {
	s.Score = satAdd(s.Score, n)
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// ApplyDefeatPenalty takes the post-defeat HP toll. The toll grows with
// zone depth: a quarter of current HP in zone 0, three eighths in zone
// 1, half in zone 2, always at least 1, with the result floored at 1 HP
// so a defeat is never outright fatal. The defeat streak advances,
// capped.
func (s *Stats) ApplyDefeatPenalty(zone int) int {
	var loss int
	switch zone {
	case 0:
		loss = s.HP >> 2
	case 1:
		loss = s.HP>>2 + s.HP>>3
	default:
		loss = s.HP >> 1
	}
	if loss < 1 {
		loss = 1
	}
	s.HP -= loss
	if s.HP < 1 {
		s.HP = 1
	}
	if s.DefeatStreak < 255 {
		s.DefeatStreak++
	}
	return loss
}

// TickSPRegen advances the flight-mode SP regeneration counter and
// reports whether a point was restored this tick.
func (s *Stats) TickSPRegen() bool {
	s.spRegen++
	if s.spRegen < spRegenTicks {
		return false
	}
	s.spRegen = 0
	if s.SP < s.MaxSP {
		s.SP++
		return true
	}
	return false
}

// ResetSPRegen clears the regeneration counter (battle entry, load).
func (s *Stats) ResetSPRegen() {
	s.spRegen = 0
}

// CatchUpActive reports whether the player is behind the expected level
// curve for zone and should receive bonus XP.
func (s *Stats) CatchUpActive(zone int) bool {
	return s.Level < zone*3+1
}

// AssistActive reports whether assist mode is on (two or more defeats in
// a row without earning XP).
func (s *Stats) AssistActive() bool {
	return s.DefeatStreak >= 2
}
