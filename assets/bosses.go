package assets

// BossID identifies a zone boss.
type BossID int

const (
	BossCommander BossID = iota
	BossCruiser
	BossFlagship
	BossCount
)

// BossDef is a boss battle stat block. Score is the base victory bonus
// before phase multipliers; Drop is the guaranteed victory drop.
type BossDef struct {
	Name  string
	HP    int
	ATK   int
	DEF   int
	SPD   int
	MaxSP int
	SP    int
	XP    int
	Drop  ItemID
}

var bosses = [BossCount]BossDef{
	BossCommander: {Name: "COMMANDER", HP: 120, ATK: 18, DEF: 10, SPD: 8, MaxSP: 3, SP: 3, XP: 100, Drop: ItemHPPotionL},
	BossCruiser:   {Name: "CRUISER", HP: 200, ATK: 22, DEF: 18, SPD: 6, MaxSP: 4, SP: 4, XP: 200, Drop: ItemSPCharge},
	BossFlagship:  {Name: "FLAGSHIP", HP: 350, ATK: 30, DEF: 22, SPD: 12, MaxSP: 6, SP: 6, XP: 400, Drop: ItemFullRestore},
}

// bossScores is the score bonus for defeating each boss.
var bossScores = [BossCount]int{2000, 5000, 10000}

// Boss returns the stat block for id, clamping out-of-range ids to the
// first boss.
func Boss(id BossID) BossDef {
	if id < 0 || id >= BossCount {
		return bosses[BossCommander]
	}
	return bosses[id]
}

// BossScore returns the victory score bonus for id.
func BossScore(id BossID) int {
	if id < 0 || id >= BossCount {
		return bossScores[0]
	}
	return bossScores[id]
}
