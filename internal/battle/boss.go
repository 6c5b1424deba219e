package battle

import "vexdrift/assets"

// BossPhase orders the boss escalation ladder. Transitions are strictly
// one-way: a repaired boss never calms back down.
type BossPhase int

const (
	PhaseNormal BossPhase = iota
	PhaseEnraged
	PhaseDesperate
)

// BossAction is one entry of the boss action tables.
type BossAction int

const (
	BossAttack BossAction = iota
	BossSpecial
	BossHeavy
	BossDefend
	BossMulti
	BossDrain
	BossCharge
	BossRepair
)

// bossATKCap limits the slow attack ramp to base+20.
const bossATKCap = 20

// desperateRevenge is the fixed hit dealt when the boss drops into its
// final phase.
const desperateRevenge = 15

// BossState is the boss-specific battle state attached to a Context.
type BossState struct {
	ID    assets.BossID
	Phase BossPhase

	baseATK     int
	atkRamp     int
	ChargeBonus int
	Charging    bool
	healCD      int // turns since last repair
	XPAwarded   int // phase XP pre-grants applied (0..2)
}

func newBossState(id assets.BossID) *BossState {
	return &BossState{ID: id, baseATK: assets.Boss(id).ATK}
}

// updateBossPhase re-derives the phase from enemy HP quarters and applies
// the one-shot transition effects. It runs at the start of the boss's own
// turn, so a killing blow never triggers a transition. Phase can only
// move forward.
func (c *Context) updateBossPhase() {
	b := c.Boss
	quarter := c.Enemy.MaxHP >> 2

	next := PhaseNormal
	switch {
	case c.Enemy.HP <= quarter:
		next = PhaseDesperate
	case c.Enemy.HP <= quarter<<1:
		next = PhaseEnraged
	}
	if next <= b.Phase {
		return
	}

	// Crossing two thresholds in one hit fires both transitions.
	if b.Phase == PhaseNormal && next >= PhaseEnraged {
		b.Phase = PhaseEnraged
		c.grantPhaseXP(1)
		c.Player.Defending = true // brace-for-impact shield
		c.logf("%s ENRAGED!", c.Enemy.Name)
	}
	if b.Phase == PhaseEnraged && next == PhaseDesperate {
		b.Phase = PhaseDesperate
		c.grantPhaseXP(2)

		// Revenge strike, halved through a guard, never lethal. The
		// guard check uses the posture from before this transition's
		// own shield lands.
		hit := desperateRevenge
		if c.Player.Defending {
			hit >>= 1
		}
		c.Player.Defending = true
		c.Player.HP -= hit
		if c.Player.HP < 1 {
			c.Player.HP = 1
		}
		c.logf("%s DESPERATE! REVENGE %d", c.Enemy.Name, hit)
	}
}

// grantPhaseXP pays out a quarter of the boss XP at a phase transition;
// the victory accounting later deducts what was already granted.
func (c *Context) grantPhaseXP(stage int) {
	b := c.Boss
	if b.XPAwarded >= stage {
		return
	}
	b.XPAwarded = stage
	c.stats.AddXP(assets.Boss(b.ID).XP >> 2)
}

// chooseBossAction picks from the phase's weighted table using a roll in
// [0,15]. A charging boss always releases the stored heavy strike.
func (c *Context) chooseBossAction(tick uint32) BossAction {
	b := c.Boss
	if b.Charging {
		return BossHeavy
	}
	r := int((tick*7 + uint32(c.Turn)*13) & 0xF)
	hasSP := c.Enemy.SP > 0

	switch b.Phase {
	case PhaseEnraged:
		switch {
		case r < 4:
			return BossAttack
		case r < 7 && hasSP:
			return BossMulti
		case r < 10:
			return BossHeavy
		case r < 12 && hasSP:
			return BossSpecial
		case r < 14 && b.healCD >= 3:
			return BossRepair
		}
	case PhaseDesperate:
		switch {
		case r < 3 && hasSP:
			return BossDrain
		case r < 5:
			return BossCharge
		case r < 8 && hasSP:
			return BossMulti
		case r < 11:
			return BossHeavy
		case r < 13 && b.healCD >= 3:
			return BossRepair
		}
	default:
		switch {
		case r < 6:
			return BossAttack
		case r < 9 && hasSP:
			return BossSpecial
		case r < 11:
			return BossHeavy
		case r < 13:
			return BossDefend
		}
	}
	return BossAttack
}

// bossTurn chooses and resolves one boss action.
func (c *Context) bossTurn(tick uint32) {
	c.updateBossPhase()

	b := c.Boss
	c.Enemy.Defending = false
	b.healCD++

	// Slow pressure ramp: +2 ATK every 4th turn, capped.
	if c.Turn%4 == 0 && b.atkRamp < bossATKCap {
		b.atkRamp += 2
		c.Enemy.ATK = b.baseATK + b.atkRamp
	}

	base := damage(c.Enemy.ATK, c.playerDEF(), c.Player.Defending, tick)

	switch c.chooseBossAction(tick) {
	case BossHeavy:
		dmg := base<<1 + b.ChargeBonus
		b.ChargeBonus = 0
		b.Charging = false
		c.hitPlayer(dmg, tick)
		c.logf("%s HEAVY STRIKE! %d DMG", c.Enemy.Name, dmg)

	case BossMulti:
		c.Enemy.SP--
		hits := 2 + int(tick&1)
		per := (base * 3) >> 2
		if per < 1 {
			per = 1
		}
		for i := 0; i < hits && c.Player.HP > 0; i++ {
			c.hitPlayer(per, tick)
		}
		c.logf("%s BARRAGE! %dx%d DMG", c.Enemy.Name, hits, per)

	case BossDrain:
		c.Enemy.SP--
		c.hitPlayer(base, tick)
		heal := base >> 1
		if heal < 1 {
			heal = 1
		}
		c.Enemy.HP += heal
		if c.Enemy.HP > c.Enemy.MaxHP {
			c.Enemy.HP = c.Enemy.MaxHP
		}
		c.logf("%s DRAINS %d HP", c.Enemy.Name, heal)

	case BossCharge:
		b.ChargeBonus = base
		b.Charging = true
		c.logf("%s IS CHARGING UP...", c.Enemy.Name)

	case BossRepair:
		heal := c.Enemy.MaxHP>>3 + c.Enemy.MaxHP>>4
		if heal < 1 {
			heal = 1
		}
		c.Enemy.HP += heal
		if c.Enemy.HP > c.Enemy.MaxHP {
			c.Enemy.HP = c.Enemy.MaxHP
		}
		b.healCD = 0
		c.logf("%s REPAIRS %d HP", c.Enemy.Name, heal)

	case BossSpecial:
		c.Enemy.SP--
		dmg := base + base>>1
		c.hitPlayer(dmg, tick)
		c.logf("%s SPECIAL! %d DMG", c.Enemy.Name, dmg)

	case BossDefend:
		c.Enemy.Defending = true
		if c.Enemy.SP < c.Enemy.MaxSP {
			c.Enemy.SP++
		}
		c.logf("%s DEFENDS", c.Enemy.Name)

	default:
		// Critical hits are a player-only mechanic.
		c.hitPlayer(base, tick)
		c.logf("%s ATTACKS! %d DMG", c.Enemy.Name, base)
	}
}
