package battle

import (
	"testing"

	"vexdrift/assets"
	"vexdrift/internal/item"
	"vexdrift/internal/rpg"
)

func newTestBossBattle(id assets.BossID) (*Context, *rpg.Stats) {
	stats := rpg.New()
	inv := item.New()
	var drops item.DropRoller
	c := NewBoss(stats, inv, &drops, id, 0)
	return c, stats
}

func TestBossPhaseThresholds(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander) // 120 max HP
	if c.Boss.Phase != PhaseNormal {
		t.Fatalf("fresh boss phase = %d, want normal", c.Boss.Phase)
	}

	c.hitEnemy(60) // exactly half
	c.updateBossPhase()
	if c.Boss.Phase != PhaseEnraged {
		t.Errorf("phase at 60/120 = %d, want enraged", c.Boss.Phase)
	}

	c.Player.Defending = false
	c.hitEnemy(30) // exactly a quarter
	c.updateBossPhase()
	if c.Boss.Phase != PhaseDesperate {
		t.Errorf("phase at 30/120 = %d, want desperate", c.Boss.Phase)
	}
}

func TestBossPhaseWaitsForBossTurn(t *testing.T) {
	c, stats := newTestBossBattle(assets.BossCommander)
	c.hitEnemy(60)
	if c.Boss.Phase != PhaseNormal {
		t.Errorf("phase moved to %d on the player's hit, want normal until the boss acts", c.Boss.Phase)
	}
	if c.Boss.XPAwarded != 0 || stats.XP != 0 {
		t.Errorf("xpAwarded/xp = %d/%d before the boss acts, want 0/0", c.Boss.XPAwarded, stats.XP)
	}
}

func TestBossKillingBlowSkipsPhaseReactions(t *testing.T) {
	c, stats := newTestBossBattle(assets.BossCommander)
	c.Player.ATK = 1000 // one swing crosses every threshold

	runUntilDone(t, c, CmdAttack, 5000)
	if c.Outcome != OutcomeVictory {
		t.Fatalf("outcome = %d, want victory", c.Outcome)
	}
	if c.Boss.Phase != PhaseNormal {
		t.Errorf("phase = %d after a killing blow, want normal", c.Boss.Phase)
	}
	if c.Boss.XPAwarded != 0 {
		t.Errorf("xpAwarded = %d, want 0 (no transitions fired)", c.Boss.XPAwarded)
	}
	if c.Player.HP != c.Player.MaxHP {
		t.Errorf("hp = %d, want untouched %d (no revenge strike)", c.Player.HP, c.Player.MaxHP)
	}
	// 100 boss XP doubled for the fast win, plus the streak bonus 200>>3.
	if stats.XP != 225 {
		t.Errorf("xp = %d, want 225", stats.XP)
	}
}

func TestBossPhaseMonotonic(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.hitEnemy(95) // 25/120: desperate
	c.updateBossPhase()
	if c.Boss.Phase != PhaseDesperate {
		t.Fatalf("phase = %d, want desperate", c.Boss.Phase)
	}

	// A repair can push HP back over both thresholds; the phase must
	// never move backwards.
	c.Enemy.HP = c.Enemy.MaxHP
	c.updateBossPhase()
	if c.Boss.Phase != PhaseDesperate {
		t.Errorf("phase regressed to %d after healing", c.Boss.Phase)
	}
}

func TestBossPhaseXPPreGrants(t *testing.T) {
	c, stats := newTestBossBattle(assets.BossCommander) // 100 XP boss
	c.hitEnemy(60)
	c.updateBossPhase()
	if c.Boss.XPAwarded != 1 {
		t.Fatalf("xpAwarded = %d, want 1 after enrage", c.Boss.XPAwarded)
	}
	if stats.XP != 25 {
		t.Errorf("xp = %d, want 25 (a quarter of 100)", stats.XP)
	}

	c.Player.Defending = false
	c.hitEnemy(30)
	c.updateBossPhase()
	if c.Boss.XPAwarded != 2 {
		t.Fatalf("xpAwarded = %d, want 2 after desperate", c.Boss.XPAwarded)
	}
	if stats.XP != 50 {
		t.Errorf("xp = %d, want 50 after both pre-grants", stats.XP)
	}
}

func TestBossSkippingStraightToDesperateGrantsBoth(t *testing.T) {
	c, stats := newTestBossBattle(assets.BossCommander)
	c.hitEnemy(110) // one hit past both thresholds
	c.updateBossPhase()
	if c.Boss.Phase != PhaseDesperate {
		t.Fatalf("phase = %d, want desperate", c.Boss.Phase)
	}
	if c.Boss.XPAwarded != 2 || stats.XP != 50 {
		t.Errorf("xpAwarded/xp = %d/%d, want 2/50", c.Boss.XPAwarded, stats.XP)
	}
}

func TestDesperateRevengeNeverLethal(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.hitEnemy(60) // enraged (grants a shield)
	c.updateBossPhase()
	c.Player.Defending = false
	c.Player.HP = 10
	c.hitEnemy(31) // 29/120: desperate, revenge 15 vs 10 HP
	c.updateBossPhase()
	if c.Player.HP != 1 {
		t.Errorf("hp = %d, want revenge floor of 1", c.Player.HP)
	}
	if !c.Player.Defending {
		t.Error("desperate transition did not grant the shield")
	}
}

func TestDesperateRevengeHalvedByGuard(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.hitEnemy(60)
	c.updateBossPhase()
	c.Player.Defending = true
	c.Player.HP = 50
	c.hitEnemy(31)
	c.updateBossPhase()
	if c.Player.HP != 43 {
		t.Errorf("hp = %d, want 43 (15>>1 = 7 through a guard)", c.Player.HP)
	}
}

func TestChargingBossAlwaysReleasesHeavy(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCruiser)
	c.Boss.Charging = true
	c.Boss.ChargeBonus = 22
	for tick := uint32(0); tick < 16; tick++ {
		if got := c.chooseBossAction(tick); got != BossHeavy {
			t.Fatalf("tick %d: charging boss chose %d, want BossHeavy", tick, got)
		}
	}
}

func TestBossChargeHeavyCombo(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.Boss.Charging = true
	base := damage(c.Enemy.ATK, c.playerDEF(), false, 4)
	c.Boss.ChargeBonus = 9
	before := c.Player.HP

	c.Turn = 1 // avoid the 4th-turn ATK ramp
	c.bossTurn(4)
	want := base<<1 + 9
	if got := before - c.Player.HP; got != want {
		t.Errorf("released heavy dealt %d, want %d", got, want)
	}
	if c.Boss.Charging || c.Boss.ChargeBonus != 0 {
		t.Error("charge state not cleared after release")
	}
}

func TestBossRepairCooldown(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.Boss.Phase = PhaseEnraged
	c.Turn = 1

	// tick 9 rolls (9*7+1*13)&0xF = 12: the repair slot. A fresh boss
	// starts with the repair on cooldown.
	if got := c.chooseBossAction(9); got != BossAttack {
		t.Fatalf("action = %d, want BossAttack while repair cools down", got)
	}
	c.Boss.healCD = 3
	if got := c.chooseBossAction(9); got != BossRepair {
		t.Errorf("action = %d, want BossRepair with cooldown ready", got)
	}
}

func TestBossRepairAmountAndCooldownReset(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander) // 120 max HP
	c.Boss.Phase = PhaseEnraged
	c.Enemy.HP = 60
	c.Turn = 1
	c.Enemy.SP = 0    // close the special slots so tick 9 stays on repair
	c.Boss.healCD = 3 // cooldown ready

	c.bossTurn(9)
	// 120>>3 + 120>>4 = 15 + 7 = 22.
	if c.Enemy.HP != 82 {
		t.Errorf("hp = %d, want 82 after repair", c.Enemy.HP)
	}
	if c.Boss.healCD != 0 {
		t.Errorf("healCD = %d, want 0 after repairing", c.Boss.healCD)
	}
}

func TestBossPlainAttackDoesNotCrit(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.Turn = 1
	before := c.Player.HP

	// tick 256 rolls (256*7+13)&0xF = 13, the plain-attack fallback, and
	// a 0 on the crit check that any speed would pass if bosses rolled
	// one. Plain commander damage is 324/24 = 13.
	c.bossTurn(256)
	if got := before - c.Player.HP; got != 13 {
		t.Errorf("boss attack dealt %d, want plain 13", got)
	}
}

func TestBossMultiSpendsSPAndHitsTwicePlus(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	c.Boss.Phase = PhaseDesperate
	c.Turn = 1
	c.Player.HP = 500
	c.Player.MaxHP = 500
	spBefore := c.Enemy.SP

	// tick 6 rolls (6*7+13)&0xF = 7: the desperate multi slot; even
	// tick parity means two hits.
	base := damage(c.Enemy.ATK, c.playerDEF(), false, 6)
	per := (base * 3) >> 2
	before := c.Player.HP
	c.bossTurn(6)
	if got := before - c.Player.HP; got != 2*per {
		t.Errorf("barrage dealt %d, want %d", got, 2*per)
	}
	if c.Enemy.SP != spBefore-1 {
		t.Errorf("sp = %d, want %d", c.Enemy.SP, spBefore-1)
	}
}

func TestBossATKRampCaps(t *testing.T) {
	c, _ := newTestBossBattle(assets.BossCommander)
	base := c.Enemy.ATK
	c.Player.HP = 1 << 20 // survive everything
	c.Player.MaxHP = 1 << 20
	for turn := 1; turn <= 100; turn++ {
		c.Turn = turn
		c.bossTurn(uint32(turn))
	}
	if c.Enemy.ATK > base+bossATKCap {
		t.Errorf("atk = %d, want cap %d", c.Enemy.ATK, base+bossATKCap)
	}
	if c.Enemy.ATK != base+bossATKCap {
		t.Errorf("atk = %d, want fully ramped %d after 100 turns", c.Enemy.ATK, base+bossATKCap)
	}
}

func TestBossBattleTerminates(t *testing.T) {
	for id := assets.BossCommander; id < assets.BossCount; id++ {
		stats := rpg.New()
		stats.AddXP(2000) // a capped player, as a real boss attempt would be
		inv := item.New()
		var drops item.DropRoller
		c := NewBoss(stats, inv, &drops, id, int(id))
		runUntilDone(t, c, CmdAttack, 200000)
		if c.Outcome != OutcomeVictory && c.Outcome != OutcomeDefeat {
			t.Errorf("boss %d: outcome = %d", id, c.Outcome)
		}
	}
}

func TestBossVictoryScoreAndDrop(t *testing.T) {
	stats := rpg.New()
	inv := item.New()
	var drops item.DropRoller
	c := NewBoss(stats, inv, &drops, assets.BossCommander, 0)
	c.Player.ATK = 1000
	c.Player.HP = 5000
	c.Player.MaxHP = 5000
	runUntilDone(t, c, CmdAttack, 5000)

	if c.Outcome != OutcomeVictory {
		t.Fatalf("outcome = %d, want victory", c.Outcome)
	}
	if stats.Score < assets.BossScore(assets.BossCommander) {
		t.Errorf("score = %d, want at least the boss bonus %d", stats.Score, assets.BossScore(assets.BossCommander))
	}
	if inv.Count(assets.Boss(assets.BossCommander).Drop) == 0 {
		t.Error("guaranteed boss drop missing from inventory")
	}
}
