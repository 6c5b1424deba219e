// Package battle implements the turn-based battle engine: a tick-driven
// state machine stepped once per frame, covering regular encounters and
// boss fights. All randomness derives from the tick counter passed into
// Step, so a battle is a pure function of its inputs.
package battle

import (
	"fmt"

	"vexdrift/assets"
	"vexdrift/internal/item"
	"vexdrift/internal/rpg"
)

// State is the battle state machine phase.
type State int

const (
	StateNone State = iota
	StateInit
	StatePlayerTurn
	StateItemSelect
	StatePlayerAct
	StateEnemyTurn
	StateEnemyAct
	StateResolve
	StateVictory
	StateDefeat
	StateLevelUp
	StateExit
)

// Command is a player battle menu selection.
type Command int

const (
	CmdNone Command = iota
	CmdAttack
	CmdSpecial
	CmdDefend
	CmdItem
	CmdFlee
)

// Outcome is the terminal result of a battle.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// Phase timer lengths in ticks.
const (
	timerInit    = 60
	timerAct     = 15
	timerResolve = 30
	timerBanner  = 90
)

// logLines is the rolling message log depth shown by the battle view.
const logLines = 6

// Combatant is one side of a battle.
type Combatant struct {
	Name      string
	HP, MaxHP int
	ATK, DEF  int
	SPD       int
	SP, MaxSP int
	Defending bool
}

// VictoryReport summarizes the spoils of a won battle for the banner.
type VictoryReport struct {
	XP          int
	Credits     int
	Score       int
	Levels      int
	Drop        assets.ItemID
	DropLost    bool // drop converted to credits (inventory full)
	TurnBonus   bool
	CatchUp     bool
	StreakBonus int // extra XP folded in for the active win streak
}

// Context is one running battle. Construct with New or NewBoss, feed
// player input with Queue/SelectItem, and call Step once per tick until
// State reaches StateExit.
type Context struct {
	State State
	Timer int
	Turn  int
	Zone  int

	Player    Combatant
	Enemy     Combatant
	Archetype assets.ArchetypeID
	Boss      *BossState

	// PlayerFirst is decided once at battle start by comparing speed;
	// ties favor the player.
	PlayerFirst bool

	Outcome Outcome
	Report  *VictoryReport
	Log     []string

	stats *rpg.Stats
	inv   *item.Inventory
	drops *item.DropRoller

	pending Command

	atkBoost     int
	defBoost     int
	attackStreak int
	fleeAttempts int
	poisonTurns  int
	enemyEnraged bool
	defendCarry  bool
	openingMove  bool // a faster enemy's unanswered first action
}

// New starts a regular encounter against the given archetype, scaled for
// the zone.
func New(stats *rpg.Stats, inv *item.Inventory, drops *item.DropRoller, archetype assets.ArchetypeID, zone int) *Context {
	def := assets.Archetype(archetype)
	c := &Context{
		State:     StateInit,
		Timer:     timerInit,
		Turn:      1,
		Zone:      zone,
		Archetype: archetype,
		stats:     stats,
		inv:       inv,
		drops:     drops,
	}
	c.Player = playerCombatant(stats)
	hp := assets.ScaleBattleHP(def.HP, zone)
	c.Enemy = Combatant{
		Name:  def.Name,
		HP:    hp,
		MaxHP: hp,
		ATK:   assets.ScaleBattleATK(def.ATK, zone),
		DEF:   def.DEF,
		SPD:   def.SPD,
		SP:    def.SP,
		MaxSP: def.MaxSP,
	}
	if stats.AssistActive() {
		// Two straight defeats soften the opposition a little.
		c.Enemy.ATK -= c.Enemy.ATK >> 3
	}
	c.PlayerFirst = c.Player.SPD >= c.Enemy.SPD
	stats.ResetSPRegen()
	c.logf("%s APPROACHES", def.Name)
	return c
}

// NewBoss starts a boss battle. Bosses use their own stat block, phase
// machine, and action tables; zone scaling does not apply.
func NewBoss(stats *rpg.Stats, inv *item.Inventory, drops *item.DropRoller, id assets.BossID, zone int) *Context {
	def := assets.Boss(id)
	c := &Context{
		State: StateInit,
		Timer: timerInit,
		Turn:  1,
		Zone:  zone,
		Boss:  newBossState(id),
		stats: stats,
		inv:   inv,
		drops: drops,
	}
	c.Player = playerCombatant(stats)
	c.Enemy = Combatant{
		Name:  def.Name,
		HP:    def.HP,
		MaxHP: def.HP,
		ATK:   def.ATK,
		DEF:   def.DEF,
		SPD:   def.SPD,
		SP:    def.SP,
		MaxSP: def.MaxSP,
	}
	if stats.AssistActive() {
		c.Enemy.ATK -= c.Enemy.ATK >> 3
		c.Boss.baseATK = c.Enemy.ATK // the ATK ramp rebuilds from this base
	}
	c.PlayerFirst = c.Player.SPD >= c.Enemy.SPD
	stats.ResetSPRegen()
	c.logf("%s APPROACHES", def.Name)
	return c
}

func playerCombatant(s *rpg.Stats) Combatant {
	return Combatant{
		Name:  "PLAYER",
		HP:    s.HP,
		MaxHP: s.MaxHP,
		ATK:   s.ATK,
		DEF:   s.DEF,
		SPD:   s.SPD,
		SP:    s.SP,
		MaxSP: s.MaxSP,
	}
}

// Done reports whether the battle has reached its terminal state.
func (c *Context) Done() bool { return c.State == StateExit }

// AwaitingInput reports whether Step is blocked on a player decision.
func (c *Context) AwaitingInput() bool {
	return c.State == StatePlayerTurn || c.State == StateItemSelect
}

// Queue records the player's command for this turn. Ignored outside the
// player input phase.
func (c *Context) Queue(cmd Command) {
	if c.State == StatePlayerTurn {
		c.pending = cmd
	}
}

// SelectItem consumes the chosen inventory item and spends the turn.
// Ignored outside item selection.
func (c *Context) SelectItem(id assets.ItemID) {
	if c.State != StateItemSelect {
		return
	}
	if !c.inv.Remove(id, 1) {
		return
	}
	c.useItem(id)
	c.attackStreak = 0
	c.State = StatePlayerAct
	c.Timer = timerAct
}

// CancelItem returns from item selection to the command menu without
// spending the turn.
func (c *Context) CancelItem() {
	if c.State == StateItemSelect {
		c.State = StatePlayerTurn
	}
}

// Step advances the battle by one tick. The tick counter seeds every
// random roll made during this step.
func (c *Context) Step(tick uint32) {
	switch c.State {
	case StateInit:
		if c.countdown() {
			if c.PlayerFirst {
				c.startPlayerTurn()
			} else {
				// A faster enemy opens with an unanswered action.
				c.openingMove = true
				c.State = StateEnemyTurn
			}
		}

	case StatePlayerTurn:
		if c.pending == CmdNone {
			return
		}
		cmd := c.pending
		c.pending = CmdNone
		c.playerAction(cmd, tick)

	case StateItemSelect:
		// Waiting on SelectItem or CancelItem.

	case StatePlayerAct:
		if !c.countdown() {
			return
		}
		if c.Enemy.HP <= 0 {
			c.beginVictory(tick)
			return
		}
		c.State = StateEnemyTurn

	case StateEnemyTurn:
		if c.Boss != nil {
			c.bossTurn(tick)
		} else {
			c.enemyTurn(tick)
		}
		c.State = StateEnemyAct
		c.Timer = timerAct

	case StateEnemyAct:
		if !c.countdown() {
			return
		}
		if c.Player.HP <= 0 {
			c.beginDefeat()
			return
		}
		if c.Enemy.HP <= 0 {
			// Defend counters can finish a fight on the enemy's turn.
			c.beginVictory(tick)
			return
		}
		c.State = StateResolve
		c.Timer = timerResolve

	case StateResolve:
		if !c.countdown() {
			return
		}
		if c.openingMove {
			c.openingMove = false // the opening action is not a round
		} else {
			c.Turn++
		}
		c.startPlayerTurn()

	case StateVictory:
		if !c.countdown() {
			return
		}
		if c.Report != nil && c.Report.Levels > 0 {
			c.State = StateLevelUp
			c.Timer = timerBanner
			c.logf("LEVEL UP! LV %d", c.stats.Level)
			return
		}
		c.State = StateExit

	case StateDefeat, StateLevelUp:
		if c.countdown() {
			c.State = StateExit
		}

	case StateExit, StateNone:
	}
}

// countdown ticks the phase timer and reports expiry.
func (c *Context) countdown() bool {
	c.Timer--
	return c.Timer <= 0
}

func (c *Context) startPlayerTurn() {
	c.State = StatePlayerTurn
	c.pending = CmdNone

	// Defend expires at the start of the round unless both sides spent
	// the previous round defending.
	if c.defendCarry {
		c.defendCarry = false
	} else {
		c.Player.Defending = false
	}

	if c.poisonTurns > 0 {
		c.poisonTurns--
		c.Player.HP -= 3
		if c.Player.HP < 1 {
			c.Player.HP = 1
		}
		c.logf("POISON! -3 HP")
	}
}

// beginVictory runs the full victory accounting and starts the banner.
func (c *Context) beginVictory(tick uint32) {
	rep := &VictoryReport{}

	var xp int
	if c.Boss != nil {
		xp = assets.Boss(c.Boss.ID).XP
	} else {
		xp = assets.ScaleBattleXP(assets.Archetype(c.Archetype).XP, c.Zone)
	}

	// Quick battles pay better.
	switch {
	case c.Turn <= 3:
		xp <<= 1
		rep.TurnBonus = true
	case c.Turn == 4:
		xp += xp>>1 + xp>>2
		rep.TurnBonus = true
	case c.Turn == 5:
		xp += xp >> 1
		rep.TurnBonus = true
	}

	if c.stats.CatchUpActive(c.Zone) {
		xp += xp >> 1
		rep.CatchUp = true
	}

	if c.Boss != nil {
		// XP already granted at phase transitions comes off the top.
		switch c.Boss.XPAwarded {
		case 2:
			xp >>= 1
		case 1:
			xp -= xp >> 2
		}
		c.stats.AddScore(assets.BossScore(c.Boss.ID))
	}

	// Sync the battle pools back into persistent stats, with a small
	// post-battle recovery.
	c.stats.HP = c.Player.HP + c.stats.MaxHP>>4
	if c.stats.HP > c.stats.MaxHP {
		c.stats.HP = c.stats.MaxHP
	}
	c.stats.SP = c.Player.SP
	c.stats.Kills++
	if c.stats.WinStreak < 5 {
		c.stats.WinStreak++
	}
	rep.StreakBonus = (xp >> 3) * c.stats.WinStreak
	xp += rep.StreakBonus

	c.stats.AddCredits(xp)
	c.stats.AddScore(xp * 3)

	// Loot: bosses always drop; regular enemies roll the table.
	var drop assets.ItemID
	if c.Boss != nil {
		drop = assets.Boss(c.Boss.ID).Drop
	} else {
		drop = c.drops.Roll(tick, c.Archetype)
	}
	if drop != assets.ItemNone {
		if c.inv.Add(drop, 1) == item.AddConverted {
			c.stats.AddCredits(item.OverflowCredits)
			rep.DropLost = true
		}
		c.logf("GOT %s", assets.ItemName(drop))
	}
	rep.Drop = drop

	rep.XP = xp
	rep.Credits = xp
	rep.Score = xp * 3
	rep.Levels = c.stats.AddXP(xp)
	c.Report = rep

	c.Outcome = OutcomeVictory
	c.State = StateVictory
	c.Timer = timerBanner
	c.logf("VICTORY! +%d XP", xp)
}

func (c *Context) beginDefeat() {
	c.stats.HP = c.Player.HP
	c.stats.SP = c.Player.SP
	c.stats.WinStreak = 0
	c.stats.ApplyDefeatPenalty(c.Zone)
	c.Outcome = OutcomeDefeat
	c.State = StateDefeat
	c.Timer = timerBanner
	c.logf("DEFEATED...")
}

func (c *Context) flee() {
	// Fleeing keeps whatever HP and SP the fight cost.
	c.stats.HP = c.Player.HP
	c.stats.SP = c.Player.SP
	c.Outcome = OutcomeFled
	c.State = StateExit
	c.logf("ESCAPED!")
}

func (c *Context) logf(format string, args ...any) {
	c.Log = append(c.Log, fmt.Sprintf(format, args...))
	if len(c.Log) > logLines {
		c.Log = c.Log[len(c.Log)-logLines:]
	}
}
