package battle

import "vexdrift/assets"

// damage is the core formula: atk^2/(atk+def) plus a small tick-derived
// variance, never below 1. Defending doubles effective DEF.
func damage(atk, def int, defending bool, tick uint32) int {
	if defending {
		def <<= 1
	}
	den := atk + def
	if den < 1 {
		den = 1
	}
	d := atk*atk/den + int((tick*7)&0x3)
	if d < 1 {
		d = 1
	}
	return d
}

// critical reports whether the tick rolls a critical hit for the given
// speed: chance scales as spd*4 out of 256.
func critical(tick uint32, spd int) bool {
	return int((tick*31)&0xFF) < spd<<2
}

// playerAction executes the chosen command and advances to PlayerAct (or
// handles flee/item flow).
func (c *Context) playerAction(cmd Command, tick uint32) {
	switch cmd {
	case CmdItem:
		if c.inv.Len() == 0 {
			c.logf("NO ITEMS")
			return
		}
		c.State = StateItemSelect
		return

	case CmdFlee:
		c.attackStreak = 0
		if c.Boss != nil {
			c.logf("CAN'T ESCAPE A BOSS")
		} else {
			threshold := 85 + 15*(c.Player.SPD-10) - 16*c.fleeAttempts
			if threshold < 10 {
				threshold = 10
			}
			if int((tick*31)&0xFF) < threshold {
				c.flee()
				return
			}
			c.fleeAttempts++
			c.logf("CAN'T ESCAPE!")
		}

	case CmdDefend:
		c.attackStreak = 0
		c.Player.Defending = true
		if c.Player.SP < c.Player.MaxSP {
			c.Player.SP++
		}
		c.logf("DEFENDING")

	case CmdSpecial:
		c.attackStreak = 0
		if c.Player.SP > 0 {
			c.Player.SP--
			dmg := damage(c.playerATK(), c.Enemy.DEF, c.Enemy.Defending, tick)
			if c.Player.HP < c.Player.MaxHP>>2 {
				dmg <<= 1 // desperation
				c.logf("DESPERATE STRIKE!")
			} else {
				dmg += dmg >> 1
			}
			if critical(tick, c.Player.SPD) {
				dmg += dmg >> 1
				c.logf("CRITICAL!")
			}
			c.hitEnemy(dmg)
			c.logf("SPECIAL! %d DMG", dmg)
			break
		}
		c.logf("NO SP!")
		fallthrough

	case CmdAttack:
		c.attackStreak++
		dmg := damage(c.playerATK(), c.Enemy.DEF, c.Enemy.Defending, tick)
		if c.attackStreak >= 3 {
			dmg += dmg >> 2 // sustained offensive
			c.attackStreak = 0
			c.logf("COMBO!")
		}
		if critical(tick, c.Player.SPD) {
			dmg += dmg >> 1
			c.logf("CRITICAL!")
		}
		c.hitEnemy(dmg)
		c.logf("ATTACK! %d DMG", dmg)

	default:
		return
	}

	c.State = StatePlayerAct
	c.Timer = timerAct
}

// playerATK is the player's attack including battle item buffs.
func (c *Context) playerATK() int {
	return c.Player.ATK + c.atkBoost
}

// playerDEF is the player's defense including battle item buffs.
func (c *Context) playerDEF() int {
	return c.Player.DEF + c.defBoost
}

// hitEnemy applies damage to the enemy and runs the one-time enrage for
// regular opponents below a quarter HP. Boss phase reactions happen at
// the start of the boss's own turn, never mid-hit.
func (c *Context) hitEnemy(dmg int) {
	c.Enemy.HP -= dmg
	if c.Enemy.HP < 0 {
		c.Enemy.HP = 0
	}
	if c.Boss != nil {
		return
	}
	if !c.enemyEnraged && c.Enemy.HP > 0 && c.Enemy.HP < c.Enemy.MaxHP>>2 {
		c.enemyEnraged = true
		c.Enemy.ATK += 4
		c.logf("%s ENRAGED!", c.Enemy.Name)
	}
}

// useItem applies a consumed item's effect.
func (c *Context) useItem(id assets.ItemID) {
	effect := assets.ItemEffect(id)
	switch id {
	case assets.ItemHPPotionS, assets.ItemHPPotionL:
		c.Player.HP += effect
		if c.Player.HP > c.Player.MaxHP {
			c.Player.HP = c.Player.MaxHP
		}
		c.logf("+%d HP", effect)
	case assets.ItemSPCharge:
		c.Player.SP += effect
		if c.Player.SP > c.Player.MaxSP {
			c.Player.SP = c.Player.MaxSP
		}
		c.logf("+%d SP", effect)
	case assets.ItemATKBoost:
		c.atkBoost += effect
		c.logf("ATK UP!")
	case assets.ItemDEFBoost:
		c.defBoost += effect
		c.logf("DEF UP!")
	case assets.ItemFullRestore:
		c.Player.HP = c.Player.MaxHP
		c.Player.SP = c.Player.MaxSP
		c.logf("FULLY RESTORED!")
	}
}

// enemyAction is a regular opponent's turn decision.
type enemyAction int

const (
	enemyAttack enemyAction = iota
	enemySpecial
	enemyDefend
	enemyPoison
)

// chooseEnemyAction picks from the archetype's weighted table using a
// tick/turn-derived roll in [0,15].
func (c *Context) chooseEnemyAction(tick uint32) enemyAction {
	r := int((tick + uint32(c.Turn)<<3) & 0xF)
	hasSP := c.Enemy.SP > 0

	switch c.Archetype {
	case assets.ArchetypeFighter:
		switch {
		case r < 8:
			return enemyAttack
		case r < 11 && hasSP:
			return enemySpecial
		case r < 14:
			return enemyDefend
		}
	case assets.ArchetypeHeavy:
		switch {
		case r < 6:
			return enemyAttack
		case r < 10 && hasSP:
			return enemySpecial
		case r < 13:
			return enemyDefend
		}
	case assets.ArchetypeElite:
		switch {
		case r < 6:
			return enemyAttack
		case r < 9 && hasSP:
			return enemySpecial
		case r < 11 && hasSP && c.poisonTurns == 0:
			return enemyPoison
		case r < 13:
			return enemyDefend
		}
	default: // scout: all offense, occasional defend
		if r >= 10 && r < 13 {
			return enemyDefend
		}
	}
	return enemyAttack
}

// enemyTurn chooses and resolves a regular enemy action.
func (c *Context) enemyTurn(tick uint32) {
	// A defend posture lasts until the enemy's next action.
	c.Enemy.Defending = false

	atk := c.Enemy.ATK
	if c.Turn > 8 {
		// Anti-stall pressure.
		extra := c.Turn - 8
		if extra > 5 {
			extra = 5
		}
		atk += extra
	}

	switch c.chooseEnemyAction(tick) {
	case enemyDefend:
		c.Enemy.Defending = true
		if c.Enemy.SP < c.Enemy.MaxSP {
			c.Enemy.SP++
		}
		if c.Player.Defending {
			c.defendCarry = true
		}
		c.logf("%s DEFENDS", c.Enemy.Name)

	case enemySpecial:
		c.Enemy.SP--
		dmg := damage(atk, c.playerDEF(), c.Player.Defending, tick)
		dmg += dmg >> 1
		c.hitPlayer(dmg, tick)
		c.logf("%s SPECIAL! %d DMG", c.Enemy.Name, dmg)

	case enemyPoison:
		c.Enemy.SP--
		c.poisonTurns = 3
		if c.Player.SP > 0 {
			c.Player.SP--
		}
		c.logf("%s POISONS YOU!", c.Enemy.Name)

	default:
		// Critical hits are a player-only mechanic.
		dmg := damage(atk, c.playerDEF(), c.Player.Defending, tick)
		c.hitPlayer(dmg, tick)
		c.logf("%s ATTACKS! %d DMG", c.Enemy.Name, dmg)
	}
}

// hitPlayer applies enemy damage to the player and runs the defend
// counter.
func (c *Context) hitPlayer(dmg int, tick uint32) {
	c.Player.HP -= dmg
	if c.Player.HP < 0 {
		c.Player.HP = 0
	}

	// Defending can answer with a counter-attack at reduced power.
	if c.Player.Defending && c.Player.HP > 0 && int((tick*13)&0xFF) < 96 {
		counter := damage(c.playerATK(), c.Enemy.DEF, c.Enemy.Defending, tick)
		counter -= counter >> 2
		if counter < 1 {
			counter = 1
		}
		c.hitEnemy(counter)
		c.logf("COUNTER! %d DMG", counter)
	}
}
