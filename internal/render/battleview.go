package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"vexdrift/assets"
	"vexdrift/internal/battle"
	"vexdrift/internal/item"
)

const barWidth = 20

var phaseNames = map[battle.BossPhase]string{
	battle.PhaseNormal:    "",
	battle.PhaseEnraged:   "ENRAGED",
	battle.PhaseDesperate: "DESPERATE",
}

// DrawBattle renders the turn-based battle screen.
func (r *Renderer) DrawBattle(b *battle.Context, inv *item.Inventory) {
	if b == nil {
		return
	}
	r.screen.Clear()

	// Enemy block on top, player block below, mirroring the field layout.
	r.drawCombatant(1, &b.Enemy, b)
	r.drawCombatant(6, &b.Player, nil)

	r.drawText(0, 10, fmt.Sprintf("TURN %d", b.Turn), styleDim)
	r.drawHLine(11, tcell.ColorGray)

	switch b.State {
	case battle.StatePlayerTurn:
		r.drawText(2, 12, "[A]ttack  [S]pecial  [D]efend  [I]tem  [F]lee", styleText)
	case battle.StateItemSelect:
		r.drawItemMenu(12, inv)
	case battle.StateVictory:
		r.drawVictoryBanner(12, b.Report)
	case battle.StateLevelUp:
		r.drawTextCentered(12, "LEVEL UP!", styleVictory)
	case battle.StateDefeat:
		r.drawTextCentered(12, "DEFEATED...", styleDanger)
	}

	logY := 14
	for i, line := range b.Log {
		r.drawText(2, logY+i, line, styleLog)
	}
	r.screen.Show()
}

// drawCombatant renders one side's name, bars, and status flags. b is
// non-nil only for the enemy side, to surface boss phase.
func (r *Renderer) drawCombatant(y int, c *battle.Combatant, b *battle.Context) {
	name := c.Name
	if b != nil && b.Boss != nil {
		if phase := phaseNames[b.Boss.Phase]; phase != "" {
			name += "  [" + phase + "]"
		}
		if b.Boss.Charging {
			name += "  (CHARGING)"
		}
	}
	if c.Defending {
		name += "  (GUARD)"
	}
	r.drawText(2, y, name, styleText)
	r.drawBar(2, y+1, c.HP, c.MaxHP, tcell.ColorLime)
	r.drawText(2+barWidth+2, y+1, fmt.Sprintf("HP %d/%d", c.HP, c.MaxHP), styleText)
	if c.MaxSP > 0 {
		r.drawBar(2, y+2, c.SP, c.MaxSP, tcell.ColorAqua)
		r.drawText(2+barWidth+2, y+2, fmt.Sprintf("SP %d/%d", c.SP, c.MaxSP), styleText)
	}
}

// drawBar renders a fixed-width gauge. The filled portion turns red
// below a quarter.
func (r *Renderer) drawBar(x, y, val, max int, color tcell.Color) {
	if max <= 0 {
		return
	}
	filled := val * barWidth / max
	if val > 0 && filled == 0 {
		filled = 1
	}
	if val*4 <= max {
		color = tcell.ColorRed
	}
	on := tcell.StyleDefault.Foreground(color)
	for i := 0; i < barWidth; i++ {
		ch := '░'
		style := styleDim
		if i < filled {
			ch, style = '█', on
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawItemMenu(y int, inv *item.Inventory) {
	r.drawText(2, y, "USE ITEM (ESC cancel)", styleText)
	shown := 0
	for i := 0; i < item.Slots; i++ {
		slot := inv.At(i)
		if slot.ID == assets.ItemNone {
			continue
		}
		line := fmt.Sprintf("[%d] %-10s x%d", i+1, assets.ItemName(slot.ID), slot.Qty)
		r.drawText(4, y+1+shown, line, styleText)
		shown++
	}
	if shown == 0 {
		r.drawText(4, y+1, "NO ITEMS", styleDim)
	}
}

func (r *Renderer) drawVictoryBanner(y int, rep *battle.VictoryReport) {
	if rep == nil {
		return
	}
	line := fmt.Sprintf("VICTORY!  +%d XP  +%d$", rep.XP, rep.Credits)
	if rep.TurnBonus {
		line += "  FAST!"
	}
	if rep.StreakBonus > 0 {
		line += fmt.Sprintf("  STREAK +%d", rep.StreakBonus)
	}
	r.drawTextCentered(y, line, styleVictory)
	if rep.Drop != assets.ItemNone {
		got := "GOT " + assets.ItemName(rep.Drop)
		if rep.DropLost {
			got = fmt.Sprintf("BAG FULL: %s -> %d$", assets.ItemName(rep.Drop), item.OverflowCredits)
		}
		r.drawTextCentered(y+1, got, styleText)
	}
}
