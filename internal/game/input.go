package game

import (
	"github.com/gdamore/tcell/v2"

	"vexdrift/internal/battle"
)

// Action is a player-requested control, decoded from a key event.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionConfirm
	ActionCancel
	ActionSave
	ActionLoad
	ActionQuit

	ActionAttack
	ActionSpecial
	ActionDefend
	ActionItem
	ActionFlee
	ActionSlot1 // ActionSlot1..Slot1+7 select inventory slots
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyF5:
		return ActionSave
	case tcell.KeyF9:
		return ActionLoad
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'h':
		return ActionLeft
	case 'l':
		return ActionRight
	case 'k':
		return ActionUp
	case 'j':
		return ActionDown
	case ' ':
		return ActionFire
	case 'q', 'Q':
		return ActionQuit
	case 'a', 'A':
		return ActionAttack
	case 's', 'S':
		return ActionSpecial
	case 'd', 'D':
		return ActionDefend
	case 'i', 'I':
		return ActionItem
	case 'f', 'F':
		return ActionFlee
	case '1', '2', '3', '4', '5', '6', '7', '8':
		return ActionSlot1 + Action(ev.Rune()-'1')
	}
	return ActionNone
}

// battleCommand converts a battle-phase action into an engine command.
func battleCommand(a Action) battle.Command {
	switch a {
	case ActionAttack:
		return battle.CmdAttack
	case ActionSpecial:
		return battle.CmdSpecial
	case ActionDefend:
		return battle.CmdDefend
	case ActionItem:
		return battle.CmdItem
	case ActionFlee:
		return battle.CmdFlee
	}
	return battle.CmdNone
}
