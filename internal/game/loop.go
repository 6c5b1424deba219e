package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"vexdrift/assets"
	"vexdrift/internal/battle"
	"vexdrift/internal/render"
	"vexdrift/internal/save"
)

// frameInterval targets the original 60 Hz simulation rate.
const frameInterval = time.Second / 60

// Run drives the session on the given screen until the player quits.
// The screen must already be initialized; Run finalizes it on return.
func (s *Session) Run(screen tcell.Screen) {
	defer screen.Fini()
	r := render.New(screen)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			select {
			case events <- ev:
			default: // drop when the sim is behind; input is re-pressed
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var in FlightInput
	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if !s.handleKey(keyToAction(key), &in) {
				return
			}
		case <-ticker.C:
			s.stepFrame(in)
			in = FlightInput{} // one frame of effect per key event
			s.draw(r)
		}
	}
}

// handleKey routes one action by mode. Returns false to quit.
func (s *Session) handleKey(a Action, in *FlightInput) bool {
	if a == ActionQuit {
		return false
	}

	switch s.Mode {
	case ModeTitle:
		switch a {
		case ActionConfirm:
			s.StartRun()
		case ActionLoad:
			if s.HasSave() {
				s.Load() //nolint:errcheck — surfaced via Messages
			}
		case ActionCancel:
			return false
		}

	case ModeFlight:
		switch a {
		case ActionLeft:
			in.Left = true
		case ActionRight:
			in.Right = true
		case ActionUp:
			in.Up = true
		case ActionDown:
			in.Down = true
		case ActionFire:
			in.Fire = true
		case ActionSave:
			if err := s.Save(); err != nil {
				s.message("SAVE FAILED")
			}
		case ActionLoad:
			if err := s.Load(); err != nil {
				s.message("LOAD FAILED")
			}
		case ActionCancel:
			s.Mode = ModeTitle
		}

	case ModeBattle:
		s.handleBattleKey(a)

	case ModeGameOver, ModeComplete:
		switch a {
		case ActionConfirm:
			fresh := NewSession(s.SavePath)
			*s = *fresh
		case ActionCancel:
			return false
		}
	}
	return true
}

func (s *Session) handleBattleKey(a Action) {
	b := s.Battle
	if b == nil {
		return
	}
	switch b.State {
	case battle.StatePlayerTurn:
		if cmd := battleCommand(a); cmd != battle.CmdNone {
			b.Queue(cmd)
		}
	case battle.StateItemSelect:
		if a == ActionCancel {
			b.CancelItem()
			return
		}
		if a >= ActionSlot1 && a < ActionSlot1+8 {
			slot := s.Inv.At(int(a - ActionSlot1))
			if slot.ID != assets.ItemNone {
				b.SelectItem(slot.ID)
			}
		}
	}
}

// stepFrame advances whichever mode is active.
func (s *Session) stepFrame(in FlightInput) {
	switch s.Mode {
	case ModeFlight:
		s.StepFlight(in)
	case ModeBattle:
		s.StepBattle()
	}
}

// draw renders the current mode.
func (s *Session) draw(r *render.Renderer) {
	switch s.Mode {
	case ModeTitle:
		level, zone := 0, 0
		if s.HasSave() {
			level, zone, _ = save.Peek(s.SavePath)
		}
		r.DrawTitle(level, zone)
	case ModeFlight:
		r.DrawFlight(s.Stats, s.Pool, &s.EnemyShots, &s.OwnShots, s.PlayerX, s.PlayerY, s.Scroll, s.Messages)
	case ModeBattle:
		r.DrawBattle(s.Battle, s.Inv)
	case ModeGameOver:
		r.DrawGameOver(s.Stats, false)
	case ModeComplete:
		r.DrawGameOver(s.Stats, true)
	}
}
