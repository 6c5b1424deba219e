// Package game glues the simulation together: flight mode, battle
// hand-off, zone progression, saving, and the terminal run loop.
package game

import (
	"fmt"

	"vexdrift/assets"
	"vexdrift/internal/battle"
	"vexdrift/internal/flight"
	"vexdrift/internal/item"
	"vexdrift/internal/rpg"
	"vexdrift/internal/save"
)

// Mode is the top-level game state.
type Mode uint8

const (
	ModeTitle Mode = iota
	ModeFlight
	ModeBattle
	ModeGameOver
	ModeComplete
)

// Player flight tuning.
const (
	playerSpeed    = 2  // pixels per tick
	playerFireCD   = 8  // ticks between player shots
	playerShotDmg  = 10
	shotHitRadius  = 6  // pixels
	crashHitRadius = 10 // pixels
	shotChipDamage = 4  // flight HP cost of eating a shot
	scrollPerTick  = 1
)

// Session is one player's full game state.
type Session struct {
	Mode Mode
	Tick uint32

	Stats *rpg.Stats
	Inv   *item.Inventory
	Drops item.DropRoller

	Pool       *flight.Pool
	Sched      *flight.Scheduler
	EnemyShots flight.ShotPool
	OwnShots   flight.ShotPool

	Battle    *battle.Context
	bossFight bool

	Scroll      int
	PlayerX     int
	PlayerY     int
	fireCD      int
	combo       int
	zoneDefeats int
	playFrames  int

	SavePath string
	Messages []string

	log RunLog
}

// NewSession starts a fresh run.
func NewSession(savePath string) *Session {
	s := &Session{
		Mode:     ModeTitle,
		Stats:    rpg.New(),
		Inv:      item.New(),
		SavePath: savePath,
	}
	s.enterZone(0)
	return s
}

// enterZone resets the flight field for the given zone.
func (s *Session) enterZone(zone int) {
	s.Stats.Zone = zone
	s.Pool = flight.NewPool(zone)
	s.Sched = flight.NewScheduler(zone)
	s.EnemyShots.Clear()
	s.OwnShots.Clear()
	s.Scroll = 0
	s.PlayerX = flight.ScreenW / 2
	s.PlayerY = flight.ScreenH - 32
	s.fireCD = 0
	s.combo = 0
	s.zoneDefeats = 0
}

// StartRun leaves the title screen.
func (s *Session) StartRun() {
	s.Mode = ModeFlight
	s.message("ZONE %d", s.Stats.Zone+1)
}

// FlightInput is the per-tick control state in flight mode.
type FlightInput struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// StepFlight advances flight mode by one tick.
func (s *Session) StepFlight(in FlightInput) {
	s.Tick++
	s.playFrames++
	if s.playFrames%60 == 0 {
		s.Stats.PlaySeconds++
	}
	if s.Stats.TickSPRegen() {
		s.message("SP RESTORED")
	}

	s.movePlayer(in)
	s.stepOwnFire(in.Fire)

	s.Scroll += scrollPerTick
	s.Sched.Step(s.Scroll, s.Pool, s.Tick)

	res := s.Pool.Step(s.Tick, s.PlayerX, s.PlayerY)
	for _, shot := range res.Shots {
		s.EnemyShots.Add(shot)
	}
	if res.EscapedScore > 0 {
		s.Stats.AddScore(res.EscapedScore)
	}
	s.EnemyShots.Step()
	s.OwnShots.Step()

	s.collideOwnShots()
	s.collideEnemyShots()
	s.collideEnemies()

	// Boss gate: the zone ends when the scroll is spent and the field
	// is clear.
	if s.Sched.BossReady(s.Scroll) && s.Pool.ActiveCount() == 0 {
		s.startBossBattle()
	}
}

func (s *Session) movePlayer(in FlightInput) {
	if in.Left {
		s.PlayerX -= playerSpeed
	}
	if in.Right {
		s.PlayerX += playerSpeed
	}
	if in.Up {
		s.PlayerY -= playerSpeed
	}
	if in.Down {
		s.PlayerY += playerSpeed
	}
	if s.PlayerX < 8 {
		s.PlayerX = 8
	}
	if s.PlayerX > flight.ScreenW-8 {
		s.PlayerX = flight.ScreenW - 8
	}
	if s.PlayerY < 16 {
		s.PlayerY = 16
	}
	if s.PlayerY > flight.ScreenH-8 {
		s.PlayerY = flight.ScreenH - 8
	}
}

func (s *Session) stepOwnFire(fire bool) {
	if s.fireCD > 0 {
		s.fireCD--
	}
	if fire && s.fireCD == 0 {
		s.OwnShots.Add(flight.Shot{
			X: s.PlayerX << 8, Y: (s.PlayerY - 8) << 8, VY: -0x400,
		})
		s.fireCD = playerFireCD
	}
}

// collideOwnShots resolves player fire against the enemy pool.
func (s *Session) collideOwnShots() {
	for si := 0; si < flight.ShotPoolSize; si++ {
		shot := s.OwnShots.At(si)
		if !shot.Active {
			continue
		}
		for ei := 0; ei < flight.PoolSize; ei++ {
			e := s.Pool.At(ei)
			if e.State != flight.EnemyActive {
				continue
			}
			if !near(shot.PX(), shot.PY(), e.PX(), e.PY(), shotHitRadius) {
				continue
			}
			*shot = flight.ShotSlot{}
			if score := s.Pool.Damage(ei, playerShotDmg); score > 0 {
				s.Stats.AddScore(score)
				s.Stats.WeaponKills[0]++
				s.combo++
				if s.combo > s.Stats.MaxCombo {
					s.Stats.MaxCombo = s.combo
				}
			}
			break
		}
	}
}

// collideEnemyShots chips flight HP; running dry out here ends the run.
func (s *Session) collideEnemyShots() {
	for si := 0; si < flight.ShotPoolSize; si++ {
		shot := s.EnemyShots.At(si)
		if !shot.Active {
			continue
		}
		if !near(shot.PX(), shot.PY(), s.PlayerX, s.PlayerY, shotHitRadius) {
			continue
		}
		*shot = flight.ShotSlot{}
		s.combo = 0
		s.Stats.HP -= shotChipDamage
		s.message("HIT! -%d HP", shotChipDamage)
		if s.Stats.HP <= 0 {
			s.Stats.HP = 0
			s.gameOver("shot down")
			return
		}
	}
}

// collideEnemies turns a ram into a boarding action: the crashed ship is
// pulled from the field and the fight continues turn-based.
func (s *Session) collideEnemies() {
	if s.Mode != ModeFlight {
		return
	}
	for ei := 0; ei < flight.PoolSize; ei++ {
		e := s.Pool.At(ei)
		if e.State != flight.EnemyActive {
			continue
		}
		if !near(e.PX(), e.PY(), s.PlayerX, s.PlayerY, crashHitRadius) {
			continue
		}
		arch := assets.BattleArchetypeFor(e.Type)
		*e = flight.Enemy{}
		s.combo = 0
		s.startBattle(arch)
		return
	}
}

func near(x1, y1, x2, y2, r int) bool {
	dx, dy := x1-x2, y1-y2
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= r && dy <= r
}

func (s *Session) startBattle(arch assets.ArchetypeID) {
	s.Battle = battle.New(s.Stats, s.Inv, &s.Drops, arch, s.Stats.Zone)
	s.bossFight = false
	s.Mode = ModeBattle
}

func (s *Session) startBossBattle() {
	s.Battle = battle.NewBoss(s.Stats, s.Inv, &s.Drops, s.Sched.Boss(), s.Stats.Zone)
	s.bossFight = true
	s.Mode = ModeBattle
	s.message("%s BLOCKS THE WAY", assets.Boss(s.Sched.Boss()).Name)
}

// StepBattle advances an active battle by one tick and handles the
// hand-back to flight mode when it ends.
func (s *Session) StepBattle() {
	s.Tick++
	s.playFrames++
	if s.playFrames%60 == 0 {
		s.Stats.PlaySeconds++
	}
	b := s.Battle
	if b == nil {
		s.Mode = ModeFlight
		return
	}
	b.Step(s.Tick)
	if !b.Done() {
		return
	}

	switch b.Outcome {
	case battle.OutcomeVictory:
		if s.bossFight {
			s.clearZone()
			return
		}
		s.Pool.WavesCleared++
	case battle.OutcomeDefeat:
		s.zoneDefeats++
		s.log.Defeats++
	}
	s.Battle = nil
	s.Mode = ModeFlight
}

// clearZone records the rank for the finished zone and advances, or ends
// a completed run.
func (s *Session) clearZone() {
	zone := s.Stats.Zone
	rank := 3 - s.zoneDefeats
	if rank < 1 {
		rank = 1
	}
	if rank > s.Stats.ZoneRanks[zone] {
		s.Stats.ZoneRanks[zone] = rank
	}
	if s.Stats.ZonesCleared < zone+1 {
		s.Stats.ZonesCleared = zone + 1
	}
	s.Battle = nil

	if zone+1 >= assets.ZoneCount {
		s.Mode = ModeComplete
		s.writeRunLog("complete")
		return
	}
	s.enterZone(zone + 1)
	s.Mode = ModeFlight
	s.message("ZONE %d CLEAR!", zone+1)
}

func (s *Session) gameOver(cause string) {
	s.Mode = ModeGameOver
	s.writeRunLog(cause)
}

// Save snapshots the run to the session's save path.
func (s *Session) Save() error {
	s.Drops.Reset()
	if err := save.Write(s.SavePath, save.Capture(s.Stats, s.Inv)); err != nil {
		return err
	}
	s.message("SAVED")
	return nil
}

// Load restores the save file, if any, and drops back into flight mode
// at the start of the saved zone.
func (s *Session) Load() error {
	d, err := save.Read(s.SavePath)
	if err != nil {
		return err
	}
	d.Apply(s.Stats, s.Inv, &s.Drops)
	s.enterZone(s.Stats.Zone)
	s.Mode = ModeFlight
	s.message("LOADED")
	return nil
}

// HasSave reports whether a valid save exists for the continue option.
func (s *Session) HasSave() bool {
	return s.SavePath != "" && save.Exists(s.SavePath)
}

func (s *Session) message(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
	if len(s.Messages) > 4 {
		s.Messages = s.Messages[len(s.Messages)-4:]
	}
}
