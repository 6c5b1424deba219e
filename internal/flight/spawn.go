package flight

import "vexdrift/assets"

// Side-entry spawn velocities and positions. Linear enemies enter
// fully off-screen moving fast; other patterns drop in from the top
// nearer the field.
const (
	sideSpeed   = 0x180
	leftEntryX  = -24
	leftInsetX  = 24
	rightEntryX = ScreenW + 8
	rightInsetX = 200
	topEntryY   = -16
	formCenterX = ScreenW / 2
)

// SpawnFromLeft activates one enemy entering from the left edge.
func (p *Pool) SpawnFromLeft(t assets.FlightTypeID, tick uint32) *Enemy {
	def := assets.FlightType(t)
	if def.Pattern == assets.PatternLinear || def.Pattern == assets.PatternSwoop {
		e := p.Spawn(t, leftEntryX, topEntryY, tick)
		if e != nil {
			e.VX = sideSpeed
		}
		return e
	}
	return p.Spawn(t, leftInsetX, topEntryY, tick)
}

// SpawnFromRight activates one enemy entering from the right edge.
func (p *Pool) SpawnFromRight(t assets.FlightTypeID, tick uint32) *Enemy {
	def := assets.FlightType(t)
	if def.Pattern == assets.PatternLinear || def.Pattern == assets.PatternSwoop {
		e := p.Spawn(t, rightEntryX, topEntryY, tick)
		if e != nil {
			e.VX = -sideSpeed
		}
		return e
	}
	return p.Spawn(t, rightInsetX, topEntryY, tick)
}

// SpawnVee activates a five-ship V formation: a point ship with two
// trailing wings on each side.
func (p *Pool) SpawnVee(t assets.FlightTypeID, tick uint32) int {
	offsets := []struct{ dx, dy int }{
		{0, 0},
		{-30, -20}, {30, -20},
		{-60, -40}, {60, -40},
	}
	n := 0
	for _, o := range offsets {
		if p.Spawn(t, formCenterX+o.dx, topEntryY+o.dy, tick) != nil {
			n++
		}
	}
	return n
}

// SpawnPincer activates a matched pair closing from both edges.
func (p *Pool) SpawnPincer(t assets.FlightTypeID, tick uint32) int {
	n := 0
	if p.SpawnFromLeft(t, tick) != nil {
		n++
	}
	if p.SpawnFromRight(t, tick) != nil {
		n++
	}
	return n
}

// SpawnHazards activates count collision-only obstacles spread across
// the top of the screen. Hazards never fire.
func (p *Pool) SpawnHazards(t assets.FlightTypeID, count int, tick uint32) int {
	if count < 1 {
		count = 1
	}
	n := 0
	gap := ScreenW / (count + 1)
	for i := 0; i < count; i++ {
		e := p.Spawn(t, gap*(i+1), topEntryY, tick)
		if e == nil {
			continue
		}
		e.Hazard = true
		e.VY = 0x140
		n++
	}
	return n
}

// SpawnSwarm activates count enemies in a staggered column down the
// field.
func (p *Pool) SpawnSwarm(t assets.FlightTypeID, count int, tick uint32) int {
	if count < 1 {
		count = 1
	}
	n := 0
	for i := 0; i < count; i++ {
		x := formCenterX - 48 + (i&3)*32
		if p.Spawn(t, x, topEntryY-i*24, tick) != nil {
			n++
		}
	}
	return n
}

// Scheduler walks a zone's scroll-triggered wave table.
type Scheduler struct {
	zone assets.ZoneSchedule
	next int
}

// NewScheduler returns the wave scheduler for zone.
func NewScheduler(zone int) *Scheduler {
	zones := assets.Zones()
	if zone < 0 || zone >= len(zones) {
		zone = 0
	}
	return &Scheduler{zone: zones[zone]}
}

// Boss returns the boss guarding the end of this zone.
func (s *Scheduler) Boss() assets.BossID { return s.zone.Boss }

// BossReady reports whether the scroll position has reached the boss
// gate.
func (s *Scheduler) BossReady(scroll int) bool { return scroll >= s.zone.Length }

// Remaining returns the number of unfired triggers.
func (s *Scheduler) Remaining() int { return len(s.zone.Triggers) - s.next }

// Step fires every trigger whose threshold the scroll position has
// passed, spawning its formation into the pool. Returns the number of
// triggers fired this call.
func (s *Scheduler) Step(scroll int, p *Pool, tick uint32) int {
	fired := 0
	for s.next < len(s.zone.Triggers) && scroll >= s.zone.Triggers[s.next].Scroll {
		tr := s.zone.Triggers[s.next]
		s.next++
		fired++

		switch tr.Formation {
		case assets.FormationLeft:
			n := tr.Count
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				s.spawnStaggered(p, tr.Type, tick, i, p.SpawnFromLeft)
			}
		case assets.FormationRight:
			n := tr.Count
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				s.spawnStaggered(p, tr.Type, tick, i, p.SpawnFromRight)
			}
		case assets.FormationVee:
			p.SpawnVee(tr.Type, tick)
		case assets.FormationPincer:
			p.SpawnPincer(tr.Type, tick)
		case assets.FormationHazard:
			p.SpawnHazards(tr.Type, tr.Count, tick)
		case assets.FormationSwarm:
			p.SpawnSwarm(tr.Type, tr.Count, tick)
		}
	}
	return fired
}

// spawnStaggered offsets the ith ship of a side column so a multi-ship
// entry doesn't stack on one pixel.
func (s *Scheduler) spawnStaggered(p *Pool, t assets.FlightTypeID, tick uint32, i int, spawn func(assets.FlightTypeID, uint32) *Enemy) {
	e := spawn(t, tick)
	if e != nil && i > 0 {
		e.Y -= i * 20 << 8
	}
}
