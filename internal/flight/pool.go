// Package flight implements the scrolling flight mode: a fixed-capacity
// enemy pool with pattern-driven movement, enemy fire, and the
// scroll-triggered wave scheduler. Positions and velocities are 8.8
// fixed point; screen space is the classic 256x224.
package flight

import "vexdrift/assets"

// Screen bounds and despawn margins, in pixels.
const (
	ScreenW = 256
	ScreenH = 224

	despawnBottom = 240
	despawnTop    = -48
	despawnLeft   = -48
	despawnRight  = 288
)

// PoolSize is the fixed enemy capacity. Slots are reused, never grown.
const PoolSize = 8

// EnemyState is the slot lifecycle.
type EnemyState int

const (
	EnemyInactive EnemyState = iota
	EnemyActive
	EnemyDying
)

// Flash durations in ticks.
const (
	spawnFlash  = 4
	damageFlash = 6
)

// adaptiveWaves is the cleared-wave count after which enemies fire
// faster.
const adaptiveWaves = 8

// Enemy is one pool slot. X and Y are 8.8 fixed point.
type Enemy struct {
	State   EnemyState
	Type    assets.FlightTypeID
	Pattern assets.PatternID

	X, Y    int
	VX, VY  int
	AnchorX int // entry column the sine weave oscillates around

	HP        int
	Age       int
	FireTimer int
	Flash     int
	Dying     int

	Golden bool
	Hazard bool
	Shield int
}

// PX returns the pixel X position.
func (e *Enemy) PX() int { return e.X >> 8 }

// PY returns the pixel Y position.
func (e *Enemy) PY() int { return e.Y >> 8 }

// Shot is an enemy projectile spawn request emitted by Pool.Step.
type Shot struct {
	X, Y   int // 8.8 fixed
	VX, VY int
}

// StepResult collects the events of one pool tick.
type StepResult struct {
	Shots []Shot
	// EscapedScore is the consolation score for enemies that left the
	// bottom of the screen alive (a quarter of their kill value).
	EscapedScore int
}

// Pool is the fixed arena of flight enemies.
type Pool struct {
	enemies [PoolSize]Enemy

	// WavesCleared feeds the adaptive fire rate.
	WavesCleared int

	Zone int
}

// NewPool returns an empty pool for the given zone.
func NewPool(zone int) *Pool {
	return &Pool{Zone: zone}
}

// At returns a pointer to slot i for inspection. Callers must not
// activate slots directly; use Spawn.
func (p *Pool) At(i int) *Enemy {
	return &p.enemies[i]
}

// ActiveCount returns the number of live (active or dying) slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.enemies {
		if p.enemies[i].State != EnemyInactive {
			n++
		}
	}
	return n
}

// Spawn activates the first free slot with the given type at a pixel
// position. Returns the slot, or nil when the pool is saturated.
// Spawning on a tick whose low nibble is 0x7 produces a golden variant:
// double HP, triple score, permanent flash.
func (p *Pool) Spawn(t assets.FlightTypeID, px, py int, tick uint32) *Enemy {
	var e *Enemy
	for i := range p.enemies {
		if p.enemies[i].State == EnemyInactive {
			e = &p.enemies[i]
			break
		}
	}
	if e == nil {
		return nil
	}

	def := assets.FlightType(t)
	*e = Enemy{
		State:     EnemyActive,
		Type:      t,
		Pattern:   def.Pattern,
		X:         px << 8,
		Y:         py << 8,
		AnchorX:   px << 8,
		VY:        0x100,
		HP:        assets.ScaleFlightHP(def.HP, p.Zone),
		FireTimer: p.fireRate(def),
		Flash:     spawnFlash,
	}
	if tick&0xF == 0x7 {
		e.Golden = true
		e.HP <<= 1
	}
	if t == assets.FlightHeavy {
		e.Shield = 1
	}
	return e
}

// fireRate is the type's cooldown, tightened by 12.5% once the player
// has cleared enough waves.
func (p *Pool) fireRate(def assets.FlightDef) int {
	rate := def.FireRate
	if p.WavesCleared >= adaptiveWaves {
		rate -= rate >> 3
	}
	return rate
}

// Damage applies dmg to slot i. A shield absorbs one hit outright.
// Returns the score value when the hit was lethal, 0 otherwise.
func (p *Pool) Damage(i, dmg int) int {
	e := &p.enemies[i]
	if e.State != EnemyActive {
		return 0
	}
	if e.Shield > 0 {
		e.Shield--
		e.Flash = damageFlash
		return 0
	}
	e.HP -= dmg
	if e.HP > 0 {
		e.Flash = damageFlash
		return 0
	}

	e.State = EnemyDying
	e.Dying = 10
	if e.Type >= assets.FlightHeavy {
		e.Dying += 4
	}
	if e.Age < 90 {
		e.Dying += 2
	}

	score := assets.FlightType(e.Type).Score
	if e.Golden {
		score *= 3
	}
	return score
}

// KillAll hard-clears every slot (zone transitions, game over).
func (p *Pool) KillAll() {
	for i := range p.enemies {
		p.enemies[i] = Enemy{}
	}
}

// Step advances every live enemy by one tick: movement, lifecycle, and
// fire decisions. playerX/playerY are the player's pixel position for
// aimed patterns and shots.
func (p *Pool) Step(tick uint32, playerX, playerY int) StepResult {
	var res StepResult
	for i := range p.enemies {
		e := &p.enemies[i]
		switch e.State {
		case EnemyInactive:
			continue
		case EnemyDying:
			e.Dying--
			if e.Dying <= 0 {
				*e = Enemy{}
			}
			continue
		}

		e.Age++
		if e.Flash > 0 && !e.Golden {
			e.Flash--
		}

		p.move(e, tick, playerX)

		// Despawn off-screen. Leaving via the bottom alive is a missed
		// kill: it still pays a sliver of score.
		px, py := e.PX(), e.PY()
		if py > despawnBottom {
			res.EscapedScore += assets.FlightType(e.Type).Score >> 2
			*e = Enemy{}
			continue
		}
		if py < despawnTop || px < despawnLeft || px > despawnRight {
			*e = Enemy{}
			continue
		}

		if !e.Hazard {
			if shots := p.stepFire(e, playerX, playerY); shots != nil {
				res.Shots = append(res.Shots, shots...)
			}
		}
	}
	return res
}

// stepFire runs one enemy's fire cooldown, telegraphing shortly before
// the volley.
func (p *Pool) stepFire(e *Enemy, playerX, playerY int) []Shot {
	e.FireTimer--
	if e.FireTimer == 3 {
		e.Flash = 2 // telegraph
	}
	if e.FireTimer > 0 {
		return nil
	}
	e.FireTimer = p.fireRate(assets.FlightType(e.Type))

	def := assets.FlightType(e.Type)
	shots := make([]Shot, 0, def.Shots)
	for s := 0; s < def.Shots; s++ {
		shot := Shot{X: e.X, Y: e.Y, VY: 0x200}
		if e.Pattern == assets.PatternHover || e.Pattern == assets.PatternChase {
			shot.VX, shot.VY = aimAt(e.PX(), e.PY(), playerX, playerY)
		}
		// Spread multi-shot volleys slightly.
		shot.VX += (s*2 - (def.Shots - 1)) << 5
		shots = append(shots, shot)
	}
	return shots
}

// aimAt returns an 8.8 velocity of roughly constant speed toward the
// target.
func aimAt(x, y, tx, ty int) (vx, vy int) {
	dx, dy := tx-x, ty-y
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	d := ax
	if ay > d {
		d = ay
	}
	if d == 0 {
		return 0, 0x200
	}
	return dx * 0x200 / d / 2, dy * 0x200 / d / 2
}
