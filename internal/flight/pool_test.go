package flight

import (
	"testing"

	"vexdrift/assets"
)

// nonGoldenTick is any tick whose low nibble is not 0x7.
const nonGoldenTick = 100

func TestSpawnFirstFit(t *testing.T) {
	p := NewPool(0)
	a := p.Spawn(assets.FlightScout, 100, 10, nonGoldenTick)
	b := p.Spawn(assets.FlightDrone, 120, 10, nonGoldenTick)
	if a != p.At(0) || b != p.At(1) {
		t.Fatal("spawn did not use the first free slots in order")
	}

	// Free slot 0 and spawn again: first-fit reuses it.
	*p.At(0) = Enemy{}
	c := p.Spawn(assets.FlightScout, 50, 10, nonGoldenTick)
	if c != p.At(0) {
		t.Error("spawn did not reuse the freed slot 0")
	}
}

func TestSpawnSaturation(t *testing.T) {
	p := NewPool(0)
	for i := 0; i < PoolSize; i++ {
		if p.Spawn(assets.FlightScout, 10+i, 10, nonGoldenTick) == nil {
			t.Fatalf("spawn %d failed with free capacity", i)
		}
	}
	if p.Spawn(assets.FlightScout, 0, 0, nonGoldenTick) != nil {
		t.Error("spawn succeeded on a saturated pool")
	}
	if p.ActiveCount() != PoolSize {
		t.Errorf("active = %d, want %d", p.ActiveCount(), PoolSize)
	}
}

func TestSpawnZoneScaling(t *testing.T) {
	base := assets.FlightType(assets.FlightScout).HP
	for zone, want := range []int{base, base + base>>1, base * 2} {
		p := NewPool(zone)
		e := p.Spawn(assets.FlightScout, 100, 10, nonGoldenTick)
		if e.HP != want {
			t.Errorf("zone %d hp = %d, want %d", zone, e.HP, want)
		}
	}
}

func TestGoldenVariant(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightScout, 100, 10, 0x17) // low nibble 0x7
	if !e.Golden {
		t.Fatal("spawn on a x7 tick did not produce a golden variant")
	}
	if e.HP != assets.FlightType(assets.FlightScout).HP*2 {
		t.Errorf("golden hp = %d, want double", e.HP)
	}

	// Lethal damage pays triple score.
	score := p.Damage(0, 1000)
	if want := assets.FlightType(assets.FlightScout).Score * 3; score != want {
		t.Errorf("golden kill score = %d, want %d", score, want)
	}
}

func TestHeavyShieldAbsorbsOneHit(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightHeavy, 100, 10, nonGoldenTick)
	hp := e.HP

	if got := p.Damage(0, 1000); got != 0 {
		t.Fatal("shielded hit was lethal")
	}
	if e.HP != hp || e.Shield != 0 {
		t.Errorf("after shielded hit: hp %d shield %d, want %d/0", e.HP, e.Shield, hp)
	}
	if got := p.Damage(0, 1000); got == 0 {
		t.Error("second hit should have been lethal")
	}
}

func TestDyingLifecycle(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightScout, 100, 10, nonGoldenTick)
	e.Age = 100 // past the fresh-spawn grace
	p.Damage(0, 1000)
	if e.State != EnemyDying {
		t.Fatalf("state = %d, want dying", e.State)
	}
	if e.Dying != 10 {
		t.Errorf("dying timer = %d, want 10 for an aged scout", e.Dying)
	}

	for i := 0; i < 10; i++ {
		p.Step(nonGoldenTick, 128, 200)
	}
	if e.State != EnemyInactive {
		t.Errorf("state = %d, want inactive after the dying timer", e.State)
	}
}

func TestDyingTimerLongerWhenFresh(t *testing.T) {
	p := NewPool(0)
	p.Spawn(assets.FlightHeavy, 100, 10, nonGoldenTick)
	p.Damage(0, 1000) // shield
	p.Damage(0, 1000)
	if got := p.At(0).Dying; got != 16 {
		t.Errorf("fresh heavy dying timer = %d, want 16", got)
	}
}

func TestDamageIgnoresDyingSlots(t *testing.T) {
	p := NewPool(0)
	p.Spawn(assets.FlightScout, 100, 10, nonGoldenTick)
	p.Damage(0, 1000)
	if got := p.Damage(0, 1000); got != 0 {
		t.Error("dying slot awarded score twice")
	}
}

func TestNaturalExitAwardsQuarterScore(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightScout, 100, despawnBottom-1, nonGoldenTick)
	e.VY = 0x200

	res := p.Step(nonGoldenTick, 128, 200)
	if want := assets.FlightType(assets.FlightScout).Score >> 2; res.EscapedScore != want {
		t.Errorf("escape score = %d, want %d", res.EscapedScore, want)
	}
	if e.State != EnemyInactive {
		t.Error("escaped enemy still active")
	}
}

func TestSideExitAwardsNothing(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightScout, despawnLeft+1, 50, nonGoldenTick)
	e.VX = -0x400
	e.VY = 0

	res := p.Step(nonGoldenTick, 128, 200)
	if res.EscapedScore != 0 {
		t.Errorf("side exit paid %d score", res.EscapedScore)
	}
	if e.State != EnemyInactive {
		t.Error("off-screen enemy still active")
	}
}

func TestKillAllClearsPool(t *testing.T) {
	p := NewPool(0)
	for i := 0; i < PoolSize; i++ {
		p.Spawn(assets.FlightScout, 10+i, 10, nonGoldenTick)
	}
	p.KillAll()
	if p.ActiveCount() != 0 {
		t.Errorf("active = %d after KillAll, want 0", p.ActiveCount())
	}
}

func TestFireCooldownAndTelegraph(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightDrone, 100, 50, nonGoldenTick) // rate 60, 1 shot
	rate := e.FireTimer

	var fired []Shot
	for i := 0; i < rate; i++ {
		res := p.Step(nonGoldenTick, 128, 200)
		fired = append(fired, res.Shots...)
		if e.FireTimer == 3 && e.Flash == 0 {
			t.Error("no telegraph flash at fire timer 3")
		}
	}
	if len(fired) != 1 {
		t.Fatalf("shots after one full cooldown = %d, want 1", len(fired))
	}
	if e.FireTimer != rate {
		t.Errorf("cooldown not reset: %d, want %d", e.FireTimer, rate)
	}
}

func TestAimedFireForHover(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightHeavy, 200, 50, nonGoldenTick)
	e.FireTimer = 1
	e.Y = hoverY << 8 // already on station

	res := p.Step(nonGoldenTick, 40, 200) // player far left
	if len(res.Shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(res.Shots))
	}
	if res.Shots[0].VX >= 0 {
		t.Errorf("hover shot vx = %d, want leftward (aimed)", res.Shots[0].VX)
	}
}

func TestStraightFireForLinear(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightScout, 100, 50, nonGoldenTick)
	e.FireTimer = 1

	res := p.Step(nonGoldenTick, 0, 200)
	if len(res.Shots) != 2 {
		t.Fatalf("shots = %d, want a 2-shot volley", len(res.Shots))
	}
	for _, s := range res.Shots {
		if s.VY != 0x200 {
			t.Errorf("linear shot vy = %d, want straight down 0x200", s.VY)
		}
	}
}

func TestHazardsNeverFire(t *testing.T) {
	p := NewPool(0)
	p.SpawnHazards(assets.FlightScout, 2, nonGoldenTick)
	for i := 0; i < 200; i++ {
		if res := p.Step(nonGoldenTick, 128, 200); len(res.Shots) != 0 {
			t.Fatal("hazard fired a shot")
		}
	}
}

func TestSineWeaveOscillatesAroundEntryColumn(t *testing.T) {
	p := NewPool(0)
	e := p.Spawn(assets.FlightDrone, 100, 10, nonGoldenTick)

	// The weave is positional: peak right, back to the entry column,
	// peak left. Accumulated velocity would drift off the column.
	steps := 0
	advance := func(n int) {
		for i := 0; i < n; i++ {
			p.Step(nonGoldenTick, 128, 200)
		}
		steps += n
	}

	advance(16)
	if e.PX() != 107 {
		t.Errorf("after %d steps px = %d, want 107 (right peak)", steps, e.PX())
	}
	advance(16)
	if e.PX() != 100 {
		t.Errorf("after %d steps px = %d, want 100 (back on column)", steps, e.PX())
	}
	advance(16)
	if e.PX() != 93 {
		t.Errorf("after %d steps px = %d, want 93 (left peak)", steps, e.PX())
	}
}

func TestAdaptiveFireRate(t *testing.T) {
	p := NewPool(0)
	p.WavesCleared = adaptiveWaves
	e := p.Spawn(assets.FlightDrone, 100, 50, nonGoldenTick)
	base := assets.FlightType(assets.FlightDrone).FireRate
	if want := base - base>>3; e.FireTimer != want {
		t.Errorf("adaptive cooldown = %d, want %d", e.FireTimer, want)
	}
}
