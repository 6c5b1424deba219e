package flight

import (
	"testing"

	"vexdrift/assets"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler(0)
	p := NewPool(0)

	if fired := s.Step(299, p, nonGoldenTick); fired != 0 {
		t.Fatalf("fired %d triggers before the first threshold", fired)
	}
	if fired := s.Step(300, p, nonGoldenTick); fired != 1 {
		t.Fatalf("fired %d triggers at the first threshold, want 1", fired)
	}
	// Zone 0 opens with a 3-ship column from the left.
	if p.ActiveCount() != 3 {
		t.Errorf("active after first wave = %d, want 3", p.ActiveCount())
	}
}

func TestSchedulerCatchesUpPastMultipleThresholds(t *testing.T) {
	s := NewScheduler(0)
	p := NewPool(0)

	// Jumping straight to 1200 crosses the 300, 700, and 1100 triggers.
	if fired := s.Step(1200, p, nonGoldenTick); fired != 3 {
		t.Errorf("fired = %d, want 3", fired)
	}
	if fired := s.Step(1200, p, nonGoldenTick); fired != 0 {
		t.Errorf("re-stepping the same scroll fired %d more", fired)
	}
}

func TestSchedulerExhausts(t *testing.T) {
	s := NewScheduler(0)
	p := NewPool(0)
	total := s.Remaining()
	fired := s.Step(1<<20, p, nonGoldenTick)
	if fired != total {
		t.Errorf("fired = %d, want all %d", fired, total)
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", s.Remaining())
	}
}

func TestSchedulerBossGate(t *testing.T) {
	for zone := 0; zone < assets.ZoneCount; zone++ {
		s := NewScheduler(zone)
		length := assets.Zones()[zone].Length
		if s.BossReady(length - 1) {
			t.Errorf("zone %d: boss ready before the gate", zone)
		}
		if !s.BossReady(length) {
			t.Errorf("zone %d: boss not ready at the gate", zone)
		}
		if s.Boss() != assets.Zones()[zone].Boss {
			t.Errorf("zone %d: wrong boss %v", zone, s.Boss())
		}
	}
}

func TestVeeFormationShape(t *testing.T) {
	p := NewPool(0)
	if n := p.SpawnVee(assets.FlightDrone, nonGoldenTick); n != 5 {
		t.Fatalf("vee spawned %d ships, want 5", n)
	}
	// Point ship at center, wings above and outside.
	point := p.At(0)
	if point.PX() != formCenterX {
		t.Errorf("point x = %d, want %d", point.PX(), formCenterX)
	}
	left := p.At(1)
	if left.PX() != formCenterX-30 || left.PY() != topEntryY-20 {
		t.Errorf("first wing at (%d,%d), want (%d,%d)", left.PX(), left.PY(), formCenterX-30, topEntryY-20)
	}
}

func TestPincerEntersFromBothSides(t *testing.T) {
	p := NewPool(0)
	if n := p.SpawnPincer(assets.FlightScout, nonGoldenTick); n != 2 {
		t.Fatalf("pincer spawned %d, want 2", n)
	}
	l, r := p.At(0), p.At(1)
	if l.VX <= 0 || r.VX >= 0 {
		t.Errorf("pincer velocities %d/%d, want opposed", l.VX, r.VX)
	}
	if l.PX() >= r.PX() {
		t.Errorf("pincer positions %d/%d, want left < right", l.PX(), r.PX())
	}
}

func TestFormationRespectsPoolCapacity(t *testing.T) {
	p := NewPool(0)
	p.SpawnVee(assets.FlightDrone, nonGoldenTick)
	if n := p.SpawnVee(assets.FlightDrone, nonGoldenTick); n != 3 {
		t.Errorf("second vee spawned %d into 3 free slots, want 3", n)
	}
	if p.ActiveCount() != PoolSize {
		t.Errorf("active = %d, want full pool", p.ActiveCount())
	}
}

func TestShotPool(t *testing.T) {
	var sp ShotPool
	for i := 0; i < ShotPoolSize; i++ {
		if !sp.Add(Shot{X: 100 << 8, Y: 50 << 8, VY: 0x200}) {
			t.Fatalf("add %d failed with free capacity", i)
		}
	}
	if sp.Add(Shot{}) {
		t.Error("add succeeded on a saturated shot pool")
	}

	// 8.8 movement: 0x200 is two pixels per tick.
	sp.Step()
	if got := sp.At(0).PY(); got != 52 {
		t.Errorf("shot y = %d after one step, want 52", got)
	}

	// All shots leave the screen eventually.
	for i := 0; i < 200; i++ {
		sp.Step()
	}
	if sp.ActiveCount() != 0 {
		t.Errorf("active shots = %d after flying off-screen, want 0", sp.ActiveCount())
	}

	sp.Add(Shot{X: 10 << 8, Y: 10 << 8, VY: 0x100})
	sp.Clear()
	if sp.ActiveCount() != 0 {
		t.Error("Clear left shots active")
	}
}
