package flight

// ShotPoolSize caps live enemy projectiles.
const ShotPoolSize = 16

// ShotSlot is one live projectile, 8.8 fixed point.
type ShotSlot struct {
	Active bool
	X, Y   int
	VX, VY int
}

// PX returns the pixel X position.
func (s *ShotSlot) PX() int { return s.X >> 8 }

// PY returns the pixel Y position.
func (s *ShotSlot) PY() int { return s.Y >> 8 }

// ShotPool is the fixed arena of enemy projectiles.
type ShotPool struct {
	shots [ShotPoolSize]ShotSlot
}

// At returns a pointer to slot i.
func (sp *ShotPool) At(i int) *ShotSlot { return &sp.shots[i] }

// ActiveCount returns the number of live projectiles.
func (sp *ShotPool) ActiveCount() int {
	n := 0
	for i := range sp.shots {
		if sp.shots[i].Active {
			n++
		}
	}
	return n
}

// Add activates a projectile from a spawn request. Silently drops the
// shot when the pool is saturated.
func (sp *ShotPool) Add(s Shot) bool {
	for i := range sp.shots {
		if !sp.shots[i].Active {
			sp.shots[i] = ShotSlot{Active: true, X: s.X, Y: s.Y, VX: s.VX, VY: s.VY}
			return true
		}
	}
	return false
}

// Step moves every projectile and despawns those that leave the screen.
func (sp *ShotPool) Step() {
	for i := range sp.shots {
		s := &sp.shots[i]
		if !s.Active {
			continue
		}
		s.X += s.VX
		s.Y += s.VY
		px, py := s.PX(), s.PY()
		if py > despawnBottom || py < despawnTop || px < despawnLeft || px > despawnRight {
			*s = ShotSlot{}
		}
	}
}

// Clear deactivates every projectile.
func (sp *ShotPool) Clear() {
	for i := range sp.shots {
		sp.shots[i] = ShotSlot{}
	}
}
