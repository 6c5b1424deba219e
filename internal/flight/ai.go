package flight

import "vexdrift/assets"

// sineLUT is the horizontal weave table for the sine pattern, indexed by
// (age>>2)&0xF. Values are pixel offsets applied around the entry column.
var sineLUT = [16]int{0, 3, 5, 7, 7, 7, 5, 3, 0, -3, -5, -7, -7, -7, -5, -3}

// Hover pattern tuning: descend to hoverY, then strafe between the
// margins.
const (
	hoverY      = 60
	strafeLeft  = 16
	strafeRight = 224
	strafeSpeed = 0x100
)

// chaseDeadzone is the horizontal tracking slack in pixels.
const chaseDeadzone = 4

// move advances one enemy along its pattern.
func (p *Pool) move(e *Enemy, tick uint32, playerX int) {
	switch e.Pattern {
	case assets.PatternSine:
		// Positional weave: the offset is absolute, not accumulated, so
		// the enemy never drifts off its column.
		e.VX = 0
		e.X = e.AnchorX + sineLUT[(e.Age>>2)&0xF]<<8

	case assets.PatternHover:
		if e.PY() < hoverY {
			e.VX = 0
			e.VY = 0x100
		} else {
			e.VY = 0
			if e.VX == 0 {
				e.VX = strafeSpeed
			}
			if e.PX() <= strafeLeft {
				e.VX = strafeSpeed
			} else if e.PX() >= strafeRight {
				e.VX = -strafeSpeed
			}
		}

	case assets.PatternChase:
		// Track the player a pixel at a time, every other tick.
		e.VX = 0
		if tick&1 == 0 {
			dx := playerX - e.PX()
			if dx > chaseDeadzone {
				e.X += 1 << 8
			} else if dx < -chaseDeadzone {
				e.X -= 1 << 8
			}
		}

	case assets.PatternSwoop:
		// A fast entry that bleeds off horizontal speed.
		if e.Age > 30 && e.Age&7 == 0 {
			switch {
			case e.VX > 0x40:
				e.VX -= 0x40
			case e.VX < -0x40:
				e.VX += 0x40
			default:
				e.VX = 0
			}
		}
	}

	e.X += e.VX
	e.Y += e.VY
}
