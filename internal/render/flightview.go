package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"vexdrift/internal/flight"
	"vexdrift/internal/rpg"
)

// Field-to-cell scaling: the 256x224 pixel field maps onto 64x28 cells.
const (
	cellW = 4
	cellH = 8
)

// enemyGlyphs is indexed by flight type.
var enemyGlyphs = []rune{'v', 'w', 'M', 'X'}

// fieldToCell converts field pixels to screen cells.
func fieldToCell(px, py int) (int, int) {
	return px / cellW, py / cellH
}

// DrawFlight renders the scrolling flight field, the HUD, and the log.
func (r *Renderer) DrawFlight(s *rpg.Stats, pool *flight.Pool, enemyShots, ownShots *flight.ShotPool, playerX, playerY, scroll int, messages []string) {
	r.screen.Clear()

	for i := 0; i < flight.PoolSize; i++ {
		e := pool.At(i)
		if e.State == flight.EnemyInactive {
			continue
		}
		x, y := fieldToCell(e.PX(), e.PY())
		glyph := enemyGlyphs[int(e.Type)%len(enemyGlyphs)]
		style := enemyStyles[int(e.Type)%len(enemyStyles)]
		switch {
		case e.State == flight.EnemyDying:
			glyph, style = '*', styleDying
		case e.Hazard:
			glyph, style = '#', styleHazard
		case e.Golden:
			style = styleGolden
		case e.Flash > 0:
			style = styleFlash
		}
		r.screen.SetContent(x, y, glyph, nil, style)
		if e.Shield > 0 {
			r.screen.SetContent(x, y-1, '-', nil, styleDim)
		}
	}

	drawShots := func(sp *flight.ShotPool, glyph rune, style tcell.Style) {
		for i := 0; i < flight.ShotPoolSize; i++ {
			shot := sp.At(i)
			if !shot.Active {
				continue
			}
			x, y := fieldToCell(shot.PX(), shot.PY())
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	drawShots(enemyShots, '.', styleShot)
	drawShots(ownShots, '|', stylePlayer)

	px, py := fieldToCell(playerX, playerY)
	r.screen.SetContent(px, py, 'A', nil, stylePlayer)

	hudY := flight.ScreenH/cellH + 1
	r.drawHLine(hudY, tcell.ColorGray)
	r.drawStatus(hudY+1, s)
	r.drawText(0, hudY+2, fmt.Sprintf("ZONE %d  %dm", s.Zone+1, scroll), styleDim)
	r.drawMessages(hudY+3, messages, 3)
	r.screen.Show()
}
