// Package render draws the simulation onto a tcell screen. It is a pure
// presentation layer: nothing in here mutates game state.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vexdrift/internal/rpg"
)

// Renderer draws game views onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// New creates a Renderer for the given screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// drawText writes s starting at (x, y), advancing by display width so
// wide runes stay aligned.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// drawTextCentered writes s centered on the screen width at row y.
func (r *Renderer) drawTextCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-runewidth.StringWidth(s))/2, y, s, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// DrawTitle renders the title screen. level/zone describe the save slot
// shown by the continue option; level 0 means no save.
func (r *Renderer) DrawTitle(level, zone int) {
	r.screen.Clear()
	_, h := r.screen.Size()
	mid := h / 2

	r.drawTextCentered(mid-4, "V E X D R I F T", styleTitle)
	r.drawTextCentered(mid-2, "ENTER  new run", styleText)
	if level > 0 {
		r.drawTextCentered(mid-1, fmt.Sprintf("F9     continue  (LV %d, zone %d)", level, zone+1), styleText)
	}
	r.drawTextCentered(mid+1, "arrows move · space fire · F5 save", styleDim)
	r.drawTextCentered(mid+2, "ESC quit", styleDim)
	r.screen.Show()
}

// DrawGameOver renders the end-of-run screen.
func (r *Renderer) DrawGameOver(s *rpg.Stats, complete bool) {
	r.screen.Clear()
	_, h := r.screen.Size()
	mid := h / 2

	if complete {
		r.drawTextCentered(mid-3, "ALL ZONES CLEAR", styleVictory)
	} else {
		r.drawTextCentered(mid-3, "GAME OVER", styleDanger)
	}
	r.drawTextCentered(mid-1, fmt.Sprintf("SCORE %d   HI %d", s.Score, s.HighScore), styleText)
	r.drawTextCentered(mid, fmt.Sprintf("LV %d   KILLS %d   COMBO x%d", s.Level, s.Kills, s.MaxCombo), styleText)
	r.drawTextCentered(mid+2, "ENTER  new run        ESC quit", styleDim)
	r.screen.Show()
}

// drawStatus renders the shared one-line status bar at row y.
func (r *Renderer) drawStatus(y int, s *rpg.Stats) {
	status := fmt.Sprintf("LV%d  HP %d/%d  SP %d/%d  $%d  SCORE %d",
		s.Level, s.HP, s.MaxHP, s.SP, s.MaxSP, s.Credits, s.Score)
	r.drawText(0, y, status, styleText)
}

// drawMessages renders the rolling message log under the separator.
func (r *Renderer) drawMessages(y int, messages []string, max int) {
	start := len(messages) - max
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, y+i, msg, styleLog)
	}
}
