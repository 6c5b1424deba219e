package render

import "github.com/gdamore/tcell/v2"

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLog     = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleVictory = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleDanger  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHazard = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleGolden = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleFlash  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDying  = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
)

// enemyStyles is indexed by flight type.
var enemyStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorSilver),  // scout
	tcell.StyleDefault.Foreground(tcell.ColorFuchsia), // drone
	tcell.StyleDefault.Foreground(tcell.ColorGreen),   // heavy
	tcell.StyleDefault.Foreground(tcell.ColorRed),     // hunter
}
