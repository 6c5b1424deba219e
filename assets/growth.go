package assets

// Player progression tables.

// MaxLevel is the player level cap.
const MaxLevel = 10

// BasePlayer is the level-1 stat block for a new game.
var BasePlayer = struct {
	HP, ATK, DEF, SPD, SP int
}{HP: 80, ATK: 12, DEF: 6, SPD: 10, SP: 2}

// XPTable holds the cumulative XP required to reach each level.
// XPTable[n] is the total XP needed to be level n+1; the 0xFFFF sentinel
// past the cap means "never" since XP itself saturates at 0xFFFF.
var XPTable = [MaxLevel + 1]int{0, 30, 80, 160, 280, 450, 680, 1000, 1400, 2000, 0xFFFF}

// GrowthRow is the stat gain applied when a level is reached.
type GrowthRow struct {
	HP, ATK, DEF, SPD, SP int
}

// Growth[i] is the gain for reaching level i+2 (index 0 = level 2).
var Growth = [MaxLevel - 1]GrowthRow{
	{HP: 15, ATK: 2, DEF: 1, SPD: 1, SP: 0}, // L2
	{HP: 15, ATK: 2, DEF: 2, SPD: 1, SP: 1}, // L3
	{HP: 20, ATK: 3, DEF: 2, SPD: 1, SP: 0}, // L4
	{HP: 20, ATK: 3, DEF: 2, SPD: 2, SP: 1}, // L5
	{HP: 25, ATK: 3, DEF: 3, SPD: 1, SP: 0}, // L6
	{HP: 25, ATK: 4, DEF: 3, SPD: 2, SP: 1}, // L7
	{HP: 30, ATK: 4, DEF: 3, SPD: 1, SP: 0}, // L8
	{HP: 30, ATK: 5, DEF: 4, SPD: 2, SP: 1}, // L9
	{HP: 35, ATK: 5, DEF: 4, SPD: 2, SP: 1}, // L10
}
