// Package save implements the binary save format: a fixed 62-byte record
// with magic, version, and a CRC-8 checksum over the payload. Decoding
// validates everything before any state is restored, so a corrupt file
// can never half-apply.
package save

import (
	"errors"

	"vexdrift/assets"
	"vexdrift/internal/item"
	"vexdrift/internal/rpg"
)

// Header constants. The magic spells "VEXD" as two little-endian words.
const (
	Magic1  = 0x5645
	Magic2  = 0x5844
	Version = 5
)

// Size is the total record length in bytes.
const Size = 62

// payloadOffset is where the checksummed region begins.
const payloadOffset = 8

// Decode failure modes.
var (
	ErrTooShort    = errors.New("save: record too short")
	ErrBadMagic    = errors.New("save: bad magic")
	ErrBadVersion  = errors.New("save: unsupported version")
	ErrBadChecksum = errors.New("save: checksum mismatch")
	ErrBadLevel    = errors.New("save: level out of range")
)

// Data is the decoded save payload.
type Data struct {
	Level int
	XP    int

	MaxHP, HP     int
	ATK, DEF, SPD int
	MaxSP, SP     int

	Credits int
	Kills   int

	Items [item.Slots]item.Slot

	Zone         int
	ZonesCleared int
	StoryFlags   uint16
	PlaySeconds  int

	WeaponKills [3]int
	HighScore   int
	MaxCombo    int
	ZoneRanks   [assets.ZoneCount]int
	WinStreak   int
}

// CRC8 computes the checksum used by the save format: polynomial 0x31,
// seed 0xFF.
func CRC8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func putU16(b []byte, off int, v int) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func getU16(b []byte, off int) int {
	return int(b[off]) | int(b[off+1])<<8
}

func getS16(b []byte, off int) int {
	return int(int16(uint16(b[off]) | uint16(b[off+1])<<8))
}

// Encode serializes d, computing the checksum over the payload.
func Encode(d *Data) []byte {
	b := make([]byte, Size)
	putU16(b, 0, Magic1)
	putU16(b, 2, Magic2)
	b[4] = Version
	b[5] = 0 // reserved

	b[8] = byte(d.Level)
	putU16(b, 9, d.XP)
	putU16(b, 11, d.MaxHP)
	putU16(b, 13, d.HP)
	putU16(b, 15, d.ATK)
	putU16(b, 17, d.DEF)
	putU16(b, 19, d.SPD)
	b[21] = byte(d.MaxSP)
	b[22] = byte(d.SP)
	putU16(b, 23, d.Credits)
	putU16(b, 25, d.Kills)
	for i := 0; i < item.Slots; i++ {
		b[27+i] = byte(d.Items[i].ID)
		b[35+i] = byte(d.Items[i].Qty)
	}
	b[43] = byte(d.Zone)
	b[44] = byte(d.ZonesCleared)
	putU16(b, 45, int(d.StoryFlags))
	putU16(b, 47, d.PlaySeconds)
	for i := 0; i < 3; i++ {
		putU16(b, 49+i*2, d.WeaponKills[i])
	}
	putU16(b, 55, d.HighScore)
	b[57] = byte(d.MaxCombo)
	for i := 0; i < assets.ZoneCount; i++ {
		b[58+i] = byte(d.ZoneRanks[i])
	}
	b[61] = byte(d.WinStreak)

	putU16(b, 6, int(CRC8(b[payloadOffset:])))
	return b
}

// Decode validates and deserializes a save record. Validation runs in
// full before any field is interpreted: short record, magic, version,
// checksum, then the level range. Recoverable oddities (HP over max,
// unknown item ids, out-of-range zone) are clamped rather than rejected.
func Decode(raw []byte) (*Data, error) {
	if len(raw) < Size {
		return nil, ErrTooShort
	}
	if getU16(raw, 0) != Magic1 || getU16(raw, 2) != Magic2 {
		return nil, ErrBadMagic
	}
	if raw[4] != Version {
		return nil, ErrBadVersion
	}
	if getU16(raw, 6) != int(CRC8(raw[payloadOffset:Size])) {
		return nil, ErrBadChecksum
	}
	level := int(raw[8])
	if level < 1 || level > assets.MaxLevel {
		return nil, ErrBadLevel
	}

	d := &Data{
		Level:        level,
		XP:           getU16(raw, 9),
		MaxHP:        getS16(raw, 11),
		HP:           getS16(raw, 13),
		ATK:          getS16(raw, 15),
		DEF:          getS16(raw, 17),
		SPD:          getS16(raw, 19),
		MaxSP:        int(raw[21]),
		SP:           int(raw[22]),
		Credits:      getU16(raw, 23),
		Kills:        getU16(raw, 25),
		Zone:         int(raw[43]),
		ZonesCleared: int(raw[44]),
		StoryFlags:   uint16(getU16(raw, 45)),
		PlaySeconds:  getU16(raw, 47),
		HighScore:    getU16(raw, 55),
		MaxCombo:     int(raw[57]),
	}
	for i := 0; i < 3; i++ {
		d.WeaponKills[i] = getU16(raw, 49+i*2)
	}
	for i := 0; i < assets.ZoneCount; i++ {
		d.ZoneRanks[i] = int(raw[58+i])
	}
	d.WinStreak = int(raw[61])

	// Range clamps on the validated copy.
	if d.HP > d.MaxHP {
		d.HP = d.MaxHP
	}
	if d.HP < 0 {
		d.HP = 0
	}
	if d.SP > d.MaxSP {
		d.SP = d.MaxSP
	}
	for i := 0; i < item.Slots; i++ {
		id := assets.ItemID(raw[27+i])
		qty := int(raw[35+i])
		if id <= assets.ItemNone || id >= assets.ItemCount || qty == 0 {
			continue // slot stays empty
		}
		if qty > item.MaxStack {
			qty = item.MaxStack
		}
		d.Items[i] = item.Slot{ID: id, Qty: qty}
	}
	if d.Zone < 0 || d.Zone >= assets.ZoneCount {
		d.Zone = 0
	}
	if d.WinStreak > 5 {
		d.WinStreak = 5
	}
	return d, nil
}

// Capture snapshots the live game into a save payload.
func Capture(s *rpg.Stats, inv *item.Inventory) *Data {
	d := &Data{
		Level: s.Level, XP: s.XP,
		MaxHP: s.MaxHP, HP: s.HP,
		ATK: s.ATK, DEF: s.DEF, SPD: s.SPD,
		MaxSP: s.MaxSP, SP: s.SP,
		Credits: s.Credits, Kills: s.Kills,
		Zone: s.Zone, ZonesCleared: s.ZonesCleared,
		StoryFlags: s.StoryFlags, PlaySeconds: s.PlaySeconds,
		HighScore: s.HighScore, MaxCombo: s.MaxCombo,
		WinStreak: s.WinStreak,
	}
	d.WeaponKills = s.WeaponKills
	d.ZoneRanks = s.ZoneRanks
	for i := 0; i < item.Slots; i++ {
		d.Items[i] = inv.At(i)
	}
	return d
}

// Apply restores a decoded payload into the live game. The drop pity
// counter resets so a reload never inherits a stale streak.
func (d *Data) Apply(s *rpg.Stats, inv *item.Inventory, drops *item.DropRoller) {
	s.Level = d.Level
	s.XP = d.XP
	s.MaxHP, s.HP = d.MaxHP, d.HP
	s.ATK, s.DEF, s.SPD = d.ATK, d.DEF, d.SPD
	s.MaxSP, s.SP = d.MaxSP, d.SP
	s.Credits, s.Kills = d.Credits, d.Kills
	s.Zone, s.ZonesCleared = d.Zone, d.ZonesCleared
	s.StoryFlags = d.StoryFlags
	s.PlaySeconds = d.PlaySeconds
	s.HighScore = d.HighScore
	s.MaxCombo = d.MaxCombo
	s.WeaponKills = d.WeaponKills
	s.ZoneRanks = d.ZoneRanks
	s.WinStreak = d.WinStreak
	s.DefeatStreak = 0
	s.ResetSPRegen()

	inv.Clear()
	for i := 0; i < item.Slots; i++ {
		if d.Items[i].ID != assets.ItemNone {
			inv.Add(d.Items[i].ID, d.Items[i].Qty)
		}
	}
	if drops != nil {
		drops.Reset()
	}
}
