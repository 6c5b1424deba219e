package assets

import "testing"

func TestEmbeddedWavesValid(t *testing.T) {
	zones := Zones()
	if len(zones) != ZoneCount {
		t.Fatalf("Zones() = %d schedules, want %d", len(zones), ZoneCount)
	}
	for zi, z := range zones {
		if z.Length <= 0 {
			t.Errorf("zone %d: length %d", zi, z.Length)
		}
		if len(z.Triggers) == 0 {
			t.Errorf("zone %d: no triggers", zi)
		}
		prev := -1
		for ti, tr := range z.Triggers {
			if tr.Scroll <= prev {
				t.Errorf("zone %d trigger %d: scroll %d not ascending", zi, ti, tr.Scroll)
			}
			prev = tr.Scroll
		}
	}
	// Each zone must end on its own boss.
	want := []BossID{BossCommander, BossCruiser, BossFlagship}
	for zi, z := range zones {
		if z.Boss != want[zi] {
			t.Errorf("zone %d boss = %v, want %v", zi, z.Boss, want[zi])
		}
	}
}

func TestParseWavesRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"wrong zone count", "zones:\n  - {length: 100, boss: commander}\n"},
		{"unknown boss", `zones:
  - {length: 100, boss: commander}
  - {length: 100, boss: cruiser}
  - {length: 100, boss: mothership}
`},
		{"unknown type", `zones:
  - length: 100
    boss: commander
    triggers:
      - {scroll: 10, formation: left, type: bomber, count: 1}
  - {length: 100, boss: cruiser}
  - {length: 100, boss: flagship}
`},
		{"unsorted triggers", `zones:
  - length: 100
    boss: commander
    triggers:
      - {scroll: 50, formation: left, type: scout, count: 1}
      - {scroll: 10, formation: right, type: scout, count: 1}
  - {length: 100, boss: cruiser}
  - {length: 100, boss: flagship}
`},
		{"trigger past zone end", `zones:
  - length: 100
    boss: commander
    triggers:
      - {scroll: 100, formation: left, type: scout, count: 1}
  - {length: 100, boss: cruiser}
  - {length: 100, boss: flagship}
`},
	}
	for _, tc := range cases {
		if _, err := ParseWaves([]byte(tc.doc)); err == nil {
			t.Errorf("%s: ParseWaves accepted invalid document", tc.name)
		}
	}
}
