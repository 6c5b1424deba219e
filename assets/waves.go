package assets

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed waves.yaml
var wavesYAML []byte

// WaveTrigger is one scroll-position-activated spawn.
type WaveTrigger struct {
	Scroll    int
	Formation string
	Type      FlightTypeID
	Count     int
}

// ZoneSchedule is the full flight script for one zone.
type ZoneSchedule struct {
	Length   int
	Boss     BossID
	Triggers []WaveTrigger
}

// Formation names accepted in waves.yaml.
const (
	FormationLeft   = "left"
	FormationRight  = "right"
	FormationVee    = "vee"
	FormationPincer = "pincer"
	FormationHazard = "hazard"
	FormationSwarm  = "swarm"
)

// Raw YAML shapes; converted to the typed tables above after validation.
type rawTrigger struct {
	Scroll    int    `yaml:"scroll"`
	Formation string `yaml:"formation"`
	Type      string `yaml:"type"`
	Count     int    `yaml:"count"`
}

type rawZone struct {
	Length   int          `yaml:"length"`
	Boss     string       `yaml:"boss"`
	Triggers []rawTrigger `yaml:"triggers"`
}

type rawWaves struct {
	Zones []rawZone `yaml:"zones"`
}

var flightTypeNames = map[string]FlightTypeID{
	"scout":  FlightScout,
	"drone":  FlightDrone,
	"heavy":  FlightHeavy,
	"hunter": FlightHunter,
}

var bossNames = map[string]BossID{
	"commander": BossCommander,
	"cruiser":   BossCruiser,
	"flagship":  BossFlagship,
}

var validFormations = map[string]bool{
	FormationLeft:   true,
	FormationRight:  true,
	FormationVee:    true,
	FormationPincer: true,
	FormationHazard: true,
	FormationSwarm:  true,
}

var zoneSchedules []ZoneSchedule

func init() {
	zones, err := ParseWaves(wavesYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded waves.yaml invalid: %v", err))
	}
	zoneSchedules = zones
}

// Zones returns the parsed per-zone wave schedules.
func Zones() []ZoneSchedule {
	return zoneSchedules
}

// ParseWaves decodes and validates a wave-schedule document.
func ParseWaves(data []byte) ([]ZoneSchedule, error) {
	var raw rawWaves
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse waves: %w", err)
	}
	if len(raw.Zones) != ZoneCount {
		return nil, fmt.Errorf("parse waves: expected %d zones, got %d", ZoneCount, len(raw.Zones))
	}

	zones := make([]ZoneSchedule, 0, len(raw.Zones))
	for zi, rz := range raw.Zones {
		boss, ok := bossNames[rz.Boss]
		if !ok {
			return nil, fmt.Errorf("zone %d: unknown boss %q", zi, rz.Boss)
		}
		if rz.Length <= 0 {
			return nil, fmt.Errorf("zone %d: non-positive length %d", zi, rz.Length)
		}
		z := ZoneSchedule{Length: rz.Length, Boss: boss}
		for ti, rt := range rz.Triggers {
			ft, ok := flightTypeNames[rt.Type]
			if !ok {
				return nil, fmt.Errorf("zone %d trigger %d: unknown type %q", zi, ti, rt.Type)
			}
			if !validFormations[rt.Formation] {
				return nil, fmt.Errorf("zone %d trigger %d: unknown formation %q", zi, ti, rt.Formation)
			}
			if rt.Scroll >= rz.Length {
				return nil, fmt.Errorf("zone %d trigger %d: scroll %d past zone length %d", zi, ti, rt.Scroll, rz.Length)
			}
			z.Triggers = append(z.Triggers, WaveTrigger{
				Scroll:    rt.Scroll,
				Formation: rt.Formation,
				Type:      ft,
				Count:     rt.Count,
			})
		}
		if !sort.SliceIsSorted(z.Triggers, func(a, b int) bool {
			return z.Triggers[a].Scroll < z.Triggers[b].Scroll
		}) {
			return nil, fmt.Errorf("zone %d: triggers not in ascending scroll order", zi)
		}
		zones = append(zones, z)
	}
	return zones, nil
}
