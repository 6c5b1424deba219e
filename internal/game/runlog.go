package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// RunLog records one finished run as a single JSON line.
type RunLog struct {
	EndedAt     time.Time `json:"ended_at"`
	Outcome     string    `json:"outcome"`
	Level       int       `json:"level"`
	Zone        int       `json:"zone"`
	Score       int       `json:"score"`
	HighScore   int       `json:"high_score"`
	Kills       int       `json:"kills"`
	Defeats     int       `json:"defeats"`
	MaxCombo    int       `json:"max_combo"`
	PlaySeconds int       `json:"play_seconds"`
}

// writeRunLog appends the run to runs.jsonl. Errors are silently
// discarded so a disk problem never crashes the game.
func (s *Session) writeRunLog(outcome string) {
	s.log.EndedAt = time.Now()
	s.log.Outcome = outcome
	s.log.Level = s.Stats.Level
	s.log.Zone = s.Stats.Zone
	s.log.Score = s.Stats.Score
	s.log.HighScore = s.Stats.HighScore
	s.log.Kills = s.Stats.Kills
	s.log.MaxCombo = s.Stats.MaxCombo
	s.log.PlaySeconds = s.Stats.PlaySeconds

	dir, err := runLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(s.log)
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck — best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir follows the XDG Base Directory spec:
// $XDG_DATA_HOME/vexdrift, defaulting to ~/.local/share/vexdrift.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vexdrift"), nil
}
