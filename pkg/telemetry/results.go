package telemetry

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/neondrift/racesim/pkg/simulation"
)

// ResultEntry is one car's final classification.
type ResultEntry struct {
	Position   uint32  `json:"position"`
	CarIdx     int     `json:"carIdx"`
	Class      string  `json:"class"`
	Laps       uint32  `json:"laps"`
	Checkpoint int     `json:"checkpoint"`
	Progress   float32 `json:"progress"`
}

// RaceResult is the final classification of a session.
type RaceResult struct {
	Course   string        `json:"course"`
	Laps     uint32        `json:"laps"`
	RaceTime float32       `json:"raceTime"`
	Ticks    uint64        `json:"ticks"`
	Winner   int           `json:"winner"`
	Entries  []ResultEntry `json:"entries"`
}

// BuildResult collects the session's standings into a result document.
func BuildResult(s *simulation.Session) RaceResult {
	return RaceResult{
		Course:   s.Sim.Layout.Name,
		Laps:     s.TargetLaps(),
		RaceTime: s.RaceTime,
		Ticks:    s.Sim.TickNo,
		Winner:   s.Winner,
		Entries: lo.Map(s.Sim.Standings(),
			func(st simulation.Standing, _ int) ResultEntry {
				return ResultEntry{
					Position:   st.Position,
					CarIdx:     st.CarIdx,
					Class:      st.Class.String(),
					Laps:       st.Lap,
					Checkpoint: st.Checkpoint,
					Progress:   st.Progress,
				}
			}),
	}
}

// WriteResultFile writes the classification as indented JSON.
func WriteResultFile(path string, result RaceResult) error {
	data := oj.JSON(result, 2)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing result file: %w", err)
	}
	return nil
}
