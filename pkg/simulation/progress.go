package simulation

import (
	"slices"
)

// Progress collapses a car's race state into one scalar: whole laps, then
// checkpoint intervals, then the raw longitudinal coordinate as the
// fine-grained tie-break within an interval.
func (s *Simulation) Progress(carIdx int) float32 {
	car := &s.Cars[carIdx]
	return float32(car.CurrentLap)*s.Layout.Length +
		float32(car.LastCheckpoint)*s.Layout.CheckpointSpacing() +
		car.Z
}

// rankCars assigns RacePosition 1..N by descending progress. The sort is
// stable, so equal progress keeps array order and the lower index wins.
// That is fine for a position readout; scoring never reads it.
func (s *Simulation) rankCars() {
	var order [MaxCars]int
	for i := 0; i < s.CarCount; i++ {
		order[i] = i
	}
	idx := order[:s.CarCount]

	slices.SortStableFunc(idx, func(a, b int) int {
		pa, pb := s.Progress(a), s.Progress(b)
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return 0
		}
	})

	for pos, carIdx := range idx {
		s.Cars[carIdx].RacePosition = uint32(pos + 1)
	}
}

// Standings reports the current ranking, best first.
type Standing struct {
	CarIdx     int
	Class      CarClass
	Position   uint32
	Lap        uint32
	Checkpoint int
	Progress   float32
}

// Standings returns a snapshot of the ranking sorted by position.
func (s *Simulation) Standings() []Standing {
	out := make([]Standing, 0, s.CarCount)
	for i := 0; i < s.CarCount; i++ {
		car := &s.Cars[i]
		out = append(out, Standing{
			CarIdx:     i,
			Class:      car.Class,
			Position:   car.RacePosition,
			Lap:        car.CurrentLap,
			Checkpoint: car.LastCheckpoint,
			Progress:   s.Progress(i),
		})
	}
	slices.SortStableFunc(out, func(a, b Standing) int {
		return int(a.Position) - int(b.Position)
	})
	return out
}
