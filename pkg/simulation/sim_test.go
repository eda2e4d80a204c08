package simulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neondrift/racesim/pkg/simulation/track"
)

type recordedEvent struct {
	carIdx int
	event  Event
}

type eventRecorder struct {
	events []recordedEvent
}

func (r *eventRecorder) RaceEvent(carIdx int, event Event) {
	r.events = append(r.events, recordedEvent{carIdx, event})
}

func TestNewPlacesCarsOnGrid(t *testing.T) {
	classes := []CarClass{ClassSpeedster, ClassMuscle, ClassRacer, ClassDrift}
	sim, err := New(track.NeonCity(), classes)
	require.NoError(t, err)
	require.Equal(t, 4, sim.CarCount)

	for i := 0; i < 4; i++ {
		car := sim.Cars[i]
		assert.Equal(t, classes[i], car.Class, "car %d", i)
		assert.InDelta(t, float64((float32(i)-1.5)*2.5), float64(car.X), 1e-5)
		assert.InDelta(t, float64(5.0+float32(i)*3.0), float64(car.Z), 1e-5)
		assert.Equal(t, float32(0), car.RotationY)
		assert.InDelta(t, 0.5, float64(car.BoostMeter), 1e-6)
		assert.NotZero(t, car.RacePosition)
	}
}

func TestNewRejectsBadCarCount(t *testing.T) {
	_, err := New(track.NeonCity(), nil)
	assert.ErrorContains(t, err, "car count")

	_, err = New(track.NeonCity(), make([]CarClass, MaxCars+1))
	assert.ErrorContains(t, err, "car count")
}

// scriptedInput derives a bounded control sample from the tick counter
// alone, so two instances replay the identical sequence.
func scriptedInput(tick int) Input {
	return Input{
		Throttle: float32(tick%60) / 59.0,
		Brake:    float32((tick/7)%2) * 0.5,
		Steer:    float32(tick%21-10) / 10.0,
		Boost:    tick%97 == 0,
	}
}

func TestTwoInstancesStayBitIdentical(t *testing.T) {
	classes := []CarClass{ClassViper, ClassTitan, ClassPhantom, ClassDrift}

	run := func() Simulation {
		sim, err := New(track.CrystalCavern(), classes)
		require.NoError(t, err)
		for tick := 0; tick < 1200; tick++ {
			var inputs [MaxCars]Input
			inputs[0] = scriptedInput(tick)
			for i := 1; i < sim.CarCount; i++ {
				inputs[i] = sim.Navigate(i)
			}
			sim.Tick(&inputs, testDt, nil)
		}
		return *sim
	}

	first := run()
	second := run()

	// full struct diff: every float must match bit for bit
	assert.Empty(t, cmp.Diff(first, second))
}

func TestSnapshotRestoreReplaysIdentically(t *testing.T) {
	sim, err := New(track.SunsetStrip(),
		[]CarClass{ClassSpeedster, ClassMuscle})
	require.NoError(t, err)

	advance := func(s *Simulation, from, ticks int) {
		for tick := from; tick < from+ticks; tick++ {
			var inputs [MaxCars]Input
			inputs[0] = scriptedInput(tick)
			inputs[1] = s.Navigate(1)
			s.Tick(&inputs, testDt, nil)
		}
	}

	advance(sim, 0, 200)
	snap := sim.Snapshot()

	advance(sim, 200, 100)
	divergent := *sim

	sim.Restore(snap)
	advance(sim, 200, 100)

	assert.Equal(t, divergent, *sim)
}

func TestRankingByProgress(t *testing.T) {
	sim := newSquareSim(t, ClassSpeedster, ClassMuscle, ClassRacer)

	sim.Cars[0].CurrentLap = 1
	sim.Cars[1].CurrentLap = 2
	sim.Cars[2].CurrentLap = 1
	sim.Cars[2].LastCheckpoint = 2

	sim.rankCars()

	assert.Equal(t, uint32(1), sim.Cars[1].RacePosition)
	assert.Equal(t, uint32(2), sim.Cars[2].RacePosition)
	assert.Equal(t, uint32(3), sim.Cars[0].RacePosition)
}

func TestRankingTieGoesToLowerIndex(t *testing.T) {
	sim := newSquareSim(t, ClassSpeedster, ClassSpeedster)
	sim.Cars[0].Z = 10
	sim.Cars[1].Z = 10

	sim.rankCars()

	assert.Equal(t, uint32(1), sim.Cars[0].RacePosition)
	assert.Equal(t, uint32(2), sim.Cars[1].RacePosition)
}

func TestProgressFormula(t *testing.T) {
	sim := newSquareSim(t) // length 60, spacing 15
	car := &sim.Cars[0]
	car.CurrentLap = 2
	car.LastCheckpoint = 3
	car.Z = 7

	assert.InDelta(t, 2*60+3*15+7, float64(sim.Progress(0)), 1e-3)
}

func TestStandingsSortedByPosition(t *testing.T) {
	sim := newSquareSim(t, ClassSpeedster, ClassMuscle, ClassRacer)
	sim.Cars[2].CurrentLap = 5
	sim.rankCars()

	standings := sim.Standings()
	require.Len(t, standings, 3)
	assert.Equal(t, 2, standings[0].CarIdx)
	assert.Equal(t, uint32(1), standings[0].Position)
	for i := 1; i < len(standings); i++ {
		assert.Greater(t, standings[i].Position, standings[i-1].Position)
	}
}

func TestTickIsTotalOverInputDomain(t *testing.T) {
	sim := newSquareSim(t)

	// hostile inputs clamp, they never fault or corrupt state
	inputs := [MaxCars]Input{{Throttle: 99, Brake: -5, Steer: 42, Boost: true}}
	for i := 0; i < 100; i++ {
		sim.Tick(&inputs, testDt, nil)
	}
	car := sim.Cars[0]
	assert.GreaterOrEqual(t, car.BoostMeter, float32(0))
	assert.LessOrEqual(t, car.BoostMeter, float32(1))
	assert.False(t, isNaN32(car.X) || isNaN32(car.Z) || isNaN32(car.RotationY))
}

func isNaN32(v float32) bool { return v != v }
