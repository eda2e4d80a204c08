package simulation

import (
	"fmt"

	"github.com/neondrift/racesim/pkg/simulation/track"
)

// grid placement at race start
const (
	gridLateralSpacing float32 = 2.5
	gridRowSpacing     float32 = 3.0
	gridBaseZ          float32 = 5.0
	startingBoost      float32 = 0.5
)

// Event is a state transition consumers may react to with effects.
type Event uint8

const (
	EventBoostStart Event = iota
	EventDriftStart
	EventWallHit
	EventCheckpoint
	EventFinish
)

var eventNames = map[Event]string{
	EventBoostStart: "boost",
	EventDriftStart: "drift",
	EventWallHit:    "wall",
	EventCheckpoint: "checkpoint",
	EventFinish:     "finish",
}

func (e Event) String() string { return eventNames[e] }

// Observer receives events as they happen inside a tick. Implementations
// must not mutate simulation state; they exist so rendering, audio and
// telemetry can live outside the core.
type Observer interface {
	RaceEvent(carIdx int, event Event)
}

func emit(obs Observer, carIdx int, event Event) {
	if obs != nil {
		obs.RaceEvent(carIdx, event)
	}
}

// Simulation is the complete per-race state. It is a plain value: copying
// it snapshots the race and assigning a copy back restores it, which is
// the whole rollback story. Never share one instance across goroutines.
type Simulation struct {
	Layout   track.Layout
	Cars     [MaxCars]Car
	CarCount int
	TickNo   uint64
}

// New compiles the course and places the field on the starting grid.
func New(course *track.Course, classes []CarClass) (*Simulation, error) {
	if len(classes) == 0 || len(classes) > MaxCars {
		return nil, fmt.Errorf("car count %d outside 1..%d", len(classes), MaxCars)
	}
	s := &Simulation{
		Layout:   track.Compile(course),
		CarCount: len(classes),
	}
	for i, class := range classes {
		car := NewCar(class)
		car.X = (float32(i) - 1.5) * gridLateralSpacing
		car.Z = gridBaseZ + float32(i)*gridRowSpacing
		car.BoostMeter = startingBoost
		s.Cars[i] = car
	}
	s.rankCars()
	return s, nil
}

// Tick advances every car by one fixed step. Inputs are consumed in slot
// order and all phases run per car before the next car starts, so the
// result depends only on prior state and this tick's samples.
func (s *Simulation) Tick(inputs *[MaxCars]Input, dt float32, obs Observer) {
	s.TickNo++
	for i := 0; i < s.CarCount; i++ {
		car := &s.Cars[i]
		stepCar(car, inputs[i], dt, obs, i)
		s.resolveCollision(car, i, obs)
		s.checkCheckpoints(car, i, obs)
	}
	s.rankCars()
}

// Snapshot returns a copy of the full race state.
func (s *Simulation) Snapshot() Simulation {
	return *s
}

// Restore replaces the race state with a previously taken snapshot.
func (s *Simulation) Restore(snap Simulation) {
	*s = snap
}
