package simulation

import (
	"github.com/neondrift/racesim/pkg/simulation/track"
)

// DefaultTargetLaps is the race distance when no option overrides it.
const DefaultTargetLaps uint32 = 3

// Session runs a race on top of the deterministic core: it routes human
// samples and navigator output to the right car slots, tracks race time,
// detects the finish, and keeps the chase cameras following.
type Session struct {
	Sim      Simulation
	Cameras  [MaxCars]Camera
	RaceTime float32
	Finished bool
	Winner   int

	targetLaps uint32
	humanCars  int
	observer   Observer
	rng        Rand
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTargetLaps sets the race distance in laps.
func WithTargetLaps(laps uint32) SessionOption {
	return func(s *Session) {
		if laps > 0 {
			s.targetLaps = laps
		}
	}
}

// WithHumanCars reserves the first n grid slots for external input
// samples; remaining slots are navigator-driven.
func WithHumanCars(n int) SessionOption {
	return func(s *Session) { s.humanCars = n }
}

// WithObserver registers an event sink for the race.
func WithObserver(obs Observer) SessionOption {
	return func(s *Session) { s.observer = obs }
}

// WithRand sets the randomness source used for camera shake.
func WithRand(r Rand) SessionOption {
	return func(s *Session) { s.rng = r }
}

// NewSession compiles the course and places the field.
func NewSession(course *track.Course, classes []CarClass, opts ...SessionOption) (*Session, error) {
	sim, err := New(course, classes)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Sim:        *sim,
		targetLaps: DefaultTargetLaps,
		Winner:     -1,
		rng:        NewSplitMix(0),
	}
	for i := range s.Cameras {
		s.Cameras[i] = NewCamera()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TargetLaps reports the configured race distance.
func (s *Session) TargetLaps() uint32 { return s.targetLaps }

// sessionObserver shakes the hit car's camera before forwarding events.
type sessionObserver struct {
	s *Session
}

func (o sessionObserver) RaceEvent(carIdx int, event Event) {
	if event == EventWallHit {
		o.s.Cameras[carIdx].AddShake(wallShake)
	}
	emit(o.s.observer, carIdx, event)
}

// Tick advances the race by one step. Samples fill the human slots in
// order; missing samples mean neutral controls, never an error.
func (s *Session) Tick(dt float32, samples []Input) {
	if s.Finished {
		return
	}
	s.RaceTime += dt

	var inputs [MaxCars]Input
	for i := 0; i < s.Sim.CarCount; i++ {
		if i < s.humanCars {
			if i < len(samples) {
				inputs[i] = samples[i]
			}
			continue
		}
		inputs[i] = s.Sim.Navigate(i)
	}

	s.Sim.Tick(&inputs, dt, sessionObserver{s})

	for i := 0; i < s.Sim.CarCount; i++ {
		s.Cameras[i].Follow(&s.Sim.Cars[i])
		s.Cameras[i].UpdateShake(s.rng.Uint32())
	}

	for i := 0; i < s.Sim.CarCount; i++ {
		if s.Sim.Cars[i].CurrentLap >= s.targetLaps {
			s.Finished = true
			s.Winner = i
			emit(s.observer, i, EventFinish)
			break
		}
	}
}
