// Package simulation advances vehicle physics, AI navigation, collision
// containment and race-progress bookkeeping one fixed tick at a time. The
// whole per-race state lives in a single value-copyable struct so rollback
// is "restore a saved copy", never a global reset.
package simulation

import "fmt"

// MaxCars is the fixed grid size; every per-race array is sized by it.
const MaxCars = 4

// Tunables shared by all instances. Changing any of these breaks replay
// parity with existing recordings.
const (
	DriftThreshold  float32 = 0.3
	BoostCost       float32 = 0.5
	BoostMultiplier float32 = 1.5
	BoostDuration   uint32  = 120 // ticks

	coastFriction     float32 = 0.98
	brakeFactor       float32 = 0.7
	reverseAccelMult  float32 = 2.0
	driftSpeedGate    float32 = 0.4
	driftLateralRate  float32 = 15.0
	driftYawRate      float32 = 120.0
	driftSpeedBleed   float32 = 0.97
	driftBoostRegen   float32 = 0.015
	steerYawRate      float32 = 90.0
	lateralDecay      float32 = 0.85
	pushbackDecay     float32 = 0.5
	reverseSpeedLimit float32 = 0.5 // fraction of max speed when backing up
)

// CarClass selects a fixed stat profile; the set is closed.
type CarClass uint8

const (
	ClassSpeedster CarClass = iota
	ClassMuscle
	ClassRacer
	ClassDrift
	ClassPhantom
	ClassTitan
	ClassViper
)

// ClassStats are the per-class performance constants.
type ClassStats struct {
	MaxSpeed     float32
	Acceleration float32
	Handling     float32
	DriftFactor  float32
}

// Stats returns the stat profile for the class.
func (c CarClass) Stats() ClassStats {
	switch c {
	case ClassMuscle:
		return ClassStats{MaxSpeed: 33.0, Acceleration: 12.5, Handling: 0.85, DriftFactor: 0.8}
	case ClassRacer:
		return ClassStats{MaxSpeed: 28.5, Acceleration: 17.0, Handling: 0.95, DriftFactor: 0.9}
	case ClassDrift:
		return ClassStats{MaxSpeed: 27.0, Acceleration: 15.5, Handling: 1.2, DriftFactor: 1.0}
	case ClassPhantom:
		return ClassStats{MaxSpeed: 31.5, Acceleration: 14.5, Handling: 0.9, DriftFactor: 0.88}
	case ClassTitan:
		return ClassStats{MaxSpeed: 25.5, Acceleration: 13.5, Handling: 0.75, DriftFactor: 0.7}
	case ClassViper:
		return ClassStats{MaxSpeed: 36.0, Acceleration: 11.5, Handling: 1.05, DriftFactor: 0.95}
	default: // Speedster
		return ClassStats{MaxSpeed: 28.5, Acceleration: 14.0, Handling: 1.0, DriftFactor: 0.85}
	}
}

var classNames = map[CarClass]string{
	ClassSpeedster: "speedster",
	ClassMuscle:    "muscle",
	ClassRacer:     "racer",
	ClassDrift:     "drift",
	ClassPhantom:   "phantom",
	ClassTitan:     "titan",
	ClassViper:     "viper",
}

func (c CarClass) String() string { return classNames[c] }

// ParseCarClass resolves a class name used on the CLI.
func ParseCarClass(s string) (CarClass, error) {
	for k, v := range classNames {
		if v == s {
			return k, nil
		}
	}
	return ClassSpeedster, fmt.Errorf("unknown car class %q", s)
}

// Car is the mutable per-participant state. Each car is exclusively owned
// by its slot in the per-race array; no car outlives a race.
type Car struct {
	// position & orientation
	X, Y, Z   float32
	RotationY float32 // heading in degrees

	// velocity
	VelocityForward float32
	VelocityLateral float32
	AngularVelocity float32

	// boost & drift
	BoostMeter float32 // [0,1]
	Boosting   bool
	BoostTimer uint32
	Drifting   bool

	// class stats, copied at class-selection time
	Class        CarClass
	MaxSpeed     float32
	Acceleration float32
	Handling     float32
	DriftFactor  float32

	// race state
	CurrentLap      uint32
	LastCheckpoint  int
	RacePosition    uint32
	CurrentWaypoint int

	// accumulated collision pushback, decayed each tick
	PushbackX float32
	PushbackZ float32
}

// NewCar creates a car of the given class with its stats applied.
func NewCar(class CarClass) Car {
	stats := class.Stats()
	return Car{
		Class:        class,
		MaxSpeed:     stats.MaxSpeed,
		Acceleration: stats.Acceleration,
		Handling:     stats.Handling,
		DriftFactor:  stats.DriftFactor,
		RacePosition: 1,
	}
}

// Input is one control sample, from a human controller or the navigator.
type Input struct {
	Throttle float32 // [0,1]
	Brake    float32 // [0,1]
	Steer    float32 // [-1,1], positive steers right
	Boost    bool

	// SpeedLimit caps max speed to a fraction of the class maximum; zero
	// means unlimited. Set by the navigator to slow AI cars for corners.
	SpeedLimit float32
}

// clampInput defensively limits a sample to its legal range.
func clampInput(in Input) Input {
	if in.Throttle < 0 {
		in.Throttle = 0
	} else if in.Throttle > 1 {
		in.Throttle = 1
	}
	if in.Brake < 0 {
		in.Brake = 0
	} else if in.Brake > 1 {
		in.Brake = 1
	}
	if in.Steer < -1 {
		in.Steer = -1
	} else if in.Steer > 1 {
		in.Steer = 1
	}
	return in
}
