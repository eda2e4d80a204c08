package simulation

import (
	"github.com/neondrift/racesim/pkg/simulation/mathf"
)

const (
	waypointArrival float32 = 8.0
	steerDivisor    float32 = 45.0
	aiThrottle      float32 = 0.85
	aiSpeedCap      float32 = 0.9
	aiTurnSlowdown  float32 = 0.3
)

// Navigate produces the control sample for an AI-driven car. It advances
// the waypoint index on arrival, counts the lap on wrap, and turns the
// heading error into a steering value that goes through the same dynamics
// path as a human stick sample.
func (s *Simulation) Navigate(carIdx int) Input {
	car := &s.Cars[carIdx]

	if s.Layout.WaypointCount == 0 {
		// no route: cruise straight ahead at reduced speed
		return Input{Throttle: aiThrottle, SpeedLimit: aiSpeedCap}
	}

	target := s.Layout.Waypoints[car.CurrentWaypoint]
	dx := target.X - car.X
	dz := target.Z - car.Z
	dist := mathf.Hypot(dx, dz)

	if dist < waypointArrival {
		car.CurrentWaypoint = (car.CurrentWaypoint + 1) % s.Layout.WaypointCount
		if car.CurrentWaypoint == 0 {
			car.CurrentLap++
		}
		target = s.Layout.Waypoints[car.CurrentWaypoint]
		dx = target.X - car.X
		dz = target.Z - car.Z
	}

	// forward is -Z at heading 0, so the bearing negates both deltas
	bearing := mathf.RadToDeg(mathf.Atan2(-dx, -dz))
	angleErr := mathf.NormalizeSignedDeg(bearing - car.RotationY)

	steer := mathf.Clamp(angleErr/steerDivisor, -1, 1)

	// cap speed harder the sharper the required turn
	limit := aiSpeedCap * (1 - mathf.Abs(steer)*aiTurnSlowdown)

	return Input{
		Throttle:   aiThrottle,
		Steer:      steer,
		SpeedLimit: limit,
	}
}
