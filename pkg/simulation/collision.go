package simulation

import (
	"github.com/neondrift/racesim/pkg/simulation/mathf"
	"github.com/neondrift/racesim/pkg/simulation/track"
)

const (
	elevationBlend       float32 = 0.15
	lateralBounceDamping float32 = 0.3
	wallPushback         float32 = 0.5
	wallSpeedLoss        float32 = 0.7
	checkpointTolerance  float32 = 5.0
)

// resolveCollision keeps the car on the nearest segment's surface: blends
// elevation toward the local slope and clamps the lateral offset to the
// track edge with a bounce and a decaying pushback toward center.
//
// Nearest segment is picked by squared distance to the segment midpoint.
// Near seams the wrong neighbor can win briefly; the clamp bounds are
// close enough there that the error is not player-visible.
func (s *Simulation) resolveCollision(car *Car, carIdx int, obs Observer) {
	if s.Layout.SegmentCount == 0 {
		return
	}

	minDist := float32(3.4e38)
	nearest := 0
	for i := 0; i < s.Layout.SegmentCount; i++ {
		seg := &s.Layout.Segments[i]
		sinR := mathf.SinDeg(seg.Rotation)
		cosR := mathf.CosDeg(seg.Rotation)

		cx := seg.X + sinR*seg.Length*0.5
		cz := seg.Z + cosR*seg.Length*0.5

		dx := car.X - cx
		dz := car.Z - cz
		dist := dx*dx + dz*dz
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	seg := &s.Layout.Segments[nearest]
	sinR := mathf.SinDeg(seg.Rotation)
	cosR := mathf.CosDeg(seg.Rotation)

	relX := car.X - seg.X
	relZ := car.Z - seg.Z

	// segment-local frame: localZ runs along the segment
	localX := relX*cosR - relZ*sinR
	localZ := relX*sinR + relZ*cosR

	progress := mathf.Clamp(localZ/seg.Length, 0, 1)
	targetY := seg.Y + seg.Elevation.HeightDelta()*progress
	car.Y += (targetY - car.Y) * elevationBlend

	halfWidth := seg.Width * 0.5
	clamped := mathf.Clamp(localX, -halfWidth, halfWidth)
	if localX != clamped {
		car.X = clamped*cosR + localZ*sinR + seg.X
		car.Z = -clamped*sinR + localZ*cosR + seg.Z
		car.VelocityLateral *= -lateralBounceDamping
		car.VelocityForward *= wallSpeedLoss

		// shove back toward the centerline, world space
		push := wallPushback
		if localX > 0 {
			push = -wallPushback
		}
		car.PushbackX += push * cosR
		car.PushbackZ += -push * sinR

		emit(obs, carIdx, EventWallHit)
	}
}

// checkCheckpoints advances the car's checkpoint index when its
// longitudinal coordinate passes within tolerance of the next marker.
func (s *Simulation) checkCheckpoints(car *Car, carIdx int, obs Observer) {
	next := (car.LastCheckpoint + 1) % track.NumCheckpoints
	if mathf.Abs(car.Z-s.Layout.Checkpoints[next]) < checkpointTolerance {
		car.LastCheckpoint = next
		emit(obs, carIdx, EventCheckpoint)
	}
}
