package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neondrift/racesim/pkg/simulation/mathf"
	"github.com/neondrift/racesim/pkg/simulation/track"
)

func squareCourse() *track.Course {
	return &track.Course{
		Name:       "square",
		BaseLength: track.DefaultBaseLength,
		Defs: []track.SegmentDef{
			{Turn: track.Tight90R},
			{Turn: track.Tight90R},
			{Turn: track.Tight90R},
			{Turn: track.Tight90R},
		},
	}
}

func newSquareSim(t *testing.T, classes ...CarClass) *Simulation {
	t.Helper()
	if len(classes) == 0 {
		classes = []CarClass{ClassSpeedster}
	}
	sim, err := New(squareCourse(), classes)
	require.NoError(t, err)
	return sim
}

func TestLateralClampAndBounce(t *testing.T) {
	sim := newSquareSim(t)
	car := &sim.Cars[0]
	car.X = 7 // first segment runs along +Z at x=0, width 10
	car.Z = 7
	car.VelocityLateral = 2
	car.VelocityForward = 10

	sim.resolveCollision(car, 0, nil)

	assert.InDelta(t, 5.0, float64(car.X), 1e-3)
	assert.InDelta(t, 7.0, float64(car.Z), 1e-3)

	// lateral velocity inverts with damping, it does not zero out
	assert.InDelta(t, -0.6, float64(car.VelocityLateral), 1e-4)
	assert.InDelta(t, 7.0, float64(car.VelocityForward), 1e-4)

	// pushback points back toward the centerline
	assert.InDelta(t, -0.5, float64(car.PushbackX), 1e-3)
	assert.InDelta(t, 0.0, float64(car.PushbackZ), 1e-3)
}

func TestLateralClampInvariantUnderDriving(t *testing.T) {
	sim := newSquareSim(t)
	car := &sim.Cars[0]
	car.X = 0
	car.Z = 7

	// steer hard into the wall for many ticks; after every tick the car
	// must sit within half a width of its nearest segment's centerline
	in := [MaxCars]Input{{Throttle: 1, Steer: 1}}
	for i := 0; i < 300; i++ {
		sim.Tick(&in, testDt, nil)

		seg := nearestSegment(sim, car)
		sinR := mathf.SinDeg(seg.Rotation)
		cosR := mathf.CosDeg(seg.Rotation)
		localX := (car.X-seg.X)*cosR - (car.Z-seg.Z)*sinR
		assert.LessOrEqual(t, mathf.Abs(localX), seg.Width*0.5+1e-3,
			"tick %d", i)
	}
}

func nearestSegment(sim *Simulation, car *Car) *track.Segment {
	best := 0
	minDist := float32(1e30)
	for i := 0; i < sim.Layout.SegmentCount; i++ {
		seg := &sim.Layout.Segments[i]
		cx := seg.X + mathf.SinDeg(seg.Rotation)*seg.Length*0.5
		cz := seg.Z + mathf.CosDeg(seg.Rotation)*seg.Length*0.5
		dx := car.X - cx
		dz := car.Z - cz
		if d := dx*dx + dz*dz; d < minDist {
			minDist = d
			best = i
		}
	}
	return &sim.Layout.Segments[best]
}

func TestElevationBlendsTowardSlope(t *testing.T) {
	course := &track.Course{
		Name:       "one-hill",
		BaseLength: track.DefaultBaseLength,
		Defs:       []track.SegmentDef{{Elevation: track.SteepUp}},
	}
	sim, err := New(course, []CarClass{ClassSpeedster})
	require.NoError(t, err)

	car := &sim.Cars[0]
	car.X = 0
	car.Z = 5 // halfway up a +4 climb, surface height 2
	car.Y = 0

	sim.resolveCollision(car, 0, nil)
	assert.InDelta(t, 2.0*0.15, float64(car.Y), 1e-3)

	// repeated resolution converges on the surface height
	for i := 0; i < 200; i++ {
		sim.resolveCollision(car, 0, nil)
	}
	assert.InDelta(t, 2.0, float64(car.Y), 1e-2)
}

func TestCheckpointAdvancesInOrder(t *testing.T) {
	sim := newSquareSim(t) // length 60, checkpoints at 0/15/30/45
	car := &sim.Cars[0]

	car.Z = 14
	sim.checkCheckpoints(car, 0, nil)
	assert.Equal(t, 1, car.LastCheckpoint)

	// the next expected marker is 30; being near 45 does not skip ahead
	car.Z = 44
	sim.checkCheckpoints(car, 0, nil)
	assert.Equal(t, 1, car.LastCheckpoint)

	car.Z = 31
	sim.checkCheckpoints(car, 0, nil)
	assert.Equal(t, 2, car.LastCheckpoint)
}

func TestCheckpointToleranceWindow(t *testing.T) {
	sim := newSquareSim(t)
	car := &sim.Cars[0]

	car.Z = 20.1 // more than 5 away from checkpoint 1 at z=15
	sim.checkCheckpoints(car, 0, nil)
	assert.Equal(t, 0, car.LastCheckpoint)

	car.Z = 19.9
	sim.checkCheckpoints(car, 0, nil)
	assert.Equal(t, 1, car.LastCheckpoint)
}

func TestWallHitEmitsEvent(t *testing.T) {
	sim := newSquareSim(t)
	rec := &eventRecorder{}
	car := &sim.Cars[0]
	car.X = 9
	car.Z = 7

	sim.resolveCollision(car, 0, rec)
	require.Len(t, rec.events, 1)
	assert.Equal(t, EventWallHit, rec.events[0].event)
	assert.Equal(t, 0, rec.events[0].carIdx)
}
