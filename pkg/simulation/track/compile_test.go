package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func squareCourse() *Course {
	return &Course{
		Name:       "square",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			turn(Tight90R),
			turn(Tight90R),
			turn(Tight90R),
			turn(Tight90R),
		},
	}
}

func TestSquareCourseCloses(t *testing.T) {
	c := squareCourse()
	assert.InDelta(t, 360.0, float64(c.TurnSum()), 0.001)
	assert.True(t, c.Closed())

	layout := Compile(c)
	assert.Equal(t, 4, layout.SegmentCount)
	assert.Equal(t, 4, layout.WaypointCount)

	// 90-degree turns carry the 1.5 length multiplier
	assert.InDelta(t, 60.0, float64(layout.Length), 0.001)

	// four evenly spaced checkpoints
	spacing := layout.CheckpointSpacing()
	assert.InDelta(t, 15.0, float64(spacing), 0.001)
	for i := 0; i < NumCheckpoints; i++ {
		assert.InDelta(t, float64(i)*float64(spacing),
			float64(layout.Checkpoints[i]), 0.001)
	}

	// the cursor must return to the origin: advance past the last segment
	last := layout.Segments[3]
	endX := last.X + sinDegApprox(last.Rotation)*last.Length
	endZ := last.Z + cosDegApprox(last.Rotation)*last.Length
	assert.InDelta(t, 0.0, float64(endX), 0.1)
	assert.InDelta(t, 0.0, float64(endZ), 0.1)
}

// local helpers so the test does not depend on compile internals
func sinDegApprox(deg float32) float32 {
	switch deg {
	case 0:
		return 0
	case 90:
		return 1
	case 180:
		return 0
	case 270:
		return -1
	}
	return 0
}

func cosDegApprox(deg float32) float32 {
	switch deg {
	case 0:
		return 1
	case 90:
		return 0
	case 180:
		return -1
	case 270:
		return 0
	}
	return 0
}

func TestCompileCountsMatchDescriptors(t *testing.T) {
	for _, c := range Courses() {
		layout := Compile(c)
		assert.Equal(t, len(c.Defs), layout.SegmentCount, c.Name)
		assert.Equal(t, layout.SegmentCount, layout.WaypointCount, c.Name)
		assert.Greater(t, layout.Length, float32(0), c.Name)
	}
}

func TestCatalogCoursesClose(t *testing.T) {
	for _, c := range Courses() {
		assert.True(t, c.Closed(), "course %s: turn sum %v", c.Name, c.TurnSum())
		assert.LessOrEqual(t, len(c.Defs), MaxSegments, c.Name)
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	for _, c := range Courses() {
		first := Compile(c)
		second := Compile(c)
		assert.Equal(t, first, second, c.Name)
	}
}

func TestCompileTruncatesAtCapacity(t *testing.T) {
	defs := make([]SegmentDef, MaxSegments+6)
	c := &Course{Name: "oversized", Defs: defs}
	layout := Compile(c)
	assert.Equal(t, MaxSegments, layout.SegmentCount)
	assert.Equal(t, MaxWaypoints, layout.WaypointCount)
}

func TestTurnLengthMultipliers(t *testing.T) {
	tests := []struct {
		turn TurnAngle
		want float32
	}{
		{Straight, 1.0},
		{Gentle15L, 1.0},
		{Standard45R, 1.0},
		{Sharp60L, 1.2},
		{Tight90R, 1.5},
		{Hairpin180L, 2.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.turn.LengthMult(), tt.turn.String())
	}
}

func TestSegmentRoll(t *testing.T) {
	right := Segment{Turn: Medium30R, Banking: BankMedium}
	left := Segment{Turn: Medium30L, Banking: BankMedium}
	none := Segment{Turn: Straight, Banking: BankHeavy}
	assert.Equal(t, float32(20), right.Roll())
	assert.Equal(t, float32(-20), left.Roll())
	assert.Equal(t, float32(0), none.Roll())
}

func TestWaypointAtSegmentMidpoint(t *testing.T) {
	c := &Course{
		Name:       "one-hill",
		BaseLength: DefaultBaseLength,
		Defs:       []SegmentDef{hill(SteepUp)},
	}
	layout := Compile(c)
	wp := layout.Waypoints[0]
	assert.InDelta(t, 0.0, float64(wp.X), 0.001)
	assert.InDelta(t, 5.0, float64(wp.Z), 0.001)
	// half the +4 height delta
	assert.InDelta(t, 2.0, float64(wp.Y), 0.001)
}
