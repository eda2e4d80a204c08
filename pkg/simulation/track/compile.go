package track

import (
	"github.com/neondrift/racesim/log"
	"github.com/neondrift/racesim/pkg/simulation/mathf"
)

// Course is a declarative course description before compilation.
type Course struct {
	Name       string
	BaseLength float32
	Width      float32
	Defs       []SegmentDef
}

// Layout is a compiled course: fixed-capacity arrays with explicit counts so
// the whole value can be copied for snapshots.
type Layout struct {
	Name string

	Segments     [MaxSegments]Segment
	SegmentCount int

	Waypoints     [MaxWaypoints]Waypoint
	WaypointCount int

	// Checkpoints are positions along the cumulative longitudinal axis,
	// evenly spaced by Length/NumCheckpoints.
	Checkpoints [NumCheckpoints]float32

	Length float32
}

// TurnSum returns the signed sum of all turn angles in degrees.
func (c *Course) TurnSum() float32 {
	var total float32
	for _, d := range c.Defs {
		total += d.Turn.Degrees()
	}
	return total
}

// Closed reports whether the turn sum is 0 modulo 360 within tolerance.
// A slightly open loop is a content bug, not a runtime hazard, so callers
// treat a false result as advisory.
func (c *Course) Closed() bool {
	r := mathf.Abs(c.TurnSum())
	for r >= 360 {
		r -= 360
	}
	return r < 0.1 || r > 359.9
}

// Compile walks the descriptor list with a running cursor (position,
// heading) and produces the absolute-space layout. It never fails:
// descriptor lists beyond capacity truncate silently and closure violations
// only emit a warning.
func Compile(c *Course) Layout {
	logger := log.Default().Named("sim.track")

	if !c.Closed() {
		logger.Warn("course does not close to 0 mod 360 degrees",
			log.String("course", c.Name),
			log.Float32("turnSum", c.TurnSum()))
	}

	baseLen := c.BaseLength
	if baseLen <= 0 {
		baseLen = DefaultBaseLength
	}
	width := c.Width
	if width <= 0 {
		width = DefaultWidth
	}

	layout := Layout{Name: c.Name}

	var curX, curY, curZ, curRot float32
	for i, def := range c.Defs {
		if i >= MaxSegments {
			logger.Debug("descriptor list truncated at capacity",
				log.String("course", c.Name),
				log.Int("dropped", len(c.Defs)-MaxSegments))
			break
		}

		segLen := baseLen * def.Turn.LengthMult()

		layout.Segments[i] = Segment{
			X:         curX,
			Y:         curY,
			Z:         curZ,
			Rotation:  curRot,
			Turn:      def.Turn,
			Elevation: def.Elevation,
			Banking:   def.Banking,
			Style:     def.Style,
			Width:     width,
			Length:    segLen,
		}
		layout.SegmentCount = i + 1

		sinR := mathf.SinDeg(curRot)
		cosR := mathf.CosDeg(curRot)

		// waypoint at the heading-projected segment midpoint, elevation
		// interpolated to half the height delta
		if layout.WaypointCount < MaxWaypoints {
			layout.Waypoints[layout.WaypointCount] = Waypoint{
				X: curX + sinR*segLen*0.5,
				Y: curY + def.Elevation.HeightDelta()*0.5,
				Z: curZ + cosR*segLen*0.5,
			}
			layout.WaypointCount++
		}

		// advance the cursor
		curX += sinR * segLen
		curZ += cosR * segLen
		curY += def.Elevation.HeightDelta()
		curRot = mathf.NormalizeDeg(curRot + def.Turn.Degrees())
	}

	for i := 0; i < layout.SegmentCount; i++ {
		layout.Length += layout.Segments[i].Length
	}

	spacing := layout.Length / NumCheckpoints
	for i := 0; i < NumCheckpoints; i++ {
		layout.Checkpoints[i] = float32(i) * spacing
	}

	return layout
}

// CheckpointSpacing returns the longitudinal distance between checkpoints.
func (l *Layout) CheckpointSpacing() float32 {
	return l.Length / NumCheckpoints
}
