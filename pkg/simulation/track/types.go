// Package track compiles declarative segment descriptor lists into
// closed-loop 3D course geometry: absolute-space segments, AI waypoints
// and lap checkpoints.
package track

import "fmt"

// Fixed capacities keep per-tick cost and memory layout bounded so a whole
// compiled layout can be snapshotted by value.
const (
	MaxSegments    = 64
	MaxWaypoints   = 64
	NumCheckpoints = 4

	DefaultWidth      float32 = 10.0
	DefaultBaseLength float32 = 10.0
)

// TurnAngle classifies the heading change of a segment.
type TurnAngle uint8

const (
	Straight TurnAngle = iota
	Gentle15L
	Gentle15R
	Medium30L
	Medium30R
	Standard45L
	Standard45R
	Sharp60L
	Sharp60R
	Tight90L
	Tight90R
	Hairpin180L
	Hairpin180R
)

// Degrees returns the signed heading change (positive = right/clockwise).
func (t TurnAngle) Degrees() float32 {
	switch t {
	case Gentle15L:
		return -15
	case Gentle15R:
		return 15
	case Medium30L:
		return -30
	case Medium30R:
		return 30
	case Standard45L:
		return -45
	case Standard45R:
		return 45
	case Sharp60L:
		return -60
	case Sharp60R:
		return 60
	case Tight90L:
		return -90
	case Tight90R:
		return 90
	case Hairpin180L:
		return -180
	case Hairpin180R:
		return 180
	default:
		return 0
	}
}

// LengthMult returns the segment length multiplier; sharper turns get longer
// arcs so corner speed feels consistent.
func (t TurnAngle) LengthMult() float32 {
	switch t {
	case Sharp60L, Sharp60R:
		return 1.2
	case Tight90L, Tight90R:
		return 1.5
	case Hairpin180L, Hairpin180R:
		return 2.0
	default:
		return 1.0
	}
}

var turnNames = map[TurnAngle]string{
	Straight:    "straight",
	Gentle15L:   "gentle15l",
	Gentle15R:   "gentle15r",
	Medium30L:   "medium30l",
	Medium30R:   "medium30r",
	Standard45L: "standard45l",
	Standard45R: "standard45r",
	Sharp60L:    "sharp60l",
	Sharp60R:    "sharp60r",
	Tight90L:    "tight90l",
	Tight90R:    "tight90r",
	Hairpin180L: "hairpin180l",
	Hairpin180R: "hairpin180r",
}

func (t TurnAngle) String() string { return turnNames[t] }

// ParseTurnAngle resolves a course-file tag into a TurnAngle.
func ParseTurnAngle(s string) (TurnAngle, error) {
	for k, v := range turnNames {
		if v == s {
			return k, nil
		}
	}
	return Straight, fmt.Errorf("unknown turn angle %q", s)
}

// Elevation classifies the vertical profile of a segment.
type Elevation uint8

const (
	ElevFlat Elevation = iota
	GentleUp
	GentleDown
	SteepUp
	SteepDown
	Crest
	Valley
	Jump
	ElevBridge
)

// HeightDelta returns the height change over the segment.
func (e Elevation) HeightDelta() float32 {
	switch e {
	case GentleUp:
		return 2
	case GentleDown:
		return -2
	case SteepUp:
		return 4
	case SteepDown:
		return -4
	case Crest:
		return 1
	case Valley:
		return -1
	case Jump:
		return 3
	default:
		return 0
	}
}

// Pitch returns the visual pitch angle (negative = nose up).
func (e Elevation) Pitch() float32 {
	switch e {
	case GentleUp:
		return -8
	case GentleDown:
		return 8
	case SteepUp:
		return -15
	case SteepDown:
		return 15
	case Crest:
		return -5
	case Valley:
		return 5
	case Jump:
		return -20
	default:
		return 0
	}
}

var elevationNames = map[Elevation]string{
	ElevFlat:   "flat",
	GentleUp:   "gentle_up",
	GentleDown: "gentle_down",
	SteepUp:    "steep_up",
	SteepDown:  "steep_down",
	Crest:      "crest",
	Valley:     "valley",
	Jump:       "jump",
	ElevBridge: "bridge",
}

func (e Elevation) String() string { return elevationNames[e] }

// ParseElevation resolves a course-file tag into an Elevation.
func ParseElevation(s string) (Elevation, error) {
	for k, v := range elevationNames {
		if v == s {
			return k, nil
		}
	}
	return ElevFlat, fmt.Errorf("unknown elevation %q", s)
}

// Banking classifies how far a segment leans into its turn.
type Banking uint8

const (
	BankFlat Banking = iota
	BankSlight
	BankMedium
	BankHeavy
)

// Angle returns the banking angle in degrees.
func (b Banking) Angle() float32 {
	switch b {
	case BankSlight:
		return 10
	case BankMedium:
		return 20
	case BankHeavy:
		return 30
	default:
		return 0
	}
}

var bankingNames = map[Banking]string{
	BankFlat:   "flat",
	BankSlight: "slight",
	BankMedium: "medium",
	BankHeavy:  "heavy",
}

func (b Banking) String() string { return bankingNames[b] }

// ParseBanking resolves a course-file tag into a Banking.
func ParseBanking(s string) (Banking, error) {
	for k, v := range bankingNames {
		if v == s {
			return k, nil
		}
	}
	return BankFlat, fmt.Errorf("unknown banking %q", s)
}

// Style tags the visual environment of a segment; the simulation carries it
// through for external renderers but never branches on it.
type Style uint8

const (
	StyleOpen Style = iota
	StyleTunnel
	StyleBridge
	StyleCanyon
	StyleCoastal
)

var styleNames = map[Style]string{
	StyleOpen:    "open",
	StyleTunnel:  "tunnel",
	StyleBridge:  "bridge",
	StyleCanyon:  "canyon",
	StyleCoastal: "coastal",
}

func (s Style) String() string { return styleNames[s] }

// ParseStyle resolves a course-file tag into a Style.
func ParseStyle(v string) (Style, error) {
	for k, name := range styleNames {
		if name == v {
			return k, nil
		}
	}
	return StyleOpen, fmt.Errorf("unknown style %q", v)
}

// SegmentDef is one entry of a declarative course description.
type SegmentDef struct {
	Turn      TurnAngle
	Elevation Elevation
	Banking   Banking
	Style     Style
}

// Segment is a compiled track piece with absolute world placement.
// Immutable once compiled.
type Segment struct {
	X, Y, Z  float32
	Rotation float32 // heading in degrees (yaw)

	Turn      TurnAngle
	Elevation Elevation
	Banking   Banking
	Style     Style
	Width     float32
	Length    float32
}

// Roll returns the roll angle: banking signed into the turn direction.
func (s Segment) Roll() float32 {
	deg := s.Turn.Degrees()
	switch {
	case deg > 0:
		return s.Banking.Angle()
	case deg < 0:
		return -s.Banking.Angle()
	default:
		return 0
	}
}

// Pitch returns the visual pitch angle from the elevation profile.
func (s Segment) Pitch() float32 { return s.Elevation.Pitch() }

// Waypoint is an AI navigation target at a segment midpoint.
type Waypoint struct {
	X, Y, Z float32
}
