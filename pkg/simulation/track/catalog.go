package track

import "fmt"

// descriptor shorthands for the built-in catalog

func straight() SegmentDef { return SegmentDef{} }

func turn(t TurnAngle) SegmentDef { return SegmentDef{Turn: t} }

func banked(t TurnAngle, b Banking) SegmentDef { return SegmentDef{Turn: t, Banking: b} }

func hill(e Elevation) SegmentDef { return SegmentDef{Elevation: e} }

func styled(t TurnAngle, s Style) SegmentDef { return SegmentDef{Turn: t, Style: s} }

func full(t TurnAngle, e Elevation, b Banking, s Style) SegmentDef {
	return SegmentDef{Turn: t, Elevation: e, Banking: b, Style: s}
}

// SunsetStrip: coastal highway, rolling hills, gentle sweepers. 4x90 = 360.
func SunsetStrip() *Course {
	return &Course{
		Name:       "sunset-strip",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			// start/finish straight
			straight(),
			straight(),
			hill(GentleUp),
			// gentle right sweeper (90 total over 3 segments)
			banked(Medium30R, BankSlight),
			banked(Medium30R, BankSlight),
			banked(Medium30R, BankSlight),
			// coastal straight
			full(Straight, Crest, BankFlat, StyleCoastal),
			full(Straight, GentleDown, BankFlat, StyleCoastal),
			straight(),
			// second sweeping right (90 total)
			banked(Standard45R, BankMedium),
			banked(Standard45R, BankMedium),
			// bridge section
			full(Straight, ElevBridge, BankFlat, StyleBridge),
			full(Straight, ElevBridge, BankFlat, StyleBridge),
			// climb the hill
			hill(SteepUp),
			hill(GentleUp),
			// third sweeper at hilltop (90)
			full(Medium30R, Crest, BankSlight, StyleOpen),
			banked(Medium30R, BankSlight),
			banked(Medium30R, BankSlight),
			// downhill toward finish
			hill(SteepDown),
			hill(GentleDown),
			// final turn back to start (90)
			banked(Standard45R, BankMedium),
			banked(Standard45R, BankMedium),
			straight(),
		},
	}
}

// NeonCity: downtown circuit, tight 90 corners and a tunnel. Net 360.
func NeonCity() *Course {
	return &Course{
		Name:       "neon-city",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			// main street straight
			straight(),
			straight(),
			straight(),
			// sharp 90 right onto side street
			turn(Tight90R),
			// short block
			straight(),
			straight(),
			// chicane (net 0)
			turn(Standard45L),
			turn(Standard45R),
			// into tunnel
			styled(Straight, StyleTunnel),
			full(Medium30R, GentleDown, BankFlat, StyleTunnel),
			styled(Straight, StyleTunnel),
			full(Medium30R, GentleUp, BankFlat, StyleTunnel),
			styled(Straight, StyleTunnel),
			// exit tunnel, 90 left
			turn(Tight90L),
			// avenue section
			straight(),
			straight(),
			// over bridge
			full(Straight, GentleUp, BankFlat, StyleBridge),
			full(Straight, ElevBridge, BankFlat, StyleBridge),
			full(Straight, GentleDown, BankFlat, StyleBridge),
			// two sharp rights (180 total)
			turn(Tight90R),
			straight(),
			turn(Tight90R),
			// back straight
			straight(),
			straight(),
			// final 90 right
			turn(Tight90R),
			straight(),
		},
	}
}

// VoidTunnel: underground complex with a hairpin. 360 counter-clockwise.
func VoidTunnel() *Course {
	return &Course{
		Name:       "void-tunnel",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			// descent into the void
			full(Straight, SteepDown, BankFlat, StyleTunnel),
			full(Straight, SteepDown, BankFlat, StyleTunnel),
			// sweeping left in darkness (60)
			full(Medium30L, ElevFlat, BankSlight, StyleTunnel),
			full(Medium30L, ElevFlat, BankSlight, StyleTunnel),
			// valley section
			full(Straight, Valley, BankFlat, StyleTunnel),
			styled(Straight, StyleTunnel),
			// sharp left 90
			full(Tight90L, ElevFlat, BankMedium, StyleTunnel),
			// long tunnel straight
			styled(Straight, StyleTunnel),
			styled(Straight, StyleTunnel),
			styled(Straight, StyleTunnel),
			// hairpin left (180), very tight
			full(Hairpin180L, ElevFlat, BankHeavy, StyleTunnel),
			// climb back up
			full(Straight, GentleUp, BankFlat, StyleTunnel),
			full(Straight, SteepUp, BankFlat, StyleTunnel),
			// 30 left adjustment: -60 -90 -180 -30 = -360
			full(Medium30L, GentleUp, BankFlat, StyleTunnel),
			// exit to open air briefly
			straight(),
			hill(Jump),
			straight(),
		},
	}
}

// CrystalCavern: mountain pass, extreme elevation, two hairpins. 360.
func CrystalCavern() *Course {
	return &Course{
		Name:       "crystal-cavern",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			// start in canyon
			full(Straight, ElevFlat, BankFlat, StyleCanyon),
			full(Straight, GentleUp, BankFlat, StyleCanyon),
			// first hairpin right (180)
			full(Hairpin180R, ElevFlat, BankHeavy, StyleCanyon),
			// steep climb
			full(Straight, SteepUp, BankFlat, StyleCanyon),
			full(Straight, SteepUp, BankFlat, StyleCanyon),
			// s-curve through crystals (net 0)
			full(Sharp60R, ElevFlat, BankMedium, StyleCanyon),
			full(Sharp60L, ElevFlat, BankMedium, StyleCanyon),
			// crest of mountain
			full(Straight, Crest, BankFlat, StyleOpen),
			hill(Jump),
			// descent
			full(Straight, SteepDown, BankFlat, StyleCanyon),
			full(Medium30R, GentleDown, BankSlight, StyleCanyon),
			// tunnel through crystal formation
			full(Straight, ElevFlat, BankFlat, StyleTunnel),
			full(Medium30R, ElevFlat, BankFlat, StyleTunnel),
			styled(Straight, StyleTunnel),
			// s-curve, then the remaining 120 via two sharp rights
			full(Sharp60R, ElevFlat, BankMedium, StyleCanyon),
			full(Sharp60L, ElevFlat, BankMedium, StyleCanyon),
			full(Sharp60R, GentleDown, BankMedium, StyleCanyon),
			full(Sharp60R, ElevFlat, BankMedium, StyleCanyon),
			full(Straight, ElevFlat, BankFlat, StyleCanyon),
		},
	}
}

// SolarHighway: high speed circuit, massive banked sweepers and jumps.
// 6x15 + 2x45 + 6x15 + 3x30 = 360.
func SolarHighway() *Course {
	return &Course{
		Name:       "solar-highway",
		BaseLength: DefaultBaseLength,
		Defs: []SegmentDef{
			// start on elevated highway
			full(Straight, ElevBridge, BankFlat, StyleBridge),
			full(Straight, ElevBridge, BankFlat, StyleBridge),
			// big jump off the bridge
			full(Straight, Jump, BankFlat, StyleBridge),
			// landing and slight downhill
			hill(GentleDown),
			straight(),
			// ultra-smooth 90 sweeper (6 gentle segments)
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankHeavy),
			banked(Gentle15R, BankHeavy),
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankMedium),
			// high speed straight
			straight(),
			straight(),
			straight(),
			// gentle s-curve with elevation (net 0)
			full(Gentle15L, GentleUp, BankSlight, StyleOpen),
			full(Gentle15L, GentleUp, BankSlight, StyleOpen),
			full(Gentle15L, Crest, BankSlight, StyleOpen),
			full(Gentle15R, GentleDown, BankSlight, StyleOpen),
			full(Gentle15R, GentleDown, BankSlight, StyleOpen),
			full(Gentle15R, ElevFlat, BankSlight, StyleOpen),
			// downhill rush
			hill(SteepDown),
			hill(GentleDown),
			// another big banked turn (90)
			banked(Standard45R, BankHeavy),
			banked(Standard45R, BankHeavy),
			// back straight with second jump
			straight(),
			straight(),
			hill(Jump),
			// 90 sweeper using gentle turns
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankHeavy),
			banked(Gentle15R, BankHeavy),
			banked(Gentle15R, BankMedium),
			banked(Gentle15R, BankMedium),
			// final 90 sweeper back to start
			banked(Medium30R, BankMedium),
			banked(Medium30R, BankMedium),
			banked(Medium30R, BankMedium),
			straight(),
		},
	}
}

// Courses returns the built-in catalog.
func Courses() []*Course {
	return []*Course{
		SunsetStrip(),
		NeonCity(),
		VoidTunnel(),
		CrystalCavern(),
		SolarHighway(),
	}
}

// CourseByName looks up a built-in course.
func CourseByName(name string) (*Course, error) {
	for _, c := range Courses() {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown course %q", name)
}
