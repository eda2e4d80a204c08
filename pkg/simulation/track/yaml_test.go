package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCourse = `
name: figure-test
baseLength: 12
segments:
  - {}
  - turn: tight90r
  - turn: medium30l
    elevation: gentle_up
    banking: slight
    style: tunnel
  - elevation: jump
`

func TestParseCourse(t *testing.T) {
	c, err := parseCourse([]byte(sampleCourse))
	assert.NoError(t, err)
	assert.Equal(t, "figure-test", c.Name)
	assert.Equal(t, float32(12), c.BaseLength)
	assert.Len(t, c.Defs, 4)

	assert.Equal(t, Straight, c.Defs[0].Turn)
	assert.Equal(t, Tight90R, c.Defs[1].Turn)
	assert.Equal(t, Medium30L, c.Defs[2].Turn)
	assert.Equal(t, GentleUp, c.Defs[2].Elevation)
	assert.Equal(t, BankSlight, c.Defs[2].Banking)
	assert.Equal(t, StyleTunnel, c.Defs[2].Style)
	assert.Equal(t, Jump, c.Defs[3].Elevation)
}

func TestParseCourseRejectsUnknownTags(t *testing.T) {
	_, err := parseCourse([]byte("name: bad\nsegments:\n  - turn: wiggle\n"))
	assert.ErrorContains(t, err, "unknown turn angle")

	_, err = parseCourse([]byte("name: bad\nsegments:\n  - banking: extreme\n"))
	assert.ErrorContains(t, err, "unknown banking")
}

func TestParseCourseRequiresNameAndSegments(t *testing.T) {
	_, err := parseCourse([]byte("segments:\n  - {}\n"))
	assert.ErrorContains(t, err, "no name")

	_, err = parseCourse([]byte("name: empty\n"))
	assert.ErrorContains(t, err, "no segments")
}

func TestEnumRoundTrip(t *testing.T) {
	for ta := range turnNames {
		got, err := ParseTurnAngle(ta.String())
		assert.NoError(t, err)
		assert.Equal(t, ta, got)
	}
	for e := range elevationNames {
		got, err := ParseElevation(e.String())
		assert.NoError(t, err)
		assert.Equal(t, e, got)
	}
}
