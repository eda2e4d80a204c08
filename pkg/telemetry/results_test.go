package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neondrift/racesim/pkg/simulation"
	"github.com/neondrift/racesim/pkg/simulation/track"
)

func testSession(t *testing.T) *simulation.Session {
	t.Helper()
	s, err := simulation.NewSession(track.NeonCity(),
		[]simulation.CarClass{simulation.ClassViper, simulation.ClassTitan},
		simulation.WithTargetLaps(2))
	require.NoError(t, err)
	return s
}

func TestBuildResult(t *testing.T) {
	s := testSession(t)
	s.Sim.Cars[1].CurrentLap = 1
	for i := 0; i < 10; i++ {
		s.Tick(1.0/60.0, nil)
	}

	result := BuildResult(s)
	assert.Equal(t, "neon-city", result.Course)
	assert.Equal(t, uint32(2), result.Laps)
	assert.Greater(t, result.RaceTime, float32(0))
	require.Len(t, result.Entries, 2)

	// entries come ordered by position
	assert.Equal(t, uint32(1), result.Entries[0].Position)
	assert.Equal(t, 1, result.Entries[0].CarIdx)
	assert.Equal(t, "titan", result.Entries[0].Class)
}

func TestWriteResultFile(t *testing.T) {
	s := testSession(t)
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, WriteResultFile(path, BuildResult(s)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"course"`)
	assert.Contains(t, string(data), `"entries"`)
}
