package physics

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	config, err := LoadConfig(strings.NewReader("fixedTimestep: 0.01\nconstraintIterations: 4\n"))
	require.NoError(t, err)

	expected := DefaultConfig()
	expected.FixedTimestep = 0.01
	expected.ConstraintIterations = 4

	require.Equal(t, expected, config)
}

func TestLoadConfigEmpty(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("gravity: 10\n"))
	require.Error(t, err)
}

func TestLoadConfigValidates(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("baumgarteBias: 2\n"))
	require.ErrorContains(t, err, "baumgarteBias")

	_, err = LoadConfig(strings.NewReader("fixedTimestep: 1\n"))
	require.ErrorContains(t, err, "maxAccumulator")

	_, err = LoadConfig(strings.NewReader("constraintIterations: 0\n"))
	require.ErrorContains(t, err, "constraintIterations")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enableSleep: false\nsleepTime: 2\n"), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.False(t, config.EnableSleep)
	require.Equal(t, 2.0, config.SleepTime)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSetConfigUpdatesClock(t *testing.T) {
	_, pw := newTestWorld()

	config := DefaultConfig()
	config.FixedTimestep = 0.1
	config.MaxAccumulator = 1
	pw.SetConfig(config)

	require.Equal(t, config, pw.Config())
}
