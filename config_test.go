package ndp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultsWhenNothingSet(t *testing.T) {
	c := &Config{}
	c.Normalize(10, 15, "/tmp/out")
	require.Equal(t, 5, c.MaxTasks)
	require.Equal(t, 5, c.Depth)
	require.Equal(t, "/tmp/out", c.OutputDirectory)
}

func TestNormalizeMaxTasksSetsDepth(t *testing.T) {
	c := &Config{MaxTasks: 7}
	c.Normalize(10, 15, "/tmp/out")
	require.Equal(t, 7, c.MaxTasks)
	require.Equal(t, 7, c.Depth)
}

func TestNormalizeOverrideMaxTasksKeepsExplicitDepthOnly(t *testing.T) {
	c := &Config{Depth: 3, OverrideMaxTasks: true}
	c.Normalize(10, 15, "/tmp/out")
	require.Equal(t, 3, c.Depth)
	require.Equal(t, 0, c.MaxTasks)
}

func TestNormalizePreservesExplicitOutputDirectory(t *testing.T) {
	c := &Config{OutputDirectory: "/custom"}
	c.Normalize(10, 15, "/tmp/out")
	require.Equal(t, "/custom", c.OutputDirectory)
}

func TestValidateRejectsExcessiveReserveCores(t *testing.T) {
	c := &Config{ReserveCores: 9}
	err := c.Validate(8)
	require.ErrorIs(t, err, ErrReserveExceedsCores)
}

func TestValidateRejectsNegativeReserveCores(t *testing.T) {
	c := &Config{ReserveCores: -1}
	err := c.Validate(8)
	require.Error(t, err)
}

func TestValidateRejectsReserveCoresEqualToTotal(t *testing.T) {
	// Reserving every core would leave UsableCores at 0, which Solve
	// refuses to run with.
	c := &Config{ReserveCores: 8}
	err := c.Validate(8)
	require.ErrorIs(t, err, ErrReserveExceedsCores)
}

func TestValidateAcceptsReserveCoresOneBelowTotal(t *testing.T) {
	c := &Config{ReserveCores: 7}
	require.NoError(t, c.Validate(8))
}

func TestUsableCores(t *testing.T) {
	c := &Config{ReserveCores: 2}
	require.Equal(t, 6, c.UsableCores(8))
}

func TestConfigExpandConfigCarriesMaxQueuesSet(t *testing.T) {
	c := &Config{MaxQueues: 0, MaxQueuesSet: true}
	cfg := c.ExpandConfig()
	require.True(t, cfg.MaxQueuesSet)
	require.Equal(t, 0, cfg.MaxQueues)
}

func TestFlag(t *testing.T) {
	for _, tt := range []struct {
		name string
		c    Config
		want string
	}{
		{"nothing set", Config{}, "auto"},
		{"max tasks set", Config{MaxTasks: 12}, "t12"},
		{"depth override set", Config{Depth: 4, OverrideMaxTasks: true}, "d4"},
		{"max queues set takes priority", Config{MaxQueues: 9, MaxQueuesSet: true, MaxTasks: 12, OverrideMaxTasks: true}, "q9"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.c.Flag())
		})
	}
}
