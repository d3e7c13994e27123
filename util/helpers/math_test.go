package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(3, 1, 2))
	require.Equal(t, 3, Max(3, 1, 2))
	require.Equal(t, -5, Min(-5))
	require.Equal(t, "a", Min("b", "a", "c"))
	require.Equal(t, 2.5, Max(1.0, 2.5, -1.0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(-1, 0, 10))
	require.Equal(t, 10, Clamp(11, 0, 10))
	require.Equal(t, 5, Clamp(5, 0, 10))
}

func TestPercent(t *testing.T) {
	require.Equal(t, float64(50), Percent(5, 10))
	require.Equal(t, float64(100), Percent(0, 0))
	require.Equal(t, float64(100), Percent(12, 10))
	require.Equal(t, float64(0), Percent(uint64(0), uint64(3)))
}
