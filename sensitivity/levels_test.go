package sensitivity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/st7ma784/LSASensitivity/sensitivity"
)

func TestLevelOf(t *testing.T) {
	cases := []struct {
		value float64
		want  sensitivity.Level
	}{
		{math.NaN(), sensitivity.LevelUnknown},
		{math.Inf(1), sensitivity.LevelVeryStable},
		{10.001, sensitivity.LevelVeryStable},
		{10, sensitivity.LevelStable},
		{6, sensitivity.LevelStable},
		{5.999, sensitivity.LevelModerate},
		{4, sensitivity.LevelModerate},
		{3.999, sensitivity.LevelSensitive},
		{0, sensitivity.LevelSensitive},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, sensitivity.LevelOf(tc.value), "value %v", tc.value)
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "unknown", sensitivity.LevelUnknown.String())
	require.Equal(t, "very-stable", sensitivity.LevelVeryStable.String())
	require.Equal(t, "stable", sensitivity.LevelStable.String())
	require.Equal(t, "moderate", sensitivity.LevelModerate.String())
	require.Equal(t, "sensitive", sensitivity.LevelSensitive.String())
}
