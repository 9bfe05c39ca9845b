package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgMax(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		require.Equal(t, -1, ArgMax([]float64{}), "Empty slice has no maximum")
	})

	t.Run("last maximum wins ties", func(t *testing.T) {
		require.Equal(t, 3, ArgMax([]float64{1, 3, 2, 3}), "Should return the last index of the maximum")
	})

	t.Run("negative values", func(t *testing.T) {
		require.Equal(t, 2, ArgMax([]int{-5, -3, -1}), "Should handle negative values")
	})
}

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]string{"a", "b", "c"}, "c"))
	require.Equal(t, -1, FindIndex([]string{"a"}, "z"))
}

func TestNewRand(t *testing.T) {
	r1, r2 := NewRand(), NewRand()
	require.NotEqual(t, r1.Uint64(), r2.Uint64(), "Independently seeded generators should diverge")
}
