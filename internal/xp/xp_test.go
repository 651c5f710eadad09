package xp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewardStaysInRange(t *testing.T) {
	for level := 1; level <= 3; level++ {
		min, max, ok := Range(level)
		require.True(t, ok)
		for i := 0; i < 200; i++ {
			got, err := Reward(level, nil)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, min, "level %d", level)
			require.LessOrEqual(t, got, max, "level %d", level)
		}
	}
}

func TestRewardRangesGrowWithLevel(t *testing.T) {
	min1, max1, _ := Range(1)
	min2, max2, _ := Range(2)
	min3, max3, _ := Range(3)
	require.Equal(t, [2]int{50, 100}, [2]int{min1, max1})
	require.Equal(t, [2]int{100, 150}, [2]int{min2, max2})
	require.Equal(t, [2]int{150, 200}, [2]int{min3, max3})
}

func TestRewardUnknownLevel(t *testing.T) {
	_, err := Reward(4, nil)
	require.Error(t, err)
}

func TestRewardUsesInjectedRoll(t *testing.T) {
	got, err := Reward(2, func(min, max int) int { return max })
	require.NoError(t, err)
	require.Equal(t, 150, got)
}

func TestSpend(t *testing.T) {
	newBal, err := Spend(100, 30)
	require.NoError(t, err)
	require.Equal(t, 70, newBal)

	_, err = Spend(100, 0)
	require.Error(t, err)

	_, err = Spend(100, -5)
	require.Error(t, err)

	_, err = Spend(20, 21)
	require.Error(t, err)

	newBal, err = Spend(20, 20)
	require.NoError(t, err)
	require.Equal(t, 0, newBal)
}
