package world

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestTileWrapsX(t *testing.T) {
	w, err := New(8, 4)
	require.NoError(t, err)
	for i := range w.Heights {
		w.Heights[i] = float32(i) / float32(len(w.Heights))
	}
	w.Categories[w.Grid().Index(3, 2)] = Cliff

	a, err := w.Tile(3, 2)
	require.NoError(t, err)
	for _, x := range []int{3 + 8, 3 - 8, 3 + 80} {
		b, err := w.Tile(x, 2)
		require.NoError(t, err)
		assert.Equal(t, a, b, "x=%d", x)
	}
	assert.Equal(t, Cliff, a.Category)
	assert.False(t, a.Passable)
}

func TestTileRejectsRowsOutside(t *testing.T) {
	w, err := New(4, 4)
	require.NoError(t, err)
	for _, y := range []int{-1, 4, 100} {
		_, err := w.Tile(0, y)
		assert.True(t, errors.Is(err, ErrCoordinateOutOfRange), "y=%d", y)
	}
}

func TestNewInitialisesDistances(t *testing.T) {
	w, err := New(3, 3)
	require.NoError(t, err)
	tile, err := w.Tile(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int16(-1), tile.DistanceToLand)
	assert.Equal(t, int16(-1), tile.DistanceToWater)
}

func TestVerify(t *testing.T) {
	w, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, w.Verify())

	w.Heights[1] = float32(math.NaN())
	assert.ErrorIs(t, w.Verify(), ErrStageFailure)
	w.Heights[1] = 1.5
	assert.ErrorIs(t, w.Verify(), ErrStageFailure)
	w.Heights[1] = 0.5
	w.Slopes[3] = -0.1
	assert.ErrorIs(t, w.Verify(), ErrStageFailure)
}

func TestStageErrorUnwraps(t *testing.T) {
	err := error(&StageError{Stage: "thermal", Err: ErrStageFailure})
	assert.ErrorIs(t, err, ErrStageFailure)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "thermal", se.Stage)
	assert.Contains(t, err.Error(), "thermal")
}

func TestCategoryPassability(t *testing.T) {
	blocked := map[Category]bool{SnowPeak: true, Cliff: true, RiverWater: true, LakeWater: true, PondWater: true, BorderWall: true, Void: true}
	for _, c := range Categories() {
		assert.Equal(t, !blocked[c], c.Passable(), c.String())
		assert.NotEqual(t, "unknown", c.String())
	}
}
