package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numo/errs"
)

func TestChunkSpec_Default(t *testing.T) {
	t.Run("SinglePageHoldsEverything", func(t *testing.T) {
		sizes, err := ChunkSpec{}.PageSizes(6)
		require.NoError(t, err)
		require.Equal(t, []int{6}, sizes)
	})

	t.Run("ZeroElements", func(t *testing.T) {
		_, err := ChunkSpec{}.PageSizes(0)
		require.Error(t, err)
		require.EqualError(t, err, "cannot write data page of 0 numbers")
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestChunkSpec_WithPageSizes(t *testing.T) {
	t.Run("ExactMatch", func(t *testing.T) {
		spec := ChunkSpec{}.WithPageSizes([]int{1, 2, 3})
		sizes, err := spec.PageSizes(6)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, sizes)
	})

	t.Run("SumMismatch", func(t *testing.T) {
		spec := ChunkSpec{}.WithPageSizes([]int{1, 2, 3})
		_, err := spec.PageSizes(5)
		require.Error(t, err)
		require.EqualError(t, err, "chunk spec suggests 6 numbers but 5 were given")
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("ZeroPage", func(t *testing.T) {
		spec := ChunkSpec{}.WithPageSizes([]int{2, 0, 3})
		_, err := spec.PageSizes(5)
		require.Error(t, err)
		require.EqualError(t, err, "cannot write data page of 0 numbers")
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("MismatchReportedBeforeZeroPage", func(t *testing.T) {
		// Both defects present: the sum check wins.
		spec := ChunkSpec{}.WithPageSizes([]int{0})
		_, err := spec.PageSizes(5)
		require.EqualError(t, err, "chunk spec suggests 0 numbers but 5 were given")
	})

	t.Run("NegativePage", func(t *testing.T) {
		spec := ChunkSpec{}.WithPageSizes([]int{8, -2})
		_, err := spec.PageSizes(6)
		require.Error(t, err)
		require.EqualError(t, err, "cannot write data page of -2 numbers")
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("ReturnedSliceIsACopy", func(t *testing.T) {
		spec := ChunkSpec{}.WithPageSizes([]int{1, 2, 3})

		sizes, err := spec.PageSizes(6)
		require.NoError(t, err)
		sizes[0] = 100

		again, err := spec.PageSizes(6)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, again)
	})

	t.Run("DoesNotMutateReceiver", func(t *testing.T) {
		base := ChunkSpec{}
		_ = base.WithPageSizes([]int{2, 2})

		sizes, err := base.PageSizes(4)
		require.NoError(t, err)
		require.Equal(t, []int{4}, sizes)
	})
}

func TestPagingSpec_ZeroValueIsSinglePage(t *testing.T) {
	require.Equal(t, SinglePage(), PagingSpec{})
}
