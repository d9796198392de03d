package chunk

import (
	"github.com/arloliu/numo/errs"
)

// ChunkSpec specifies how many elements there will be in each of a chunk's
// data pages.
//
// By default it specifies a single data page containing all the data. Exact
// page sizes can be set via WithPageSizes. Data pages must be specified
// up front for each chunk: the chunk header contains a page table with
// fixed-size entries that the encoder writes once, and readers seek to page
// k using only that table.
//
// The zero value is ready to use. ChunkSpec is immutable from the caller's
// perspective; WithPageSizes returns a new value.
type ChunkSpec struct {
	pagingSpec PagingSpec
}

// WithPageSizes returns a copy of the spec using the exact data page sizes
// given. These must sum to the actual number of elements to be compressed.
//
// E.g.
//
//	spec := chunk.ChunkSpec{}.WithPageSizes([]int{1, 2, 3})
//
// can only be used if the chunk actually contains 1+2+3=6 numbers. The sizes
// are stored as-is; validation is deferred to PageSizes, so specs can be
// assembled incrementally.
func (s ChunkSpec) WithPageSizes(sizes []int) ChunkSpec {
	s.pagingSpec = ExactPageSizes(sizes)
	return s
}

// PageSizes resolves the page-size vector for a chunk of n elements.
//
// The returned slice is freshly allocated; the caller may mutate it without
// disturbing the spec.
//
// Returns:
//   - []int: one positive size per page, summing to n
//   - error: an invalid-argument error when the stored sizes do not sum to
//     n, or when any page (including the single default page with n == 0)
//     would hold zero elements
func (s ChunkSpec) PageSizes(n int) ([]int, error) {
	var pageSizes []int

	switch s.pagingSpec.kind {
	case pagingSinglePage:
		pageSizes = []int{n}
	case pagingExactPageSizes:
		sizesN := 0
		for _, size := range s.pagingSpec.sizes {
			sizesN += size
		}
		if sizesN != n {
			return nil, errs.InvalidArgumentf("chunk spec suggests %d numbers but %d were given", sizesN, n)
		}
		pageSizes = append([]int(nil), s.pagingSpec.sizes...)
	}

	for _, size := range pageSizes {
		if size == 0 {
			return nil, errs.InvalidArgument("cannot write data page of 0 numbers")
		}
		if size < 0 {
			return nil, errs.InvalidArgumentf("cannot write data page of %d numbers", size)
		}
	}

	return pageSizes, nil
}
