package chunk

// pagingKind tags a PagingSpec variant.
type pagingKind uint8

const (
	pagingSinglePage pagingKind = iota
	pagingExactPageSizes
)

// PagingSpec describes how a chunk's elements are partitioned into data pages.
//
// The zero value is SinglePage: one page containing every element. Keeping
// SinglePage as its own variant instead of a one-element size vector avoids
// allocating at construction time, when the chunk length is usually unknown,
// and keeps the chunk length as the single source of truth.
//
// PagingSpec is consumed by ChunkSpec; it has no public operations of its own.
type PagingSpec struct {
	sizes []int
	kind  pagingKind
}

// SinglePage returns the paging spec placing every element in one page.
func SinglePage() PagingSpec {
	return PagingSpec{kind: pagingSinglePage}
}

// ExactPageSizes returns the paging spec with an explicit page partition.
// The sizes are stored as-is; validation happens when the chunk length is
// known, in ChunkSpec.PageSizes.
func ExactPageSizes(sizes []int) PagingSpec {
	return PagingSpec{kind: pagingExactPageSizes, sizes: sizes}
}
