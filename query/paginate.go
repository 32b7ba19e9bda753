package query

import "strconv"

const DefaultPageSize = 3

// Page holds offset/limit pagination resolved from raw query strings.
type Page struct {
	Number int
	Size   int
}

// ParsePage clamps non-numeric or out-of-range input to the minimums instead
// of passing raw strings through to the store.
func ParsePage(pageStr, sizeStr string) Page {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	return Page{Number: page, Size: size}
}

func (p Page) Skip() int64  { return int64(p.Size) * int64(p.Number-1) }
func (p Page) Limit() int64 { return int64(p.Size) }

// Pages computes total-pages metadata: ceil(count / size).
func Pages(count int64, size int) int64 {
	if size < 1 {
		size = DefaultPageSize
	}
	return (count + int64(size) - 1) / int64(size)
}
