package query

import "testing"

func TestParsePageClamping(t *testing.T) {
	cases := []struct {
		page, size string
		wantPage   int
		wantSize   int
	}{
		{"", "", 1, DefaultPageSize},
		{"2", "10", 2, 10},
		{"0", "0", 1, DefaultPageSize},
		{"-3", "-1", 1, DefaultPageSize},
		{"abc", "xyz", 1, DefaultPageSize},
	}
	for _, c := range cases {
		p := ParsePage(c.page, c.size)
		if p.Number != c.wantPage || p.Size != c.wantSize {
			t.Errorf("ParsePage(%q, %q) = %+v", c.page, c.size, p)
		}
	}
}

func TestSkipLimit(t *testing.T) {
	p := Page{Number: 3, Size: 5}
	if p.Skip() != 10 || p.Limit() != 5 {
		t.Fatalf("skip=%d limit=%d", p.Skip(), p.Limit())
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		count int64
		size  int
		want  int64
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{10, 3, 4},
		{10, 0, 4}, // bad size falls back to the default
	}
	for _, c := range cases {
		if got := Pages(c.count, c.size); got != c.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", c.count, c.size, got, c.want)
		}
	}
}

// Concatenating every page in order must reproduce the whole sorted result
// exactly once per item.
func TestPaginationRoundTrip(t *testing.T) {
	items := []int{10, 25, 50, 99, 120, 7, 42}
	size := 3
	pages := Pages(int64(len(items)), size)
	if pages != 3 {
		t.Fatalf("pages = %d", pages)
	}

	var got []int
	for n := 1; n <= int(pages); n++ {
		p := Page{Number: n, Size: size}
		lo := int(p.Skip())
		hi := lo + int(p.Limit())
		if hi > len(items) {
			hi = len(items)
		}
		got = append(got, items[lo:hi]...)
	}
	if len(got) != len(items) {
		t.Fatalf("round trip lost items: %v", got)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("round trip mismatch at %d: %v", i, got)
		}
	}
}
