package sellers

import "testing"

func TestNormalizeCategories(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Spices", "spices"},
		{" Spices , Grains,spices ", "spices,grains"},
		{",, ,", ""},
	}
	for _, c := range cases {
		if got := normalizeCategories(c.in); got != c.want {
			t.Errorf("normalizeCategories(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
