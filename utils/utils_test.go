package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	slug := Slugify("My First Post")
	if !strings.HasPrefix(slug, "My_First_Post_") {
		t.Fatalf("slug = %q", slug)
	}
	if strings.Contains(slug, " ") {
		t.Fatalf("slug contains spaces: %q", slug)
	}
	suffix := slug[len("My_First_Post_"):]
	if suffix == "" || strings.Trim(suffix, "0123456789") != "" {
		t.Fatalf("slug suffix %q is not a timestamp", suffix)
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"go, web,  go ", []string{"go", "web"}},
		{"A,a,B", []string{"a", "b"}},
		{" , ,", []string{}},
	}
	for _, c := range cases {
		got := SplitTags(c.in)
		if len(got) != len(c.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("SplitTags(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}
