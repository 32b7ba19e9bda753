package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilterEmptyAndSentinels(t *testing.T) {
	cases := []ProductParams{
		{},
		{Query: "all", Category: "all", Brand: "all", Price: "all", Rating: "all", City: "india"},
	}
	for _, p := range cases {
		filter, err := BuildProductFilter(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(filter) != 0 {
			t.Fatalf("expected empty filter, got %v", filter)
		}
	}
}

func TestBuildProductFilterFragments(t *testing.T) {
	filter, err := BuildProductFilter(ProductParams{
		Query:    "teak",
		Category: "furniture",
		Brand:    "woodly",
		Price:    "20-60",
		Rating:   "4",
		City:     "jaipur",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := filter["name"]; !reflect.DeepEqual(got, primitive.Regex{Pattern: "teak", Options: "i"}) {
		t.Errorf("name fragment = %v", got)
	}
	if filter["category"] != "furniture" || filter["brand"] != "woodly" || filter["origin"] != "jaipur" {
		t.Errorf("exact-match fragments wrong: %v", filter)
	}
	if got := filter["price"]; !reflect.DeepEqual(got, bson.M{"$gte": 20.0, "$lte": 60.0}) {
		t.Errorf("price fragment = %v", got)
	}
	if got := filter["rating"]; !reflect.DeepEqual(got, bson.M{"$gte": 4.0}) {
		t.Errorf("rating fragment = %v", got)
	}
}

func TestBuildProductFilterRejectsBadInput(t *testing.T) {
	bad := []ProductParams{
		{Price: "abc"},
		{Price: "10"},
		{Price: "10-"},
		{Price: "-10"},
		{Price: "ten-twenty"},
		{Price: "60-20"},
		{Rating: "great"},
	}
	for _, p := range bad {
		if _, err := BuildProductFilter(p); err == nil {
			t.Errorf("expected error for %+v", p)
		}
	}
}

func TestParsePriceRange(t *testing.T) {
	min, max, err := ParsePriceRange("20-60")
	if err != nil || min != 20 || max != 60 {
		t.Fatalf("got %v %v %v", min, max, err)
	}
	if _, _, err := ParsePriceRange("20-20"); err != nil {
		t.Fatalf("equal bounds should be valid: %v", err)
	}
}

func TestBuildBlogFilterOrBranches(t *testing.T) {
	if got := BuildBlogFilter(""); len(got) != 0 {
		t.Fatalf("empty query should match everything, got %v", got)
	}
	if got := BuildBlogFilter("all"); len(got) != 0 {
		t.Fatalf("sentinel should match everything, got %v", got)
	}

	filter := BuildBlogFilter("boys")
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 3 {
		t.Fatalf("expected 3 OR branches, got %v", filter)
	}
	rx := primitive.Regex{Pattern: "boys", Options: "i"}
	want := []bson.M{
		{"title": rx},
		{"topics.title": rx},
		{"category": rx},
	}
	for i, branch := range or {
		if !reflect.DeepEqual(branch, want[i]) {
			t.Errorf("branch %d = %v, want %v", i, branch, want[i])
		}
	}
}
