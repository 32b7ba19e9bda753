package query

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel values that mean "no filter". The storefront sends "all" for every
// facet it leaves open, and "india" for the default city.
const (
	SentinelAll  = "all"
	SentinelCity = "india"
)

// ProductParams are the raw faceted-search parameters as they arrive on the
// query string. Empty strings and sentinels yield no fragment.
type ProductParams struct {
	Query    string
	Category string
	Brand    string
	Price    string
	Rating   string
	City     string
}

// BuildProductFilter composes the recognized predicate fragments into one
// AND filter document. Malformed price or rating input is rejected here, at
// the boundary, instead of being coerced into a vacuous match.
func BuildProductFilter(p ProductParams) (bson.M, error) {
	filter := bson.M{}

	if p.Query != "" && p.Query != SentinelAll {
		filter["name"] = regexMatch(p.Query)
	}
	if p.Category != "" && p.Category != SentinelAll {
		filter["category"] = p.Category
	}
	if p.Brand != "" && p.Brand != SentinelAll {
		filter["brand"] = p.Brand
	}
	if p.City != "" && p.City != SentinelCity {
		filter["origin"] = p.City
	}
	if p.Rating != "" && p.Rating != SentinelAll {
		min, err := strconv.ParseFloat(p.Rating, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q", p.Rating)
		}
		filter["rating"] = bson.M{"$gte": min}
	}
	if p.Price != "" && p.Price != SentinelAll {
		min, max, err := ParsePriceRange(p.Price)
		if err != nil {
			return nil, err
		}
		filter["price"] = bson.M{"$gte": min, "$lte": max}
	}
	return filter, nil
}

// ParsePriceRange parses "<min>-<max>" into an inclusive bound pair. Both
// segments must be present, numeric, non-negative, and ordered.
func ParsePriceRange(s string) (float64, float64, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, 0, fmt.Errorf("invalid price range %q", s)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid price range %q", s)
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid price range %q", s)
	}
	if min < 0 || max < min {
		return 0, 0, fmt.Errorf("invalid price range %q", s)
	}
	return min, max, nil
}

// BuildBlogFilter matches a search term against title, topic titles and
// category at once. The branches combine by OR: a blog qualifies when any of
// the three matches.
func BuildBlogFilter(q string) bson.M {
	if q == "" || q == SentinelAll {
		return bson.M{}
	}
	rx := regexMatch(q)
	return bson.M{"$or": bson.A{
		bson.M{"title": rx},
		bson.M{"topics.title": rx},
		bson.M{"category": rx},
	}}
}

func regexMatch(q string) primitive.Regex {
	return primitive.Regex{Pattern: q, Options: "i"}
}
