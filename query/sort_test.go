package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSortOrderTable(t *testing.T) {
	cases := []struct {
		token string
		want  bson.D
	}{
		{"featured", bson.D{{Key: "featured", Value: -1}}},
		{"lowest", bson.D{{Key: "price", Value: 1}}},
		{"highest", bson.D{{Key: "price", Value: -1}}},
		{"toprated", bson.D{{Key: "rating", Value: -1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"oldest", bson.D{{Key: "createdAt", Value: 1}}},
		{"", bson.D{{Key: "_id", Value: -1}}},
		{"bogus", bson.D{{Key: "_id", Value: -1}}},
	}
	for _, c := range cases {
		if got := SortOrder(c.token); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SortOrder(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}
