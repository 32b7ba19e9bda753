package query

import "go.mongodb.org/mongo-driver/bson"

// SortOrder maps a storefront order token to a single-key sort directive.
// Unrecognized tokens fall through to newest-inserted first; that is never an
// error.
func SortOrder(token string) bson.D {
	switch token {
	case "featured":
		return bson.D{{Key: "featured", Value: -1}}
	case "lowest":
		return bson.D{{Key: "price", Value: 1}}
	case "highest":
		return bson.D{{Key: "price", Value: -1}}
	case "toprated":
		return bson.D{{Key: "rating", Value: -1}}
	case "newest":
		return bson.D{{Key: "createdAt", Value: -1}}
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	default:
		return bson.D{{Key: "_id", Value: -1}}
	}
}
