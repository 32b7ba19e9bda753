package models

import "time"

type Address struct {
	FullName   string `bson:"fullName" json:"fullName"`
	Address    string `bson:"address" json:"address"`
	Mobile     string `bson:"mobile" json:"mobile"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Seller is the selling profile attached to exactly one user. Verification is
// admin-set; until then the profile exists but the user cannot list products.
type Seller struct {
	SellerID          string    `bson:"sellerid" json:"sellerid"`
	UserID            string    `bson:"userid" json:"userid"`
	IsVerified        bool      `bson:"isVerified" json:"isVerified"`
	ProductCategories string    `bson:"productCategories" json:"productCategories"`
	Address           Address   `bson:"address" json:"address"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}
