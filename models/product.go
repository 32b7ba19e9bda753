package models

import "time"

type Review struct {
	Name      string    `bson:"name" json:"name"`
	Rating    float64   `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Product belongs to exactly one seller. Rating and NumReviews are derived
// from Reviews and updated in the same write that appends a review.
type Product struct {
	ProductID    string    `bson:"productid" json:"productid"`
	Name         string    `bson:"name" json:"name"`
	Slug         string    `bson:"slug" json:"slug"`
	Description  string    `bson:"description" json:"description"`
	Image        string    `bson:"image" json:"image"`
	Images       []string  `bson:"images,omitempty" json:"images,omitempty"`
	Category     string    `bson:"category" json:"category"`
	Brand        string    `bson:"brand" json:"brand"`
	Price        float64   `bson:"price" json:"price"`
	CountInStock int       `bson:"countInStock" json:"countInStock"`
	Rating       float64   `bson:"rating" json:"rating"`
	NumReviews   int       `bson:"numReviews" json:"numReviews"`
	Reviews      []Review  `bson:"reviews" json:"reviews"`
	Origin       string    `bson:"origin" json:"origin"`
	SellerID     string    `bson:"sellerid" json:"sellerid"`
	Featured     bool      `bson:"featured,omitempty" json:"featured,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
