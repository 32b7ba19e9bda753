package models

import "time"

type Topic struct {
	Title string `bson:"title" json:"title"`
	Body  string `bson:"body" json:"body"`
}

type BlogComment struct {
	UserID    string    `bson:"userid" json:"userid"`
	Name      string    `bson:"name" json:"name"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Blog is owned by its authoring user. LikeCount is a bare counter bumped by
// anyone, not a per-user toggle.
type Blog struct {
	BlogID      string        `bson:"blogid" json:"blogid"`
	UserID      string        `bson:"userid" json:"userid"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	Image       string        `bson:"image" json:"image"`
	Slug        string        `bson:"slug" json:"slug"`
	Topics      []Topic       `bson:"topics" json:"topics"`
	LikeCount   int64         `bson:"likeCount" json:"likeCount"`
	Comments    []BlogComment `bson:"comments" json:"comments"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BlogSummary is the projection returned by the public listing.
type BlogSummary struct {
	BlogID      string    `bson:"blogid" json:"blogid"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Slug        string    `bson:"slug" json:"slug"`
	Image       string    `bson:"image" json:"image"`
	LikeCount   int64     `bson:"likeCount" json:"likeCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
