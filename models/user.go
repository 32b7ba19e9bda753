package models

import "time"

type User struct {
	UserID    string    `bson:"userid" json:"userid"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	IsAdmin   bool      `bson:"isAdmin" json:"isAdmin"`
	IsSeller  bool      `bson:"isSeller" json:"isSeller"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
