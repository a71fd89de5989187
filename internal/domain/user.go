package domain

import (
	"time"
)

// User is an account of the signup/login surface.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Mail         string    `bson:"mail" json:"mail"`      // unique
	PasswordHash string    `bson:"passwordHash" json:"-"` // never exposed
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
