// Package model defines domain entities used by services and repositories.
package model

import "time"

// Identity is the opaque caller token supplied by the hosting
// environment per call. The core only ever compares it and uses it as
// a store key; it never mints one.
type Identity string

// Tweet is a single stored post. ID and Author are fixed at creation;
// Author is a snapshot of the creator's username at that moment and is
// not re-resolved later.
type Tweet struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     uint64    `json:"likes"`
	Retweets  uint64    `json:"retweets"`
	Comments  []Comment `json:"comments,omitempty"`
}

// Comment is one append-only entry on a tweet.
type Comment struct {
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the per-identity profile record. Username always matches
// the registry entry for the owning identity.
//
// Password is persisted exactly as supplied. That reproduces the
// source system's behavior; a real deployment must hash and salt it
// before storage.
type Profile struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Bio               string `json:"bio,omitempty"`
}
