package domain

import (
	"time"
)

// Impression is a record of an ad being shown.
type Impression struct {
	ID        string
	AdID      string
	UserID    string // empty for anonymous viewers
	UserAgent string
	IPAddress string
	Referrer  string
	CreatedAt time.Time
}

// Click is a record of a click event.
type Click struct {
	ID        string
	AdID      string
	UserID    string
	UserAgent string
	IPAddress string
	Referrer  string
	CreatedAt time.Time
}
