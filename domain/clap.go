package domain

import "time"

// ClapRecord is the association of (post, user) to a clap count.
// The store keeps at most one record per pair; it is the source of
// "has this viewer clapped already, and how many times".
type ClapRecord struct {
	PostID    string
	UserID    string
	ClapCount int64
	CreatedAt time.Time
}
