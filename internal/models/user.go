package models

import "time"

// User represents a player account. Accounts are identified by username only;
// there are no credentials and usernames cannot be changed after signup.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
