package domain

import "time"

// User is the account owning plans. Authentication is thin glue around the
// planning core; only the fields the service needs are modeled.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	HomeBase     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
