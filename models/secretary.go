package models

import "time"

// Secretary is the school moderator. Accounts are provisioned from the
// command line, never through the API.
type Secretary struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`

	LoginIPAddresses []string   `json:"loginIpAddresses"`
	LastLoginDate    *time.Time `json:"lastLoginDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with Secretary.
func (s Secretary) TableName() string {
	return "secretaries"
}
