package domain

import "time"

// Sister is a sub-entity that pro-mode entries are partitioned by.
type Sister struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
