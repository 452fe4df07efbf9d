package domain

import "time"

// Setting is one global key/value pair controlling job behavior. Read-only to
// the profit job; read/write by administrators.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}
