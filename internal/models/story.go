package models

import (
	"time"

	"github.com/google/uuid"
)

// Story is a narratable story from the library. Stories are read-only for
// this service; authoring happens elsewhere.
type Story struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Content   string    `json:"content" db:"content"`
	Version   int       `json:"version" db:"version"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StorySummary is the listing projection of a Story.
type StorySummary struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
	Slug  string    `json:"slug" db:"slug"`
}

// PaginationMeta accompanies every paginated response.
type PaginationMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// SortOrder is the sort direction for listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
