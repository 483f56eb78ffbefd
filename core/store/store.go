package store

import (
	"errors"
)

// ErrNotFound is returned by FindOne when no document matches the key.
var ErrNotFound = errors.New("document has not been found by given criteria")

// Store is the document store contract used by repositories and the query engine.
type Store interface {
	// FindOne decodes the first document matching key into result.
	FindOne(collection string, key Predicate, result interface{}) error

	// Upsert atomically creates or replaces the document identified by key
	// and decodes the stored document into result.
	Upsert(collection string, key Predicate, doc interface{}, result interface{}) error

	// Find decodes one page of matching documents into result (pointer to slice).
	Find(collection string, p Predicate, page, perPage int, result interface{}) (Page, error)

	// AggregateSum sums a numeric field over every matching document.
	AggregateSum(collection string, p Predicate, field string) (float64, error)
}

// Auditor is implemented by stores able to report natural key collisions.
type Auditor interface {
	Duplicates(collection string, keys ...string) ([]Duplicate, error)
}

// Duplicate describes a natural key held by more than one document.
type Duplicate struct {
	Key   map[string]interface{}
	IDs   []string
	Count int
}

// Page holds pagination metadata of a Find call.
type Page struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// NewPage computes pagination metadata. Last page is never below 1.
func NewPage(total, page, perPage int) Page {
	last := 1
	if perPage > 0 && total > 0 {
		last = (total + perPage - 1) / perPage
	}
	return Page{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    last,
	}
}

// Skip returns the number of documents before the current page.
func (p Page) Skip() int {
	if p.CurrentPage < 1 {
		return 0
	}
	return (p.CurrentPage - 1) * p.PerPage
}
