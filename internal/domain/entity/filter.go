package entity

import "time"

// RecordFilter is a domain-level filter for querying dated records.
// Nil bounds are open.
type RecordFilter struct {
	Type      RecordType
	StartDate *time.Time
	EndDate   *time.Time
}

// Page selects a slice of an ordered result set
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page, normalising bad input
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Normalize().Limit
}

// Normalize fills defaults: page 1, limit 10, limit capped at 100
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}
