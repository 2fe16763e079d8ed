package entity

import "fmt"

// SoftRef points at a row by kind and id without a database constraint.
// The referenced row may be gone; resolvers report that as "not found"
// instead of failing.
type SoftRef struct {
	Kind string `json:"kind"`
	ID   uint   `json:"id"`
}

func (r SoftRef) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// IsZero reports whether the reference is unset
func (r SoftRef) IsZero() bool {
	return r.Kind == "" || r.ID == 0
}
