// Package id allocates collection-local numeric identifiers.
//
// Entity ids are opaque strings holding decimal integers. New ids are
// max(existing)+1, seeded over both pre-existing rows and any rows arriving
// in the same import batch so one batch can never collide with itself.
package id

import "strconv"

// Allocator hands out sequential numeric ids. Not safe for concurrent use;
// callers allocate under the store's lock.
type Allocator struct {
	max int64
}

// NewAllocator seeds an allocator from every id in the given sets.
// Non-numeric ids are ignored.
func NewAllocator(idSets ...[]string) *Allocator {
	a := &Allocator{}
	for _, ids := range idSets {
		for _, s := range ids {
			if n, ok := Numeric(s); ok && n > a.max {
				a.max = n
			}
		}
	}
	return a
}

// Next returns the next unused id. Ids handed out earlier in the allocator's
// lifetime are never reused, even when the rows holding them are deleted.
func (a *Allocator) Next() string {
	a.max++
	return strconv.FormatInt(a.max, 10)
}

// Numeric parses an id string as a positive decimal integer.
func Numeric(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
