package vault

import "fmt"

// Store is the authoritative in-memory collection of records. Records are
// kept in ascending case-insensitive title order at all times. All
// operations are O(N) linear scans; the expected cardinality is tens to low
// hundreds of records, so a scan is sufficient and keeps the invariants
// trivial to audit.
//
// The store is not safe for concurrent use. All mutation is expected to
// happen from a single goroutine (the client loop), mirroring the
// single-threaded event model the snapshot format was designed under.
type Store struct {
	records []*Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Find returns the record whose title matches the given title under
// case-insensitive, whitespace-trimmed comparison, or nil if there is none.
// Absence is a valid outcome, not an error: callers probe defensively.
func (s *Store) Find(title string) *Record {
	want := NormalizeTitle(title)
	for _, r := range s.records {
		if NormalizeTitle(r.Title) == want {
			return r
		}
	}
	return nil
}

// Insert places the record at its sorted position: before the first record
// whose normalized title is strictly greater, else at the end. Title
// uniqueness is the caller's responsibility (validation on edit, duplicate
// strategy on load); Insert itself only maintains order.
func (s *Store) Insert(r *Record) {
	key := NormalizeTitle(r.Title)
	for i, existing := range s.records {
		if NormalizeTitle(existing.Title) > key {
			s.records = append(s.records[:i], append([]*Record{r}, s.records[i:]...)...)
			return
		}
	}
	s.records = append(s.records, r)
}

// Delete removes the record found by Find. It is a no-op if the title is
// absent.
func (s *Store) Delete(title string) {
	want := NormalizeTitle(title)
	for i, r := range s.records {
		if NormalizeTitle(r.Title) == want {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// Clear removes all records.
func (s *Store) Clear() {
	s.records = nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the records in store order. The slice is a copy; the
// records themselves are shared.
func (s *Store) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// Titles returns the record titles in store order.
func (s *Store) Titles() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Title
	}
	return out
}

// UniqueCloneTitle synthesizes a collision-free variant of title by
// appending " Clone", then " Clone1", " Clone2", ... until no record with
// that title exists.
func (s *Store) UniqueCloneTitle(title string) string {
	provisional := title + " Clone"
	idx := 0
	for s.Find(provisional) != nil {
		idx++
		provisional = fmt.Sprintf("%s Clone%d", title, idx)
	}
	return provisional
}
