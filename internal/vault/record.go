package vault

import (
	"strings"
	"time"
)

// Record is a titled, ordered collection of fields plus lifecycle metadata.
// The title is the record's key; comparisons are case-insensitive and
// whitespace-trimmed. Field order is meaningful and preserved.
type Record struct {
	Title   string  `json:"title"`
	Active  bool    `json:"active"`
	Created string  `json:"created"`
	Fields  []Field `json:"fields"`
}

// NewRecord constructs an active record with the creation timestamp set to
// the current time in RFC 3339 UTC form.
func NewRecord(title string, fields ...Field) *Record {
	return &Record{
		Title:   title,
		Active:  true,
		Created: time.Now().UTC().Format(time.RFC3339),
		Fields:  fields,
	}
}

// NormalizeTitle returns the canonical form of a title used for lookups and
// ordering: trimmed and lowercased.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Clone returns a deep copy of the record under a new title. The copy keeps
// the original field order. When withValues is false the field values are
// blanked, matching the "clone without values" preference.
func (r *Record) Clone(title string, withValues bool) *Record {
	fields := make([]Field, len(r.Fields))
	copy(fields, r.Fields)
	if !withValues {
		for i := range fields {
			fields[i].Value = ""
		}
	}
	return &Record{
		Title:   title,
		Active:  r.Active,
		Created: time.Now().UTC().Format(time.RFC3339),
		Fields:  fields,
	}
}

// Field returns the first field with the given name, or nil.
func (r *Record) Field(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}
