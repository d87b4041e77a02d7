// Package snapshot serializes the record store and preferences into the
// persisted JSON document format and reconstructs them from it, applying
// the duplicate-title policy during merge.
package snapshot

import "encoding/json"

// FormatVersion is written into every snapshot's meta block.
const FormatVersion = "1.1.0"

// CreatedSentinel is the creation timestamp assigned to records loaded from
// documents that predate the created field. The date is deliberately and
// recognizably synthetic.
const CreatedSentinel = "1999-01-01T00:00:00Z"

// Meta describes when and by which format version a snapshot was written.
type Meta struct {
	DateSaved     string `json:"date-saved"`
	FormatVersion string `json:"format-version"`
}

// FieldDoc is the wire form of a single field. Value is always the raw
// value; display masking never reaches the snapshot.
type FieldDoc struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RecordDoc is the wire form of a record. Active and Created are pointers /
// optional so that documents written before those fields existed can be
// told apart from explicit values.
type RecordDoc struct {
	Title   string     `json:"title"`
	Active  *bool      `json:"active,omitempty"`
	Created string     `json:"created,omitempty"`
	Fields  []FieldDoc `json:"fields"`
}

// Document is the complete persisted snapshot. Prefs stays raw JSON so the
// codec can distinguish "no prefs key" (no configuration changes) from an
// empty prefs object.
type Document struct {
	Meta    Meta            `json:"meta"`
	Prefs   json.RawMessage `json:"prefs,omitempty"`
	Records []RecordDoc     `json:"records"`
}
