// Package vault defines the in-memory record model: typed fields, titled
// records and the ordered record store, plus the search engine that runs
// over it.
package vault

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// FieldType classifies a field value.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypePassword FieldType = "password"
	FieldTypeURL      FieldType = "url"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeTime     FieldType = "time"
	FieldTypeNumber   FieldType = "number"
	FieldTypeHTML     FieldType = "html"
)

// KnownFieldType reports whether t is one of the recognized field types.
// Unknown types are still accepted by NewField and treated as opaque text,
// so that snapshots written by newer versions remain loadable.
func KnownFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypePassword, FieldTypeURL, FieldTypeTextarea,
		FieldTypeDatetime, FieldTypeEmail, FieldTypePhone, FieldTypeTime,
		FieldTypeNumber, FieldTypeHTML:
		return true
	}
	return false
}

// Field is a single named, typed value within a record. Value always holds
// the raw value; masking and markup are display concerns (see DisplayValue).
type Field struct {
	Name  string    `json:"name"`
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
}

// NewField constructs a field. No validation is performed beyond none:
// unrecognized types are accepted as-is (forward compatibility).
func NewField(name string, typ FieldType, value string) Field {
	return Field{Name: name, Type: typ, Value: value}
}

// DisplayValue returns the display form of the field as a pure function of
// its type and raw value. Passwords are masked with one '*' per character,
// url values become anchors when they parse as URLs, textarea values are
// wrapped in <pre> to keep line breaks and html values pass through so
// their markup survives.
func DisplayValue(f Field) string {
	switch f.Type {
	case FieldTypePassword:
		return strings.Repeat("*", utf8.RuneCountInString(f.Value))
	case FieldTypeURL:
		if IsURL(f.Value) {
			return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, f.Value, f.Value)
		}
		return f.Value
	case FieldTypeTextarea:
		return "<pre>" + f.Value + "</pre>"
	default:
		return f.Value
	}
}

// IsURL reports whether the value is a URL. It is scheme-agnostic: the value
// must contain "://" and parse cleanly, nothing more. Used to decide whether
// a url field renders as a link.
func IsURL(value string) bool {
	if !strings.Contains(value, "://") {
		return false
	}
	u, err := url.Parse(value)
	return err == nil && u.Scheme != ""
}
