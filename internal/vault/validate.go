package vault

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jlinoff/pam/internal/common"
)

// fieldRules mirrors Field for validation: the editor requires a non-blank
// name and value, and url-typed values must actually be URLs.
type fieldRules struct {
	Name  string `validate:"required"`
	Value string `validate:"required"`
	Type  FieldType
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateURLField, fieldRules{})
	return v
}

func validateURLField(sl validator.StructLevel) {
	f := sl.Current().Interface().(fieldRules)
	if f.Type == FieldTypeURL && f.Value != "" && !IsURL(f.Value) {
		sl.ReportError(f.Value, "Value", "Value", "pamurl", "")
	}
}

// ValidateRecord checks a record before it is committed to the store by an
// edit, clone or create flow. It reports the FIRST violation only, in field
// order, so the user can fix problems one at a time: empty title, duplicate
// title, empty field name, empty field value, invalid url value.
//
// originalTitle names the record being replaced by an edit; a title equal to
// it (case-insensitively) is not a duplicate. Pass "" for new records.
//
// The returned error wraps common.ErrValidation. The store is never mutated
// here; the caller keeps its edit buffer on failure.
func ValidateRecord(store *Store, r *Record, originalTitle string) error {
	if err := ValidateTitle(store, r, originalTitle); err != nil {
		return err
	}

	title := strings.TrimSpace(r.Title)
	for _, f := range r.Fields {
		rules := fieldRules{
			Name:  strings.TrimSpace(f.Name),
			Value: strings.TrimSpace(f.Value),
			Type:  f.Type,
		}
		if err := recordValidator.Struct(rules); err != nil {
			verrs, ok := err.(validator.ValidationErrors)
			if !ok || len(verrs) == 0 {
				return fmt.Errorf("%w: %v", common.ErrValidation, err)
			}
			return fmt.Errorf("%w: %s", common.ErrValidation, fieldViolation(verrs[0], f, title))
		}
	}
	return nil
}

// ValidateTitle checks only the title rules: non-blank after trimming and
// unique in the store under case-insensitive comparison. Clone commits use
// it on its own, since a clone made without field values carries blanks by
// construction until the user edits it.
func ValidateTitle(store *Store, r *Record, originalTitle string) error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return fmt.Errorf("%w: undefined record title", common.ErrValidation)
	}
	if store.Find(title) != nil && NormalizeTitle(title) != NormalizeTitle(originalTitle) {
		return fmt.Errorf("%w: title already exists: %q", common.ErrValidation, title)
	}
	return nil
}

func fieldViolation(fe validator.FieldError, f Field, title string) string {
	switch {
	case fe.Field() == "Name":
		return fmt.Sprintf("undefined field name in record: %s", title)
	case fe.Tag() == "pamurl":
		return fmt.Sprintf("%q is not a valid URL %q in record: %s", f.Name, f.Value, title)
	default:
		return fmt.Sprintf("undefined field value in %s in record: %s", f.Name, title)
	}
}
