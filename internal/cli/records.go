package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/passgen"
	"github.com/jlinoff/pam/internal/vault"
)

// List prints the records that match the current search, in store order.
func (a *App) List(ctx context.Context) error {
	result := a.engine.Repeat(a.store, a.config)
	for _, r := range a.store.Records() {
		if !result.Matched(r.Title) {
			continue
		}
		marker := ""
		if !r.Active {
			marker = " (inactive)"
		}
		printf(a.out, "%s%s", r.Title, marker)
	}
	statusf(a.out, "%d records", result.Count)
	return nil
}

// Show prints one record with display-formatted field values (passwords
// masked, urls as links).
func (a *App) Show(ctx context.Context, args []string) error {
	title, err := a.titleArg(args, "Record title to show")
	if err != nil {
		return err
	}
	r := a.store.Find(title)
	if r == nil {
		errorf(a.out, "record not found: %q", title)
		return common.ErrorNotFound
	}

	printf(a.out, "%s", r.Title)
	printf(a.out, "  active: %v", r.Active)
	printf(a.out, "  created: %s", r.Created)
	for _, f := range r.Fields {
		printf(a.out, "  %s (%s): %s", f.Name, f.Type, vault.DisplayValue(f))
	}
	return nil
}

// Search filters records by a regular expression. With no argument the last
// query is repeated.
func (a *App) Search(ctx context.Context, args []string) error {
	var result vault.SearchResult
	if len(args) == 0 {
		result = a.engine.Repeat(a.store, a.config)
	} else {
		result = a.engine.Search(a.store, strings.Join(args, " "), a.config)
	}
	for _, title := range a.store.Titles() {
		if result.Matched(title) {
			printf(a.out, "%s", title)
		}
	}
	statusf(a.out, "%d records", result.Count)
	return nil
}

// Add creates a record interactively and inserts it when it validates.
func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Record title", a.out)
	if err != nil {
		return err
	}

	fields, err := a.readNewFields()
	if err != nil {
		return err
	}

	rec := vault.NewRecord(title, fields...)
	if err := vault.ValidateRecord(a.store, rec, ""); err != nil {
		errorf(a.out, "%v\nCANNOT SAVE RECORD", err)
		return err
	}

	a.store.Insert(rec)
	a.log.Info(ctx, "record added", "title", rec.Title, "fields", len(rec.Fields))
	a.refreshSearch()
	return nil
}

// Edit replaces a record. The old record is only removed after the edited
// version validates, so a failed edit never loses data.
func (a *App) Edit(ctx context.Context, args []string) error {
	title, err := a.titleArg(args, "Record title to edit")
	if err != nil {
		return err
	}
	old := a.store.Find(title)
	if old == nil {
		errorf(a.out, "record not found: %q", title)
		return common.ErrorNotFound
	}

	newTitle, err := GetSimpleText(a.reader, fmt.Sprintf("New title (Enter keeps %q)", old.Title), a.out)
	if err != nil {
		return err
	}
	if newTitle == "" {
		newTitle = old.Title
	}

	var fields []vault.Field
	for _, f := range old.Fields {
		prompt := fmt.Sprintf("%s (%s) = %s\nNew value (Enter keeps, '-' deletes the field)",
			f.Name, f.Type, vault.DisplayValue(f))
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch v {
		case "":
			fields = append(fields, f)
		case "-":
			// dropped
		default:
			fields = append(fields, vault.NewField(f.Name, f.Type, v))
		}
	}

	more, err := a.readNewFields()
	if err != nil {
		return err
	}
	fields = append(fields, more...)

	rec := &vault.Record{Title: newTitle, Active: old.Active, Created: old.Created, Fields: fields}
	if err := vault.ValidateRecord(a.store, rec, old.Title); err != nil {
		errorf(a.out, "%v\nCANNOT SAVE RECORD", err)
		return err
	}

	a.store.Delete(old.Title)
	a.store.Insert(rec)
	a.log.Info(ctx, "record edited", "title", rec.Title)
	a.refreshSearch()
	return nil
}

// Clone duplicates a record under a fresh title. Field values are kept or
// blanked according to the cloneFieldValues preference.
func (a *App) Clone(ctx context.Context, args []string) error {
	title, err := a.titleArg(args, "Record title to clone")
	if err != nil {
		return err
	}
	src := a.store.Find(title)
	if src == nil {
		errorf(a.out, "record not found: %q", title)
		return common.ErrorNotFound
	}

	suggested := a.store.UniqueCloneTitle(src.Title)
	newTitle, err := GetSimpleText(a.reader, fmt.Sprintf("Clone title (Enter uses %q)", suggested), a.out)
	if err != nil {
		return err
	}
	if newTitle == "" {
		newTitle = suggested
	}

	rec := src.Clone(newTitle, a.config.CloneFieldValues)
	validate := vault.ValidateRecord
	if !a.config.CloneFieldValues {
		// blanked values get filled in by a later edit
		validate = vault.ValidateTitle
	}
	if err := validate(a.store, rec, ""); err != nil {
		errorf(a.out, "%v\nCANNOT SAVE RECORD", err)
		return err
	}

	a.store.Insert(rec)
	a.log.Info(ctx, "record cloned", "from", src.Title, "to", rec.Title)
	a.refreshSearch()
	return nil
}

// Delete removes a record. A missing title is reported but is not an error;
// the store treats absence as a valid outcome.
func (a *App) Delete(ctx context.Context, args []string) error {
	title, err := a.titleArg(args, "Record title to delete")
	if err != nil {
		return err
	}
	if a.store.Find(title) == nil {
		statusf(a.out, "no record matches %q", title)
		return nil
	}
	a.store.Delete(title)
	a.log.Info(ctx, "record deleted", "title", title)
	a.refreshSearch()
	return nil
}

// Clear deletes every record after confirmation.
func (a *App) Clear(ctx context.Context) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete all %d records?", a.store.Len()), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	a.store.Clear()
	a.log.Info(ctx, "store cleared")
	a.refreshSearch()
	return nil
}

// GenPass prints one cryptic, one hex and five memorable password
// candidates.
func (a *App) GenPass(ctx context.Context) error {
	length := a.config.PasswordRangeLengthDefault
	printf(a.out, "cryptic:   %s", passgen.Cryptic(length, passgen.Alphabet))
	hex, err := common.MakeRandHexString((length + 1) / 2)
	if err != nil {
		return err
	}
	printf(a.out, "hex:       %s", hex[:length])
	opts := passgen.OptionsFromConfig(a.config)
	for i := 0; i < 5; i++ {
		printf(a.out, "memorable: %s", passgen.Memorable(length, opts))
	}
	return nil
}

// Prefs dumps the current preferences as the flat prefs JSON.
func (a *App) Prefs(ctx context.Context) error {
	data, err := json.MarshalIndent(a.config, "", "  ")
	if err != nil {
		return err
	}
	printf(a.out, "%s", data)
	return nil
}

// titleArg takes the record title from the command arguments or prompts for
// it.
func (a *App) titleArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

// readNewFields interactively collects fields until an empty name is
// entered. Field types come from the predefined name→type map, falling back
// to an explicit prompt.
func (a *App) readNewFields() ([]vault.Field, error) {
	var fields []vault.Field
	for {
		name, err := GetSimpleText(a.reader, "Field name (Enter to finish)", a.out)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return fields, nil
		}

		typ, err := a.fieldTypeFor(name)
		if err != nil {
			return nil, err
		}

		value, err := a.readFieldValue(name, typ)
		if err != nil {
			return nil, err
		}
		fields = append(fields, vault.NewField(name, typ, value))
	}
}

func (a *App) fieldTypeFor(name string) (vault.FieldType, error) {
	if t, ok := a.config.PredefinedRecordFields[strings.ToLower(name)]; ok {
		return vault.FieldType(t), nil
	}
	entered, err := GetSimpleText(a.reader,
		fmt.Sprintf("Field type (Enter for %s)", a.config.PredefinedRecordFieldsDefault), a.out)
	if err != nil {
		return "", err
	}
	if entered == "" {
		entered = a.config.PredefinedRecordFieldsDefault
	}
	typ := vault.FieldType(entered)
	if !vault.KnownFieldType(typ) {
		warnf(a.out, "unrecognized field type %q, treating it as opaque text", entered)
	}
	return typ, nil
}

func (a *App) readFieldValue(name string, typ vault.FieldType) (string, error) {
	switch typ {
	case vault.FieldTypeTextarea, vault.FieldTypeHTML:
		return GetMultiline(a.reader, fmt.Sprintf("Value for %s", name), a.out)
	case vault.FieldTypePassword:
		pw, err := GetPassword(fmt.Sprintf("Value for %s (Enter generates one): ", name), a.out)
		if err != nil {
			return "", err
		}
		value := string(pw)
		common.WipeByteArray(pw)
		if value == "" {
			value = passgen.Cryptic(a.config.PasswordRangeLengthDefault, passgen.Alphabet)
			statusf(a.out, "generated a %d character password", len(value))
		}
		return value, nil
	default:
		return GetSimpleText(a.reader, fmt.Sprintf("Value for %s", name), a.out)
	}
}

// refreshSearch re-runs the last search so the visible set tracks store
// changes without a new keystroke.
func (a *App) refreshSearch() {
	a.engine.Repeat(a.store, a.config)
}
