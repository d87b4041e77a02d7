package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/config"
	"github.com/jlinoff/pam/internal/vault"
)

// LoadStats reports what Deserialize accepted, for caller display.
type LoadStats struct {
	// Loaded is the number of records inserted into the store.
	Loaded int
	// Active / Inactive split Loaded by record state.
	Active   int
	Inactive int
	// Skipped counts incoming records dropped by the duplicate policy.
	Skipped int
	// Warning carries the single aggregated message emitted when the
	// configured duplicate strategy is unrecognized. Empty otherwise.
	Warning string
}

// Serialize builds the meta/prefs/records JSON document from the store and
// configuration. Field values are the raw values for every type; masking is
// a presentation concern and must never leak into the snapshot.
func Serialize(store *vault.Store, cfg *config.Config, now time.Time) ([]byte, error) {
	prefs, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal prefs: %w", err)
	}

	doc := Document{
		Meta: Meta{
			DateSaved:     now.UTC().Format(time.RFC3339),
			FormatVersion: FormatVersion,
		},
		Prefs:   prefs,
		Records: make([]RecordDoc, 0, store.Len()),
	}

	for _, r := range store.Records() {
		active := r.Active
		rec := RecordDoc{
			Title:   r.Title,
			Active:  &active,
			Created: r.Created,
			Fields:  make([]FieldDoc, 0, len(r.Fields)),
		}
		for _, f := range r.Fields {
			rec.Fields = append(rec.Fields, FieldDoc{
				Name:  f.Name,
				Type:  string(f.Type),
				Value: f.Value,
			})
		}
		doc.Records = append(doc.Records, rec)
	}

	return json.Marshal(doc)
}

// Deserialize parses a snapshot document and merges its records into the
// store in document order, applying cfg.LoadDupStrategy to title
// collisions:
//
//   - ignore:  skip the incoming record
//   - replace: delete the existing record, insert the incoming one
//   - allow:   insert under a synthesized "<title> Clone"/"<title> CloneN" title
//   - anything else: skip, and surface one warning for the whole batch
//
// Records missing the active flag default to active; records missing the
// created timestamp get CreatedSentinel, so older documents stay loadable.
// When the document carries a prefs block it is merged into cfg (a missing
// prefs key means no configuration changes).
//
// A JSON parse failure aborts the whole load with common.ErrParse and zero
// mutation to the store or config. When cfg.ClearBeforeLoad is set the
// caller clears the store before calling; Deserialize itself is always
// additive.
func Deserialize(data []byte, store *vault.Store, cfg *config.Config) (*LoadStats, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParse, err)
	}

	if doc.Prefs != nil {
		if err := cfg.MergePrefs(doc.Prefs); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrParse, err)
		}
	}

	stats := &LoadStats{}
	for _, row := range doc.Records {
		title := row.Title
		if store.Find(title) != nil {
			switch cfg.LoadDupStrategy {
			case config.DupStrategyIgnore:
				stats.Skipped++
				continue
			case config.DupStrategyReplace:
				store.Delete(title)
			case config.DupStrategyAllow:
				title = store.UniqueCloneTitle(title)
			default:
				if stats.Warning == "" {
					stats.Warning = fmt.Sprintf(
						"invalid loadDupStrategy %q, duplicates will be ignored",
						cfg.LoadDupStrategy)
				}
				stats.Skipped++
				continue
			}
		}

		active := true
		if row.Active != nil {
			active = *row.Active
		}
		created := row.Created
		if created == "" {
			created = CreatedSentinel
		}

		fields := make([]vault.Field, 0, len(row.Fields))
		for _, f := range row.Fields {
			fields = append(fields, vault.NewField(f.Name, vault.FieldType(f.Type), f.Value))
		}

		store.Insert(&vault.Record{
			Title:   title,
			Active:  active,
			Created: created,
			Fields:  fields,
		})

		stats.Loaded++
		if active {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}

	return stats, nil
}
