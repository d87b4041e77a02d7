package snapshot

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/config"
	"github.com/jlinoff/pam/internal/vault"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func testStore() *vault.Store {
	s := vault.NewStore()
	s.Insert(&vault.Record{
		Title:   "GitHub",
		Active:  true,
		Created: "2024-05-01T10:00:00Z",
		Fields: []vault.Field{
			vault.NewField("login", vault.FieldTypeText, "joe"),
			vault.NewField("password", vault.FieldTypePassword, "hunter2"),
		},
	})
	s.Insert(&vault.Record{
		Title:   "Old Bank",
		Active:  false,
		Created: "2020-01-01T00:00:00Z",
		Fields:  []vault.Field{vault.NewField("account", vault.FieldTypeText, "12345")},
	})
	return s
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	src := testStore()
	cfg := testConfig()

	data, err := Serialize(src, cfg, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	dst := vault.NewStore()
	stats, err := Deserialize(data, dst, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 0, stats.Skipped)
	assert.Empty(t, stats.Warning)

	if diff := cmp.Diff(src.Records(), dst.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeWritesMetaAndRawValues(t *testing.T) {
	data, err := Serialize(testStore(), testConfig(), time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2026-08-31T12:00:00Z", doc.Meta.DateSaved)
	assert.Equal(t, FormatVersion, doc.Meta.FormatVersion)
	require.NotNil(t, doc.Prefs)
	// passwords are stored raw, never masked
	assert.Equal(t, "hunter2", doc.Records[0].Fields[1].Value)
}

func TestDeserializeDefaultsForOldDocuments(t *testing.T) {
	doc := []byte(`{
		"meta": {"date-saved": "2020-01-01T00:00:00Z", "format-version": "1.0.0"},
		"records": [{"title": "Legacy", "fields": [{"name": "n", "type": "text", "value": "v"}]}]
	}`)

	store := vault.NewStore()
	stats, err := Deserialize(doc, store, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Loaded)

	r := store.Find("Legacy")
	require.NotNil(t, r)
	assert.True(t, r.Active)
	assert.Equal(t, CreatedSentinel, r.Created)
}

func TestDeserializeDupStrategies(t *testing.T) {
	doc := []byte(`{"records": [{"title": "A", "fields": [{"name": "n", "type": "text", "value": "new"}]}]}`)

	existing := func() *vault.Store {
		s := vault.NewStore()
		s.Insert(&vault.Record{Title: "A", Active: true, Created: CreatedSentinel,
			Fields: []vault.Field{vault.NewField("n", vault.FieldTypeText, "old")}})
		return s
	}

	t.Run("ignore keeps the existing record", func(t *testing.T) {
		cfg := testConfig()
		cfg.LoadDupStrategy = config.DupStrategyIgnore
		s := existing()
		stats, err := Deserialize(doc, s, cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Loaded)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, "old", s.Find("A").Fields[0].Value)
	})

	t.Run("replace swaps in the incoming record", func(t *testing.T) {
		cfg := testConfig()
		cfg.LoadDupStrategy = config.DupStrategyReplace
		s := existing()
		stats, err := Deserialize(doc, s, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, "new", s.Find("A").Fields[0].Value)
	})

	t.Run("allow inserts under a clone title", func(t *testing.T) {
		cfg := testConfig()
		cfg.LoadDupStrategy = config.DupStrategyAllow
		s := existing()
		stats, err := Deserialize(doc, s, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Loaded)
		assert.Equal(t, []string{"A", "A Clone"}, s.Titles())
		assert.Equal(t, "new", s.Find("A Clone").Fields[0].Value)
	})

	t.Run("unknown strategy skips with one warning", func(t *testing.T) {
		cfg := testConfig()
		cfg.LoadDupStrategy = "bogus"
		s := existing()
		twice := []byte(`{"records": [
			{"title": "A", "fields": []},
			{"title": "a", "fields": []}
		]}`)
		stats, err := Deserialize(twice, s, cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Skipped)
		assert.Contains(t, stats.Warning, `"bogus"`)
		assert.Equal(t, 1, s.Len())
	})
}

func TestDeserializePrefsMerge(t *testing.T) {
	t.Run("present keys win", func(t *testing.T) {
		cfg := testConfig()
		require.True(t, cfg.ClearBeforeLoad)
		doc := []byte(`{"prefs": {"clearBeforeLoad": false, "fileName": "other.pam"}, "records": []}`)
		_, err := Deserialize(doc, vault.NewStore(), cfg)
		require.NoError(t, err)
		assert.False(t, cfg.ClearBeforeLoad)
		assert.Equal(t, "other.pam", cfg.FileName)
		// untouched keys keep their values
		assert.True(t, cfg.SearchRecordTitles)
	})

	t.Run("absent prefs block changes nothing", func(t *testing.T) {
		cfg := testConfig()
		before, err := json.Marshal(cfg)
		require.NoError(t, err)
		_, err = Deserialize([]byte(`{"records": []}`), vault.NewStore(), cfg)
		require.NoError(t, err)
		after, err := json.Marshal(cfg)
		require.NoError(t, err)
		assert.JSONEq(t, string(before), string(after))
	})
}

func TestDeserializeParseErrorLeavesStoreUntouched(t *testing.T) {
	store := testStore()
	before := store.Titles()

	_, err := Deserialize([]byte("this is not json"), store, testConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrParse))
	assert.Equal(t, before, store.Titles())
}
