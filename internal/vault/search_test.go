package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlinoff/pam/internal/config"
)

func searchStore() *Store {
	s := NewStore()
	s.Insert(NewRecord("GitHub",
		NewField("login", FieldTypeText, "joe"),
		NewField("password", FieldTypePassword, "hunter2"),
		NewField("url", FieldTypeURL, "https://github.com"),
	))
	s.Insert(NewRecord("Work Email",
		NewField("account", FieldTypeEmail, "joe@example.com"),
	))
	old := NewRecord("Old Bank", NewField("account", FieldTypeText, "12345"))
	old.Active = false
	s.Insert(old)
	return s
}

func searchConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestSearchTitles(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	e := NewSearchEngine()

	got := e.Search(s, "github", cfg)
	assert.Equal(t, 1, got.Count)
	assert.True(t, got.Matched("GitHub"))
	assert.False(t, got.Matched("Work Email"))
}

func TestSearchCaseSensitivityToggle(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	cfg.SearchCaseInsensitive = false
	e := NewSearchEngine()

	assert.Equal(t, 0, e.Search(s, "github", cfg).Count)
	assert.Equal(t, 1, e.Search(s, "GitHub", cfg).Count)
}

func TestSearchFieldNamesToggle(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	e := NewSearchEngine()

	// "account" appears only as a field name
	assert.Equal(t, 0, e.Search(s, "account", cfg).Count)

	cfg.SearchRecordFieldNames = true
	got := e.Search(s, "account", cfg)
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.Matched("Work Email"))
	assert.True(t, got.Matched("Old Bank"))
}

func TestSearchFieldValuesToggle(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	e := NewSearchEngine()

	assert.Equal(t, 0, e.Search(s, "hunter2", cfg).Count)

	// raw values are searched, so masked passwords still match
	cfg.SearchRecordFieldVals = true
	got := e.Search(s, "hunter2", cfg)
	assert.Equal(t, 1, got.Count)
	assert.True(t, got.Matched("GitHub"))
}

func TestSearchAllTogglesDisabled(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	cfg.SearchRecordTitles = false
	cfg.SearchRecordFieldNames = false
	cfg.SearchRecordFieldVals = false

	got := NewSearchEngine().Search(s, ".", cfg)
	assert.Equal(t, 0, got.Count)
}

func TestSearchCountsEachRecordOnce(t *testing.T) {
	s := NewStore()
	s.Insert(NewRecord("joe site",
		NewField("joe-name", FieldTypeText, "joe"),
		NewField("joe-alias", FieldTypeText, "joe again"),
	))
	cfg := searchConfig()
	cfg.SearchRecordFieldNames = true
	cfg.SearchRecordFieldVals = true

	got := NewSearchEngine().Search(s, "joe", cfg)
	assert.Equal(t, 1, got.Count)
}

func TestSearchHidesInactive(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	e := NewSearchEngine()

	assert.Equal(t, 3, e.Search(s, "", cfg).Count)

	cfg.HideInactiveRecords = true
	got := e.Search(s, "", cfg)
	assert.Equal(t, 2, got.Count)
	assert.False(t, got.Matched("Old Bank"))
}

func TestSearchInvalidRegexMatchesEverything(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()

	// a half-typed expression must never break the view
	got := NewSearchEngine().Search(s, "(", cfg)
	assert.Equal(t, 3, got.Count)
}

func TestSearchRepeat(t *testing.T) {
	s := searchStore()
	cfg := searchConfig()
	e := NewSearchEngine()

	e.Search(s, "github", cfg)
	assert.Equal(t, "github", e.LastQuery())

	s.Insert(NewRecord("GitHub Enterprise"))
	got := e.Repeat(s, cfg)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "github", e.LastQuery())
}
