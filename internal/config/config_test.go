package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "example.pam", cfg.FileName)
	assert.Equal(t, StoreGlobal, cfg.PersistentStore)
	assert.True(t, cfg.SearchCaseInsensitive)
	assert.True(t, cfg.SearchRecordTitles)
	assert.False(t, cfg.SearchRecordFieldNames)
	assert.False(t, cfg.SearchRecordFieldVals)
	assert.False(t, cfg.HideInactiveRecords)
	assert.True(t, cfg.ClearBeforeLoad)
	assert.Equal(t, DupStrategyIgnore, cfg.LoadDupStrategy)
	assert.True(t, cfg.CloneFieldValues)
	assert.Equal(t, 20, cfg.PasswordRangeLengthDefault)
	assert.Equal(t, "password", cfg.PredefinedRecordFields["secret"])
	assert.Equal(t, "text", cfg.PredefinedRecordFieldsDefault)
}

func TestValidDupStrategy(t *testing.T) {
	for _, s := range []string{DupStrategyIgnore, DupStrategyReplace, DupStrategyAllow} {
		assert.True(t, ValidDupStrategy(s), s)
	}
	assert.False(t, ValidDupStrategy(""))
	assert.False(t, ValidDupStrategy("merge"))
}

func TestMergePrefs(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.MergePrefs([]byte(`{
		"fileName": "work.pam",
		"searchRecordFieldValues": true,
		"loadDupStrategy": "replace",
		"unknownFutureKey": 42
	}`))
	require.NoError(t, err)

	assert.Equal(t, "work.pam", cfg.FileName)
	assert.True(t, cfg.SearchRecordFieldVals)
	assert.Equal(t, DupStrategyReplace, cfg.LoadDupStrategy)
	// absent keys keep their current values
	assert.True(t, cfg.SearchCaseInsensitive)
	assert.True(t, cfg.ClearBeforeLoad)
}

func TestMergePrefsRejectsBadJson(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.MergePrefs([]byte("not json"))
	require.Error(t, err)
	// a failed merge must not half-apply
	assert.Equal(t, "example.pam", cfg.FileName)
}

func TestFilePassNeverSerializes(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.FilePass = "secret"

	err := cfg.MergePrefs([]byte(`{"fileName": "x.pam"}`))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.FilePass)
}
