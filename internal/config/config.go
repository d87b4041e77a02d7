// Package config holds the runtime settings of the PAM client. The core
// packages (vault, snapshot, cryptox) treat a Config as an immutable
// per-operation input; only the snapshot prefs merge replaces it wholesale.
package config

// Duplicate-load strategies understood by the snapshot codec.
const (
	DupStrategyIgnore  = "ignore"
	DupStrategyReplace = "replace"
	DupStrategyAllow   = "allow"
)

// Passphrase-cache strategies. Outside a browser only "none" (never cache)
// and "global" (cache for the process lifetime) differ in behavior;
// "local" and "session" are accepted for snapshot compatibility and behave
// like "global".
const (
	StoreNone    = "none"
	StoreGlobal  = "global"
	StoreLocal   = "local"
	StoreSession = "session"
)

// Config carries every user preference. The json tags match the flat prefs
// key/value map of the persisted snapshot format, so the same struct serves
// as the prefs DTO: marshalling it produces the prefs block and
// unmarshalling a prefs block over it merges present keys.
type Config struct {
	FileName        string `json:"fileName"`
	FilePass        string `json:"-"`
	PersistentStore string `json:"persistentStore"`

	SearchCaseInsensitive  bool `json:"searchCaseInsensitive"`
	SearchRecordTitles     bool `json:"searchRecordTitles"`
	SearchRecordFieldNames bool `json:"searchRecordFieldNames"`
	SearchRecordFieldVals  bool `json:"searchRecordFieldValues"`
	HideInactiveRecords    bool `json:"hideInactiveRecords"`

	ClearBeforeLoad bool   `json:"clearBeforeLoad"`
	LoadDupStrategy string `json:"loadDupStrategy"`

	CloneFieldValues bool `json:"cloneFieldValues"`

	PasswordRangeLengthDefault int `json:"passwordRangeLengthDefault"`
	PasswordRangeMinLength     int `json:"passwordRangeMinLength"`
	PasswordRangeMaxLength     int `json:"passwordRangeMaxLength"`

	MemorablePasswordWordSeparator string `json:"memorablePasswordWordSeparator"`
	MemorablePasswordMinWordLength int    `json:"memorablePasswordMinWordLength"`
	MemorablePasswordMinWords      int    `json:"memorablePasswordMinWords"`
	MemorablePasswordMaxWords      int    `json:"memorablePasswordMaxWords"`
	MemorablePasswordMaxTries      int    `json:"memorablePasswordMaxTries"`
	MemorablePasswordPrefix        string `json:"memorablePasswordPrefix"`
	MemorablePasswordSuffix        string `json:"memorablePasswordSuffix"`

	// PredefinedRecordFields maps a field name offered by the editor to its
	// field type, e.g. "password" -> "password", "url" -> "url".
	PredefinedRecordFields        map[string]string `json:"predefinedRecordFields"`
	PredefinedRecordFieldsDefault string            `json:"predefinedRecordFieldsDefault"`
}

// LoadDefaults populates c with the stock preferences.
func (c *Config) LoadDefaults() {
	c.FileName = "example.pam"
	c.FilePass = ""
	c.PersistentStore = StoreGlobal

	c.SearchCaseInsensitive = true
	c.SearchRecordTitles = true
	c.SearchRecordFieldNames = false
	c.SearchRecordFieldVals = false
	c.HideInactiveRecords = false

	c.ClearBeforeLoad = true
	c.LoadDupStrategy = DupStrategyIgnore

	c.CloneFieldValues = true

	c.PasswordRangeLengthDefault = 20
	c.PasswordRangeMinLength = 12
	c.PasswordRangeMaxLength = 32

	c.MemorablePasswordWordSeparator = "/"
	c.MemorablePasswordMinWordLength = 2
	c.MemorablePasswordMinWords = 3
	c.MemorablePasswordMaxWords = 5
	c.MemorablePasswordMaxTries = 10000
	c.MemorablePasswordPrefix = ""
	c.MemorablePasswordSuffix = ""

	c.PredefinedRecordFields = map[string]string{
		"account":  "text",
		"datetime": "datetime",
		"email":    "email",
		"host":     "text",
		"key":      "password",
		"login":    "text",
		"name":     "text",
		"note":     "textarea",
		"number":   "number",
		"phone":    "phone",
		"password": "password",
		"secret":   "password",
		"text":     "text",
		"textarea": "textarea",
		"time":     "time",
		"url":      "url",
		"username": "text",
	}
	c.PredefinedRecordFieldsDefault = "text"
}

// ValidDupStrategy reports whether s is a recognized duplicate-load
// strategy. The codec does not reject unknown values up front (the snapshot
// may carry them); it skips duplicates and warns once instead.
func ValidDupStrategy(s string) bool {
	switch s {
	case DupStrategyIgnore, DupStrategyReplace, DupStrategyAllow:
		return true
	}
	return false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a JSON file (if one was named) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
