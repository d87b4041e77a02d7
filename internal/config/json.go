package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jlinoff/pam/internal/flagx"
)

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags (via flagx.JsonConfigFlags); when no path
// was given nothing is loaded. The file uses the same flat key/value shape
// as the snapshot prefs block, so a saved prefs block can be reused as a
// config file directly.
//
// Read or unmarshal errors panic: a config file that was explicitly named
// but cannot be used is not something to silently run without.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := cfg.MergePrefs(data); err != nil {
		panic(err)
	}
}

// MergePrefs merges a flat prefs key/value JSON object into c. Present keys
// overwrite the current values, absent keys keep them; the result replaces
// the configuration wholesale. Unknown keys are ignored for forward
// compatibility.
func (c *Config) MergePrefs(raw json.RawMessage) error {
	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("invalid prefs: %w", err)
	}
	return nil
}
