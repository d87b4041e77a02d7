package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/cryptox"
	"github.com/jlinoff/pam/internal/filex"
	"github.com/jlinoff/pam/internal/netx"
	"github.com/jlinoff/pam/internal/snapshot"
	"github.com/jlinoff/pam/internal/vault"
)

// isClipboard reports whether the load/save target names the system
// clipboard instead of a file. "copy" is an accepted alias for "clipboard".
func isClipboard(name string) bool {
	return name == "clipboard" || name == "copy"
}

// Load reads a snapshot from a file, an http(s) URL or the clipboard,
// decrypts it when necessary and merges it into the store.
//
// Content beginning with '{' is treated as plaintext JSON and skipped past
// the decryption step entirely, matching how saved snapshots distinguish
// the two storage modes.
func (a *App) Load(ctx context.Context) error {
	name, err := a.sourceName("Load from file, URL or 'clipboard'")
	if err != nil {
		return err
	}

	password, err := a.askPassword()
	if err != nil {
		return err
	}

	content, err := a.readSource(ctx, name)
	if err != nil {
		errorf(a.out, "cannot read %q: %v", name, err)
		return err
	}

	if !strings.HasPrefix(strings.TrimSpace(content), "{") {
		content, err = cryptox.Decrypt(password, content)
		if err != nil {
			errorf(a.out, "cannot decrypt %q: %v", name, err)
			return err
		}
	}

	// The document is parsed against a scratch store; the committed
	// records change only after the whole document has been accepted.
	scratch := vault.NewStore()
	if !a.config.ClearBeforeLoad {
		for _, r := range a.store.Records() {
			scratch.Insert(r)
		}
	}

	stats, err := snapshot.Deserialize([]byte(content), scratch, a.config)
	if err != nil {
		errorf(a.out, "cannot parse %q: %v", name, err)
		return err
	}
	if stats.Warning != "" {
		warnf(a.out, "%s", stats.Warning)
	}

	a.store.Clear()
	for _, r := range scratch.Records() {
		a.store.Insert(r)
	}

	a.cachePassword(password)
	if !isClipboard(name) {
		a.config.FileName = name
	}
	a.refreshSearch()

	a.log.Info(ctx, "snapshot loaded", "source", name,
		"loaded", stats.Loaded, "skipped", stats.Skipped)
	statusf(a.out, "loaded %d records (%d active, %d inactive, %d skipped)",
		stats.Loaded, stats.Active, stats.Inactive, stats.Skipped)
	return nil
}

// Save writes the store and the current preferences to a file or the
// clipboard. An empty password saves plaintext JSON.
func (a *App) Save(ctx context.Context) error {
	name, err := a.sourceName("Save to file or 'clipboard'")
	if err != nil {
		return err
	}
	if netx.IsRemote(name) {
		errorf(a.out, "cannot save to a URL: %q", name)
		return fmt.Errorf("%w: remote save target %q", common.ErrValidation, name)
	}

	password, err := a.askPassword()
	if err != nil {
		return err
	}

	data, err := snapshot.Serialize(a.store, a.config, time.Now())
	if err != nil {
		errorf(a.out, "cannot serialize records: %v", err)
		return err
	}

	content, err := cryptox.Encrypt(password, string(data))
	if err != nil {
		errorf(a.out, "cannot encrypt: %v", err)
		return err
	}

	if isClipboard(name) {
		err = clipboard.WriteAll(content)
	} else {
		err = filex.WriteTextAtomic(name, content)
	}
	if err != nil {
		errorf(a.out, "cannot write %q: %v", name, err)
		return err
	}

	a.cachePassword(password)
	if !isClipboard(name) {
		a.config.FileName = name
	}

	a.log.Info(ctx, "snapshot saved", "target", name, "records", a.store.Len())
	if password == "" {
		warnf(a.out, "saved without encryption")
	}
	statusf(a.out, "saved %d records to %s", a.store.Len(), name)
	return nil
}

func (a *App) sourceName(what string) (string, error) {
	name, err := GetSimpleText(a.reader,
		fmt.Sprintf("%s (Enter uses %q)", what, a.config.FileName), a.out)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = a.config.FileName
	}
	return name, nil
}

// askPassword reads the snapshot passphrase without echo. An empty entry
// falls back to the session cache when one exists.
func (a *App) askPassword() (string, error) {
	pw, err := GetPassword("Password (Enter reuses the cached one, if any): ", a.out)
	if err != nil {
		return "", err
	}
	password := a.effectivePassword(string(pw))
	common.WipeByteArray(pw)
	return password, nil
}

func (a *App) readSource(ctx context.Context, name string) (string, error) {
	switch {
	case isClipboard(name):
		return clipboard.ReadAll()
	case netx.IsRemote(name):
		return netx.FetchText(ctx, name)
	default:
		return filex.ReadText(name)
	}
}
