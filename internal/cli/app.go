// Package cli implements the interactive terminal client. It is strictly a
// presentation layer: every record, search and persistence operation is
// delegated to the vault, snapshot and cryptox packages, and the loop runs
// on a single goroutine so store mutations never interleave.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jlinoff/pam/internal/config"
	"github.com/jlinoff/pam/internal/logging"
	"github.com/jlinoff/pam/internal/vault"
)

// App ties the record store, the search engine and the user's preferences
// to the terminal.
type App struct {
	config *config.Config
	store  *vault.Store
	engine *vault.SearchEngine
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an application around an empty store.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	return &App{
		config: cfg,
		store:  vault.NewStore(),
		engine: vault.NewSearchEngine(),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run starts the REPL. It returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printf(a.out, "Welcome to PAM (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s %d)", a.config.FileName, a.store.Len())
}

// cachePassword remembers the snapshot passphrase for the rest of the
// session unless the passphrase-cache strategy is "none".
func (a *App) cachePassword(password string) {
	if a.config.PersistentStore == config.StoreNone {
		return
	}
	a.config.FilePass = password
}

// effectivePassword substitutes the cached passphrase when the user entered
// nothing and caching is enabled.
func (a *App) effectivePassword(entered string) string {
	if entered == "" {
		return a.config.FilePass
	}
	return entered
}
