package vault

import (
	"regexp"

	"github.com/jlinoff/pam/internal/config"
)

// matchAll is the pattern substituted for empty or invalid queries so that
// a half-typed expression never breaks the view.
const matchAll = "."

// SearchResult reports which records matched a query.
type SearchResult struct {
	// MatchedTitles holds the titles of the matching records, for
	// visibility decisions.
	MatchedTitles map[string]struct{}
	// Count is the number of matching records, for display.
	Count int
}

// Matched reports whether the record with the given title matched.
func (r SearchResult) Matched(title string) bool {
	_, ok := r.MatchedTitles[title]
	return ok
}

// SearchEngine evaluates regular-expression queries against the store. It
// remembers the last query string so callers can re-run it after an
// operation that changed the store (load, save, edit) without a new
// keystroke.
type SearchEngine struct {
	lastQuery string
}

// NewSearchEngine returns an engine with an empty (match-everything) query
// history.
func NewSearchEngine() *SearchEngine {
	return &SearchEngine{}
}

// LastQuery returns the most recent query string passed to Search.
func (e *SearchEngine) LastQuery() string {
	return e.lastQuery
}

// Search evaluates query against every record in the store and returns the
// match set. The query is cached for Repeat.
//
// An empty query matches everything. A query that fails to compile as a
// regular expression also matches everything; partial expressions are
// expected while the user is typing and must never surface an error.
//
// Per record the checks run in strict precedence, short-circuiting on the
// first hit: hidden-inactive policy, then title, then field names, then raw
// field values, each gated by its config toggle.
func (e *SearchEngine) Search(store *Store, query string, cfg *config.Config) SearchResult {
	e.lastQuery = query
	re := compileQuery(query, cfg.SearchCaseInsensitive)

	result := SearchResult{MatchedTitles: map[string]struct{}{}}
	for _, r := range store.Records() {
		if cfg.HideInactiveRecords && !r.Active {
			continue
		}
		if !recordMatches(r, re, cfg) {
			continue
		}
		result.MatchedTitles[r.Title] = struct{}{}
		result.Count++
	}
	return result
}

// Repeat re-runs the last query, or a match-everything query if there was
// none yet.
func (e *SearchEngine) Repeat(store *Store, cfg *config.Config) SearchResult {
	return e.Search(store, e.lastQuery, cfg)
}

func recordMatches(r *Record, re *regexp.Regexp, cfg *config.Config) bool {
	if cfg.SearchRecordTitles && re.MatchString(r.Title) {
		return true
	}
	if cfg.SearchRecordFieldNames {
		for _, f := range r.Fields {
			if re.MatchString(f.Name) {
				return true
			}
		}
	}
	if cfg.SearchRecordFieldVals {
		for _, f := range r.Fields {
			// Raw values on purpose: masked passwords would never match.
			if re.MatchString(f.Value) {
				return true
			}
		}
	}
	return false
}

func compileQuery(query string, caseInsensitive bool) *regexp.Regexp {
	if query == "" {
		query = matchAll
	}
	if caseInsensitive {
		query = "(?i)" + query
	}
	re, err := regexp.Compile(query)
	if err != nil {
		if caseInsensitive {
			return regexp.MustCompile("(?i)" + matchAll)
		}
		return regexp.MustCompile(matchAll)
	}
	return re
}
