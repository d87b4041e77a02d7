// Package passgen generates cryptic and memorable passwords for password
// fields and for the snapshot passphrase.
package passgen

import (
	"crypto/rand"
	"math/big"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/config"
)

// Character sets for cryptic passwords.
const (
	AlphaLower = "abcdefghijklmnopqrstuvwxyz"
	AlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DecDigits  = "0123456789"
	HexDigits  = "0123456789abcdef"
	Special    = "_-+!./#$%^"
	Alphabet   = AlphaLower + AlphaUpper + DecDigits + Special
)

// maxWordTries bounds the random-word search before giving up on a
// length-constrained word.
const maxWordTries = 1000

// Cryptic returns a random password of the given length drawn from the
// alphabet.
func Cryptic(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	raw := common.GenerateRandByteArray(length)
	out := make([]byte, length)
	for i, b := range raw {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// Options tunes Memorable. The zero value is not useful; build one with
// OptionsFromConfig.
type Options struct {
	Separator     string
	MinWordLength int
	MinWords      int
	MaxWords      int
	MaxTries      int
	Prefix        string
	Suffix        string
}

// OptionsFromConfig extracts the memorable-password settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Separator:     cfg.MemorablePasswordWordSeparator,
		MinWordLength: cfg.MemorablePasswordMinWordLength,
		MinWords:      cfg.MemorablePasswordMinWords,
		MaxWords:      cfg.MemorablePasswordMaxWords,
		MaxTries:      cfg.MemorablePasswordMaxTries,
		Prefix:        cfg.MemorablePasswordPrefix,
		Suffix:        cfg.MemorablePasswordSuffix,
	}
}

// Memorable builds a password of exactly the requested length from random
// dictionary words joined by the separator, with the configured prefix and
// suffix. It retries until the assembled candidate hits the length and the
// word-count limits; when no candidate fits within MaxTries it falls back
// to a cryptic hex password marked with a "???" prefix so the failure is
// visible rather than silent.
func Memorable(length int, opts Options) string {
	for tries := 0; tries < opts.MaxTries; tries++ {
		result := opts.Prefix
		numWords := 0
		for len(result) < length-len(opts.Suffix) {
			numWords++
			word := randomWord(opts.MinWordLength, length)
			if numWords > 1 {
				result += opts.Separator
			}
			result += word
			if numWords > opts.MaxWords {
				break
			}
		}
		result += opts.Suffix
		if numWords >= opts.MinWords && numWords <= opts.MaxWords && len(result) == length {
			return result
		}
	}
	return "???" + Cryptic(length, HexDigits)
}

// randomWord picks a dictionary word whose length lies inside
// [minLen, maxLen], or "?" if none turns up within the try budget.
func randomWord(minLen, maxLen int) string {
	word := words[randomIndex(len(words))]
	for tries := 0; tries < maxWordTries && (len(word) < minLen || len(word) > maxLen); tries++ {
		word = words[randomIndex(len(words))]
	}
	if len(word) < minLen || len(word) > maxLen {
		return "?"
	}
	return word
}

func randomIndex(n int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}
