package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlinoff/pam/internal/config"
)

func TestCryptic(t *testing.T) {
	got := Cryptic(20, Alphabet)
	assert.Len(t, got, 20)
	for _, c := range got {
		assert.Contains(t, Alphabet, string(c))
	}

	hex := Cryptic(32, HexDigits)
	assert.Len(t, hex, 32)
	for _, c := range hex {
		assert.Contains(t, HexDigits, string(c))
	}

	assert.Equal(t, "", Cryptic(0, Alphabet))
	assert.Equal(t, "", Cryptic(-1, Alphabet))
	assert.Equal(t, "", Cryptic(10, ""))
}

func defaultOptions() Options {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return OptionsFromConfig(cfg)
}

func TestMemorableHitsExactLength(t *testing.T) {
	opts := defaultOptions()
	for i := 0; i < 10; i++ {
		got := Memorable(20, opts)
		require.Len(t, got, 20)
		assert.Contains(t, got, opts.Separator)
	}
}

func TestMemorablePrefixSuffix(t *testing.T) {
	opts := defaultOptions()
	opts.Prefix = "X-"
	opts.Suffix = "-9"

	got := Memorable(20, opts)
	require.Len(t, got, 20)
	assert.True(t, strings.HasPrefix(got, "X-"))
	assert.True(t, strings.HasSuffix(got, "-9"))
}

func TestMemorableFallsBackWhenImpossible(t *testing.T) {
	opts := defaultOptions()
	opts.MaxTries = 5

	// three two-character words plus separators cannot fit in five characters
	got := Memorable(5, opts)
	assert.True(t, strings.HasPrefix(got, "???"))
	assert.Len(t, got, 3+5)
	for _, c := range got[3:] {
		assert.Contains(t, HexDigits, string(c))
	}
}

func TestRandomWord(t *testing.T) {
	for i := 0; i < 20; i++ {
		w := randomWord(6, 8)
		assert.GreaterOrEqual(t, len(w), 6)
		assert.LessOrEqual(t, len(w), 8)
	}

	// no dictionary word is that long
	assert.Equal(t, "?", randomWord(30, 40))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MemorablePasswordPrefix = "p"
	cfg.MemorablePasswordSuffix = "s"

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "/", opts.Separator)
	assert.Equal(t, 2, opts.MinWordLength)
	assert.Equal(t, 3, opts.MinWords)
	assert.Equal(t, 5, opts.MaxWords)
	assert.Equal(t, 10000, opts.MaxTries)
	assert.Equal(t, "p", opts.Prefix)
	assert.Equal(t, "s", opts.Suffix)
}
