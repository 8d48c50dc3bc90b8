package passphrase

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// TokenCount is the number of tokens in every passphrase.
const TokenCount = 6

// Number ranges, inclusive.
const (
	MinShortNumber = 10
	MaxShortNumber = 99
	MinLongNumber  = 100
	MaxLongNumber  = 999
)

// Source is the randomness the generator consumes.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// cryptoSource is a math/rand/v2 Source backed by crypto/rand.
type cryptoSource struct{}

// Uint64 returns 64 random bits from the operating system.
func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Generator produces passphrases from fixed word lists.
type Generator struct {
	mu         sync.Mutex
	source     Source
	adjectives []string
	nouns      []string
	symbols    []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithExtraWords merges additional adjectives and nouns into the built-in lists.
// Blank entries and words already present are skipped.
func WithExtraWords(adjectives, nouns []string) Option {
	return func(g *Generator) {
		g.adjectives = mergeWords(g.adjectives, adjectives)
		g.nouns = mergeWords(g.nouns, nouns)
	}
}

// NewGenerator creates a Generator with the built-in word lists.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source:     rand.New(cryptoSource{}),
		adjectives: Adjectives(),
		nouns:      Nouns(),
		symbols:    Symbols(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new passphrase.
func (g *Generator) Generate() string {
	return strings.Join(g.GenerateTokens(), "")
}

// GenerateTokens returns the six shuffled tokens of a new passphrase.
func (g *Generator) GenerateTokens() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	tokens := []string{
		g.pick(g.adjectives),
		g.pick(g.nouns),
		strconv.Itoa(g.between(MinShortNumber, MaxShortNumber)),
		strconv.Itoa(g.between(MinLongNumber, MaxLongNumber)),
		g.pick(g.symbols),
		g.pick(g.symbols),
	}

	// Fisher-Yates.
	for i := len(tokens) - 1; i > 0; i-- {
		j := g.source.IntN(i + 1)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens
}

// WordCounts returns the sizes of the adjective and noun lists.
func (g *Generator) WordCounts() (adjectives, nouns int) {
	return len(g.adjectives), len(g.nouns)
}

func (g *Generator) pick(list []string) string {
	return list[g.source.IntN(len(list))]
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.source.IntN(hi-lo+1)
}

func mergeWords(base, extra []string) []string {
	out := slices.Clone(base)
	for _, w := range extra {
		w = strings.TrimSpace(w)
		if w == "" || slices.Contains(out, w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// defaultGenerator backs the package-level Generate.
var defaultGenerator = NewGenerator()

// Generate returns a new passphrase drawn from crypto/rand.
func Generate() string {
	return defaultGenerator.Generate()
}
