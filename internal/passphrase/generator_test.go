package passphrase

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
)

// scriptedSource returns queued values modulo n.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// TestGenerateScripted tests exact output for a scripted random source.
func TestGenerateScripted(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		values   []int
		expected string
	}{
		{
			name:     "identity shuffle keeps token order",
			values:   []int{0, 0, 0, 0, 0, 1, 5, 4, 3, 2, 1},
			expected: "BraveTiger10100!@",
		},
		{
			name:     "always swapping with the first slot",
			values:   []int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
			expected: "Tiger10100!@Brave",
		},
		{
			name:     "upper bounds of every range",
			values:   []int{99, 99, 89, 899, 6, 6, 5, 4, 3, 2, 1},
			expected: "ZestyNightshade99999**",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(WithSource(&scriptedSource{values: tc.values}))
			if got := gen.Generate(); got != tc.expected {
				t.Errorf("Generate() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestGenerateDeterministicSeed tests that equal seeds yield equal passphrases.
func TestGenerateDeterministicSeed(t *testing.T) {
	t.Parallel()

	a := NewGenerator(WithSource(rand.New(rand.NewPCG(7, 11))))
	b := NewGenerator(WithSource(rand.New(rand.NewPCG(7, 11))))

	for range 20 {
		if x, y := a.Generate(), b.Generate(); x != y {
			t.Fatalf("expected equal output for equal seeds, got %q and %q", x, y)
		}
	}
}

// tokenKind classifies a token by the domain it was drawn from.
func tokenKind(token string) string {
	switch {
	case slices.Contains(defaultAdjectives, token):
		return "adjective"
	case slices.Contains(defaultNouns, token):
		return "noun"
	case slices.Contains(defaultSymbols, token):
		return "symbol"
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return "invalid"
	}
	switch {
	case n >= MinShortNumber && n <= MaxShortNumber:
		return "short"
	case n >= MinLongNumber && n <= MaxLongNumber:
		return "long"
	}
	return "invalid"
}

// TestGenerateTokensDomains tests that every passphrase holds one token from
// each domain and two symbols.
func TestGenerateTokensDomains(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(WithSource(rand.New(rand.NewPCG(1, 2))))

	for range 500 {
		tokens := gen.GenerateTokens()
		if len(tokens) != TokenCount {
			t.Fatalf("expected %d tokens, got %d", TokenCount, len(tokens))
		}

		counts := map[string]int{}
		for _, tok := range tokens {
			counts[tokenKind(tok)]++
		}
		expected := map[string]int{"adjective": 1, "noun": 1, "short": 1, "long": 1, "symbol": 2}
		for kind, want := range expected {
			if counts[kind] != want {
				t.Fatalf("tokens %q: expected %d %s, got %d", tokens, want, kind, counts[kind])
			}
		}
		if counts["invalid"] != 0 {
			t.Fatalf("tokens %q contain an invalid token", tokens)
		}
	}
}

// TestGenerateJoinsTokens tests that Generate concatenates without a separator.
func TestGenerateJoinsTokens(t *testing.T) {
	t.Parallel()

	a := NewGenerator(WithSource(rand.New(rand.NewPCG(3, 4))))
	b := NewGenerator(WithSource(rand.New(rand.NewPCG(3, 4))))

	tokens := a.GenerateTokens()
	if got := b.Generate(); got != strings.Join(tokens, "") {
		t.Errorf("Generate() = %q, expected %q", got, strings.Join(tokens, ""))
	}
}

// TestGenerateShuffleUniform tests that each token lands in every position
// with roughly equal frequency.
func TestGenerateShuffleUniform(t *testing.T) {
	t.Parallel()

	const runs = 6000
	const expected = runs / TokenCount
	const tolerance = 200

	gen := NewGenerator(WithSource(rand.New(rand.NewPCG(42, 1024))))

	positions := map[string][]int{
		"adjective": make([]int, TokenCount),
		"noun":      make([]int, TokenCount),
		"short":     make([]int, TokenCount),
		"long":      make([]int, TokenCount),
	}
	for range runs {
		for i, tok := range gen.GenerateTokens() {
			if p, ok := positions[tokenKind(tok)]; ok {
				p[i]++
			}
		}
	}

	for kind, counts := range positions {
		for i, c := range counts {
			if c < expected-tolerance || c > expected+tolerance {
				t.Errorf("%s at position %d: %d occurrences, expected %d±%d", kind, i, c, expected, tolerance)
			}
		}
	}
}

// TestGenerateDefaultSource tests the crypto-backed default generator.
func TestGenerateDefaultSource(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for range 20 {
		p := Generate()
		if p == "" {
			t.Fatal("expected non-empty passphrase")
		}
		seen[p] = true
	}
	if len(seen) < 2 {
		t.Error("expected different passphrases from the default source")
	}
}

// TestWordLists tests the built-in lists.
func TestWordLists(t *testing.T) {
	t.Parallel()

	for name, list := range map[string][]string{"adjectives": Adjectives(), "nouns": Nouns()} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if len(list) != 100 {
				t.Errorf("expected 100 entries, got %d", len(list))
			}
			seen := map[string]bool{}
			for _, w := range list {
				if seen[w] {
					t.Errorf("duplicate entry %q", w)
				}
				seen[w] = true
			}
		})
	}

	if got := len(Symbols()); got != 7 {
		t.Errorf("expected 7 symbols, got %d", got)
	}
}

// TestWithExtraWords tests merging words from configuration.
func TestWithExtraWords(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(WithExtraWords([]string{"Sleepy", " ", "Brave"}, []string{"Badger"}))
	adjectives, nouns := gen.WordCounts()
	if adjectives != 101 {
		t.Errorf("expected 101 adjectives, got %d", adjectives)
	}
	if nouns != 101 {
		t.Errorf("expected 101 nouns, got %d", nouns)
	}

	if a, _ := NewGenerator().WordCounts(); a != 100 {
		t.Errorf("built-in list must not be mutated, got %d adjectives", a)
	}
}

// TestWithSourceNil tests that a nil source keeps the default.
func TestWithSourceNil(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(WithSource(nil))
	if gen.Generate() == "" {
		t.Error("expected a passphrase from the default source")
	}
}
