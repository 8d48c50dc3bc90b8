package config

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// File represents the structure of the .pwmeter configuration file.
type File struct {
	// CommonPasswords are extra entries merged into the built-in common list.
	// Matching is case-insensitive.
	CommonPasswords []string `yaml:"common_passwords,omitempty"`

	// Generator extends the passphrase word lists.
	Generator GeneratorFile `yaml:"generator,omitempty"`

	// History controls the analysis history database.
	History HistoryFile `yaml:"history,omitempty"`
}

// GeneratorFile holds extra generator words.
type GeneratorFile struct {
	Adjectives []string `yaml:"adjectives,omitempty"`
	Nouns      []string `yaml:"nouns,omitempty"`
}

// HistoryFile holds history settings.
type HistoryFile struct {
	// Enabled turns history recording on or off. Nil keeps the default.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Dir overrides the database directory.
	Dir string `yaml:"dir,omitempty"`
}

// GeneratorWords returns the extra adjectives and nouns normalized to the
// title case used by the built-in lists. Blank entries are dropped.
func (cf *File) GeneratorWords() (adjectives, nouns []string) {
	if cf == nil {
		return nil, nil
	}
	// cases.Caser keeps state, so each call gets its own.
	caser := cases.Title(language.English)
	return titleWords(caser, cf.Generator.Adjectives), titleWords(caser, cf.Generator.Nouns)
}

func titleWords(caser cases.Caser, words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, caser.String(w))
	}
	return out
}

// ExtraCommonPasswords returns the configured common password entries.
func (cf *File) ExtraCommonPasswords() []string {
	if cf == nil {
		return nil
	}
	return cf.CommonPasswords
}
