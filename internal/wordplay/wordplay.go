// SPDX-License-Identifier: MPL-2.0

// Package wordplay produces wordplay transformation ideas for a base phrase.
// The default implementation is a static pattern list; the Suggester interface
// leaves room for dictionary- or API-backed implementations later.
package wordplay

import (
	"strings"

	"golang.org/x/exp/slices"
)

// phrasePlaceholder marks where the base phrase is interpolated in a template.
const phrasePlaceholder = "{phrase}"

// patternTemplates are the common wordplay transformations, shared by every
// StaticSuggester. Suggest interpolates into a clone, never into this slice.
var patternTemplates = []string{
	"Add a pun prefix/suffix (e.g., 'NOT " + phrasePlaceholder + "' or '" + phrasePlaceholder + " TOO')",
	"Replace words with homophones",
	"Replace words with rhyming words",
	"Add/remove a letter for a twist",
	"Combine with another phrase for double meaning",
}

type (
	// Suggester returns ordered wordplay suggestions for a phrase.
	Suggester interface {
		Suggest(phrase string) []string
	}

	// StaticSuggester interpolates the phrase into a fixed set of common
	// wordplay patterns. Output order is deterministic.
	StaticSuggester struct {
		patterns []string
	}
)

// NewStaticSuggester creates the default pattern-based suggester.
func NewStaticSuggester() *StaticSuggester {
	return &StaticSuggester{patterns: patternTemplates}
}

// Suggest returns the pattern suggestions for the phrase. Interpolation
// happens in-place on a clone so the stored templates stay untouched and
// callers may mutate the result freely.
func (s *StaticSuggester) Suggest(phrase string) []string {
	suggestions := slices.Clone(s.patterns)
	for i, template := range suggestions {
		suggestions[i] = strings.ReplaceAll(template, phrasePlaceholder, phrase)
	}
	return suggestions
}
