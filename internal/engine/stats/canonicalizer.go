package stats

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a stat name into its comparison form: diacritics stripped,
// lowercased, and every character outside a-z removed.
// "Résistance", "resist" and "RES" become "resistance", "resist" and "res".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// A transformer keeps internal state, so each call builds its own chain.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canonicalizer maps raw stat names onto canonical stat keys
type Canonicalizer struct {
	table *SynonymTable
}

// NewCanonicalizer creates a canonicalizer over table.
// A nil table falls back to DefaultSynonymTable.
func NewCanonicalizer(table *SynonymTable) *Canonicalizer {
	if table == nil {
		table = DefaultSynonymTable()
	}
	return &Canonicalizer{table: table}
}

// Canonicalize returns the canonical key for raw. Unknown names keep their
// normalized form as key, and the empty string maps to "".
// Canonicalize(Canonicalize(x)) == Canonicalize(x) for every x.
func (c *Canonicalizer) Canonicalize(raw string) string {
	normalized := Normalize(raw)
	if key, ok := c.table.Lookup(normalized); ok {
		return key
	}
	return normalized
}

// Table returns the synonym table in use
func (c *Canonicalizer) Table() *SynonymTable {
	return c.table
}
