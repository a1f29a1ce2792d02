// Package vocab provides the immutable word set words are spawned from.
package vocab

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// ErrEmptyVocabulary is returned when filtering leaves nothing to spawn
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// Vocabulary is a sorted, de-duplicated, read-only word list safe to share
type Vocabulary struct {
	words []string
}

// Filter bounds word length in runes
type Filter struct {
	MinLen int
	MaxLen int
}

// New builds a vocabulary from words that satisfy filter and also appear in frequency.
// A nil frequency list disables the frequency intersection.
// Words are case-folded and trimmed before comparison.
func New(words, frequency []string, filter Filter) (*Vocabulary, error) {
	fold := cases.Fold()

	var common map[string]struct{}
	if frequency != nil {
		common = make(map[string]struct{}, len(frequency))
		for _, f := range frequency {
			if f = fold.String(strings.TrimSpace(f)); f != "" {
				common[f] = struct{}{}
			}
		}
	}

	v := &Vocabulary{}
	seen := make(map[string]struct{})
	for _, w := range words {
		w = fold.String(strings.TrimSpace(w))
		if !filter.accepts(w) {
			continue
		}
		if common != nil {
			if _, ok := common[w]; !ok {
				continue
			}
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		v.words = append(v.words, w)
	}

	if len(v.words) == 0 {
		return nil, ErrEmptyVocabulary
	}
	slices.Sort(v.words)
	return v, nil
}

// accepts checks length bounds and rejects words containing whitespace
func (f Filter) accepts(w string) bool {
	n := utf8.RuneCountInString(w)
	if n == 0 || n < f.MinLen || (f.MaxLen > 0 && n > f.MaxLen) {
		return false
	}
	return !strings.ContainsAny(w, " \t")
}

// Len returns the number of words
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}

// PickRandomWord returns a uniformly random word
func (v *Vocabulary) PickRandomWord(rng *rand.Rand) string {
	return v.words[rng.IntN(len(v.words))]
}
