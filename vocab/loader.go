package vocab

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// WordsFile is the general word list inside the assets directory
	WordsFile = "words.txt"
	// FrequencyFile lists common words; only words present in both files are kept
	FrequencyFile = "frequency_list.txt"
)

// CommentPrefixes defines the prefixes that identify comment lines
var CommentPrefixes = []string{"//", "#"}

// Loader reads word lists from an assets directory
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads the word and frequency lists and builds the vocabulary.
// A missing word list falls back to DefaultWords, a missing frequency list disables
// the intersection. Unreadable files and an empty result are errors.
func (l *Loader) Load(filter Filter) (*Vocabulary, error) {
	wordsPath := filepath.Join(l.dir, WordsFile)
	words, err := readLines(wordsPath)
	switch {
	case os.IsNotExist(errors.Cause(err)):
		log.Printf("Word list %s not found, using built-in words", wordsPath)
		words = DefaultWords()
	case err != nil:
		return nil, err
	}

	freqPath := filepath.Join(l.dir, FrequencyFile)
	frequency, err := readLines(freqPath)
	switch {
	case os.IsNotExist(errors.Cause(err)):
		log.Printf("Frequency list %s not found, frequency filter disabled", freqPath)
		frequency = nil
	case err != nil:
		return nil, err
	}

	v, err := New(words, frequency, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "load vocabulary from %s", l.dir)
	}

	log.Printf("Vocabulary loaded: %d words (%d listed, %d frequent, length %d-%d)",
		v.Len(), len(words), len(frequency), filter.MinLen, filter.MaxLen)
	return v, nil
}

// readLines returns the non-empty, non-comment lines of a file, trimmed
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line, ok := contentLine(scanner.Text()); ok {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}

// contentLine trims a line and rejects blanks and comments
func contentLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return "", false
		}
	}
	return trimmed, true
}
