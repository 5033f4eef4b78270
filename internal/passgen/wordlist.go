// Package passgen builds human-usable passwords from a curated wordlist,
// scores password strength, and hashes passwords for persistent-session
// verification.
package passgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"OnionShare-NG/internal/errors"
)

// wordPattern matches plain or internally-hyphenated lowercase words
// ("syrup", "drop-down"). Anything else in the wordlist file is a
// packaging bug and rejected at load time.
var wordPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// Wordlist is an ordered list of lowercase words, loaded once at startup
// and immutable afterwards.
type Wordlist []string

// Load reads a wordlist from a one-word-per-line text file.
// A missing file is a fatal configuration error, not something to retry.
func Load(path string) (Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("open", path, errors.ErrFileNotFound)
		}
		return nil, errors.NewFileError("open", path, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return words, nil
}

// Parse reads a wordlist from r, one word per line. Blank lines are
// skipped; any other line that is not a lowercase word is an error.
// An empty list is an error: the password generator cannot work without
// at least one word.
func Parse(r io.Reader) (Wordlist, error) {
	var words Wordlist
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if !wordPattern.MatchString(word) {
			return nil, errors.NewValidationError("wordlist",
				fmt.Sprintf("line %d: %q is not a lowercase word", line, word))
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewFileError("read", "wordlist", err)
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWordlist
	}
	return words, nil
}
