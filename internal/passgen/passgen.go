package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/Picocrypt/zxcvbn-go"

	"OnionShare-NG/internal/errors"
)

// Generator builds two-word passwords from a loaded wordlist.
// Safe for concurrent use; the wordlist is never mutated after
// construction.
type Generator struct {
	words Wordlist
}

// New creates a Generator. An empty wordlist is an initialization error,
// caught here rather than on every BuildPassword call.
func New(words Wordlist) (*Generator, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWordlist
	}
	return &Generator{words: words}, nil
}

// BuildPassword returns two words picked uniformly at random from the
// wordlist, joined by a hyphen. Some wordlist entries are themselves
// hyphenated compounds ("drop-down", "yo-yo"), so the result has two to
// four lowercase runs:
//
//	syrup-enzyme
//	drop-down-thimble
//	felt-tip-t-shirt
//
// Output never contains numerals, uppercase, or symbols. Picks use
// crypto/rand, so successive calls differ with overwhelming probability.
func (g *Generator) BuildPassword() (string, error) {
	first, err := g.pick()
	if err != nil {
		return "", err
	}
	second, err := g.pick()
	if err != nil {
		return "", err
	}
	return first + "-" + second, nil
}

func (g *Generator) pick() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(g.words))))
	if err != nil {
		return "", fmt.Errorf("fatal crypto/rand error: %w", err)
	}
	return g.words[n.Int64()], nil
}

// Words returns the number of entries in the generator's wordlist.
func (g *Generator) Words() int {
	return len(g.words)
}

// Strength scores a password from 0 (trivial) to 4 (strong) using the
// zxcvbn estimator.
func Strength(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
