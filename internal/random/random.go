// Package random generates identifiers that must not be guessable.
package random

import (
	"crypto/rand"

	"github.com/myrjola/reportdesk/internal/errors"
)

const allowedLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// rejectAbove is the largest multiple of len(allowedLetters) that fits a byte. Bytes at or above it are discarded so
// that every letter is equally likely.
const rejectAbove = 256 - 256%len(allowedLetters)

// Letters returns a cryptographically random string of n ASCII letters.
//
// Used for CSP nonces and for naming in-memory databases.
func Letters(n uint) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for uint(len(out)) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "read random bytes")
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, allowedLetters[int(b)%len(allowedLetters)])
			if uint(len(out)) == n {
				break
			}
		}
	}
	return string(out), nil
}
