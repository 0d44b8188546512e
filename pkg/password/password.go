// Package password wraps bcrypt behind the two operations the rest of
// the system needs. The work factor is fixed at cost 10 and the salt is
// embedded in the digest, so Hash is intentionally non-deterministic.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 10

// Hash produces a salted bcrypt digest of plain.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches digest. An empty plaintext or a
// malformed digest simply yields false: callers must not be able to
// distinguish a wrong password from a corrupt record.
func Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
