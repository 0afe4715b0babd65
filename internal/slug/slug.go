// Package slug allocates id-safe identifiers that stay unique for the
// lifetime of one Uniquifier.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Uniquifier hands out slugs derived from text. It is not safe for
// concurrent use; a generation run owns exactly one.
type Uniquifier struct {
	issued map[string]struct{}
}

// New returns an empty Uniquifier.
func New() *Uniquifier {
	return &Uniquifier{issued: make(map[string]struct{})}
}

// Uniquify normalizes text and returns a slug never returned before by u.
// Collisions get the smallest free "-N" suffix, starting at 1.
func (u *Uniquifier) Uniquify(text string) string {
	base := Normalize(text)
	candidate := base
	for i := 1; u.has(candidate); i++ {
		candidate = base + "-" + strconv.Itoa(i)
	}
	u.issued[candidate] = struct{}{}
	return candidate
}

// Reserve marks ids as taken so Uniquify never returns them. Reserved ids
// count as issued.
func (u *Uniquifier) Reserve(ids ...string) {
	for _, id := range ids {
		u.issued[id] = struct{}{}
	}
}

// Issued reports how many slugs u has handed out.
func (u *Uniquifier) Issued() int {
	return len(u.issued)
}

func (u *Uniquifier) has(s string) bool {
	_, ok := u.issued[s]
	return ok
}

// Normalize lowercases text, treats '_' and '-' as spaces, drops everything
// that is not a letter or a space and joins the remaining words with '-'.
// Text without letters normalizes to "".
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '_' || r == '-' || r == ' ':
			b.WriteRune(' ')
		case unicode.IsLetter(r):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
