package bank

import (
	"strings"
	"unicode/utf8"
)

// DeriveUsername maps an owner's full name to its short handle: the first
// character of every space-separated word, lowercased.
// "Steven Thomas Williams" becomes "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Split(strings.ToLower(owner), " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
