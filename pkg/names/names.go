// Package names canonicalizes pet display names into matching keys.
//
// Catalog file names and scraped source names rarely agree byte for byte:
// they differ in case, punctuation, curly versus straight apostrophes and
// spacing. Normalize folds all of those differences away so a Key can be
// used as the only join predicate between the catalog and the sources.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Key is a normalized pet name. The empty Key never matches anything.
type Key string

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// Empty reports whether the key carries no alphanumeric content.
func (k Key) Empty() bool {
	return k == ""
}

// apostrophes folds typographic apostrophe variants to ASCII.
var apostrophes = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"′", "'", // prime
	"´", "'", // acute accent
	"`", "'",
	// UTF-8 apostrophes mis-decoded as Windows-1252
	"â€™", "'",
	"â€˜", "'",
)

// Normalize returns the matching key for a display name: lower-cased,
// apostrophes canonicalized, everything except a-z, 0-9 and whitespace
// replaced by a space, whitespace collapsed and trimmed. It is total and
// idempotent.
func Normalize(raw string) Key {
	s := apostrophes.Replace(repairMojibake(strings.ToLower(raw)))

	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		if isKeyRune(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		// whitespace and every other rune act as a separator
		pendingSpace = true
	}
	return Key(b.String())
}

// Equal reports whether two display names refer to the same pet.
func Equal(a, b string) bool {
	k := Normalize(a)
	return !k.Empty() && k == Normalize(b)
}

func isKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// repairMojibake undoes a UTF-8 string that was decoded as Windows-1252
// ("â€™" for "’"). Strings that don't round-trip are returned unchanged and
// left to the literal replacements.
func repairMojibake(s string) string {
	if !strings.ContainsRune(s, 'â') {
		return s
	}
	encoded, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil || !utf8.ValidString(encoded) || strings.ContainsRune(encoded, unicode.ReplacementChar) {
		return s
	}
	return encoded
}
