// Package normalize implements the deterministic text and date sanitisers
// shared by the code tables and the record decoder.
package normalize

import "strings"

// stripChars is the fixed punctuation set removed from every string passed
// through String, regardless of the fold-spaces setting.
const stripChars = "[]$*'(){}\\"

// String cleans a raw field value the way the decoder and the code-table
// loader both expect.
//
// It always strips the characters in stripChars. When foldSpaces is true
// the result is additionally lower-cased and interior whitespace runs are
// collapsed to a single underscore, with trailing whitespace dropped; when
// false, case and interior spacing (including trailing whitespace) are
// preserved.
//
// Applying String twice produces the same result as applying it once: the
// stripped character set and folding rule are both idempotent.
func String(s string, foldSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(stripChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()

	if !foldSpaces {
		return cleaned
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ToLower(cleaned)

	fields := strings.Fields(cleaned)
	return strings.Join(fields, "_")
}
