// Package tokenize implements the Field Tokeniser (§2 item 4, §4.3): it
// splits a raw history-log line on "^" and decomposes the command-code
// envelope carried in the second token.
package tokenize

import "strings"

// Split breaks a raw line into its caret-delimited tokens. Token 0 is the
// header; token 1, if present, is the command-code envelope; any further
// tokens are payload fields (§3 "Raw line").
func Split(line string) []string {
	return strings.Split(line, "^")
}

// EnvelopeRemainder decomposes the command envelope (token 1) of the form
// "S<2-digit station code><2-char command tag><remainder>" and returns
// remainder — the data-code fields concatenated onto the envelope without
// an intervening "^" (typically the station-login field, FF/FW/FE). The
// remainder must be re-prepended to the payload stream as a synthetic
// token so downstream data-code decoding is uniform (§4.3).
//
// An envelope shorter than 5 characters, or not beginning with "S", has no
// decomposable remainder and yields the empty string.
func EnvelopeRemainder(envelope string) string {
	if len(envelope) < 5 || envelope[0] != 'S' {
		return ""
	}
	return envelope[5:]
}
