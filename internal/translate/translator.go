// Package translate implements the Code Translator (§2 item 5, §4.4): it
// resolves a payload token's two-character data-code tag, or a command
// envelope's embedded command tag, against the corresponding code table,
// falling back to the raw tag on a miss so the decoder can treat it as
// unknown. The translator never errors; misses are signalled by returning
// the tag unchanged.
package translate

import "hist2json/internal/codetables"

// DataField resolves a payload token against the data-code table. With
// asValue false it returns the canonical field name; with asValue true it
// returns the value portion (the token with its two-character tag
// stripped). The tag itself is always returned alongside, along with
// whether the lookup hit.
func DataField(token string, table *codetables.Table, asValue bool) (result, tag string, known bool) {
	if len(token) < 2 {
		return token, token, false
	}
	tag = token[:2]

	name, ok := table.Lookup(tag)
	if !ok {
		return tag, tag, false
	}
	if asValue {
		return token[2:], tag, true
	}
	return name, tag, true
}

// Command resolves a command envelope token against the command-code
// table. A well-formed envelope ("S" + 2-digit station + 2-char tag +
// remainder, ≥5 characters) has its tag extracted from positions 3-5;
// anything shorter is treated as the tag in its entirety.
func Command(token string, table *codetables.Table) (result, tag string, known bool) {
	tag = token
	if len(token) >= 5 && token[0] == 'S' {
		tag = token[3:5]
	}

	name, ok := table.Lookup(tag)
	if !ok {
		return tag, tag, false
	}
	return name, tag, true
}

// Client resolves a numeric client-type value against the client-type
// table. Unlike DataField/Command, the token is already a value rather
// than a tagged field.
func Client(token string, table *codetables.Table) (result string, known bool) {
	name, ok := table.Lookup(token)
	if !ok {
		return token, false
	}
	return name, true
}
