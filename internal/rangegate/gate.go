// Package rangegate implements the Range Gate (§2 item 7, §4.6): a
// pre-decode predicate over the raw 14-digit timestamp embedded in a
// line's header, letting a streaming driver skip the decode cost entirely
// for lines outside the configured window.
package rangegate

// Gate holds the optional start/end bounds, prefixes of YYYYMMDDhhmmss of
// any length ≥ 4. A zero-value Gate (both bounds empty) admits every line
// whose header parses (§8).
type Gate struct {
	Start string
	End   string
}

// headerTimestamp extracts positions 1..14 of a header of the fixed shape
// "E<14 digits><4-digit station>R " (§4.6). It reports false if the header
// does not begin with "E" followed by 14 decimal digits.
func headerTimestamp(header string) (string, bool) {
	if len(header) < 15 || header[0] != 'E' || !isNumeric(header[1:15]) {
		return "", false
	}
	return header[1:15], true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Admit reports whether header passes the range gate. An unparseable
// header always passes — the decoder rejects it later (§4.6, §4.8).
//
// Both bounds and the extracted timestamp are truncated to the length of
// the shorter of the two configured bounds before comparison (§4.6); with
// only one bound configured, that bound's own length governs.
func (g Gate) Admit(header string) bool {
	ts, ok := headerTimestamp(header)
	if !ok {
		return true
	}

	start := g.Start
	if start != "" && !isNumeric(start) {
		start = ""
	}
	end := g.End

	length := 0
	switch {
	case start != "" && end != "":
		length = min(len(start), len(end))
	case start != "":
		length = len(start)
	case end != "":
		length = len(end)
	default:
		return true
	}
	if length > len(ts) {
		length = len(ts)
	}

	extracted := ts[:length]
	if start != "" {
		s := start
		if len(s) > length {
			s = s[:length]
		}
		if extracted < s {
			return false
		}
	}
	if end != "" {
		e := end
		if len(e) > length {
			e = e[:length]
		}
		if extracted >= e {
			return false
		}
	}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
