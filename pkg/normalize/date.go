package normalize

import (
	"fmt"
	"regexp"
	"strconv"
)

// canonical output layouts
const (
	dateOnly = "2006-01-02"
	dateTime = "2006-01-02 15:04:05"
)

var (
	reSlashDate     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reSlashDateTime = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4}),\d{1,2}:\d{2}\s*(?:AM|PM)$`)
	reCompact       = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})$`)
	reHeader        = regexp.MustCompile(`^E(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})\d{4}R $`)
	reCanonicalDT   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	reCanonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Date recognises the five history-log timestamp shapes (§4.2) and emits
// the canonical SQL-style or date-only representation. Unrecognised or
// empty input yields the empty string. Matching is structural (each pattern
// is anchored at both ends) and tried in the fixed order below; the first
// match wins.
//
// Date is idempotent: an input already in either canonical layout is
// returned unchanged by an explicit check made before the five input shapes
// are tried.
func Date(s string) string {
	if s == "" {
		return ""
	}

	if reCanonicalDT.MatchString(s) || reCanonicalDate.MatchString(s) {
		return s
	}

	if m := reSlashDate.FindStringSubmatch(s); m != nil {
		return formatDateOnly(m[3], m[1], m[2])
	}
	if m := reSlashDateTime.FindStringSubmatch(s); m != nil {
		return formatDateOnly(m[3], m[1], m[2])
	}
	if m := reHeader.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s %s:%s:%s", m[1], m[2], m[3], m[4], m[5], m[6])
	}
	if m := reCompact.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s %s:%s:%s", m[1], m[2], m[3], m[4], m[5], m[6])
	}

	return ""
}

func formatDateOnly(year, month, day string) string {
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, mo, d)
}
