package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// durationMatch is an explicit duration phrase resolved to minutes.
type durationMatch struct {
	minutes int
	raw     string
}

// durationPat matches "for N <minutes|hours>".
var durationPat = regexp.MustCompile(`למשך\s+(\d+)\s*(דקות|דקה|שעות|שעה)`)

// extractDuration finds an explicit duration phrase. Hour units are
// converted to minutes. Absent a match the caller applies the default.
func extractDuration(text string) (durationMatch, bool) {
	m := durationPat.FindStringSubmatch(text)
	if m == nil {
		return durationMatch{}, false
	}
	n, _ := strconv.Atoi(m[1])
	if strings.HasPrefix(m[2], "שע") {
		n *= 60
	}
	return durationMatch{minutes: n, raw: m[0]}, true
}
