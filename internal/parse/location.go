package parse

import (
	"regexp"
	"strings"
)

// locationMatch is an extracted place value plus the span it was matched
// from. The raw span keeps the introducing particle so the stripper can
// remove the whole phrase.
type locationMatch struct {
	value string
	raw   string
}

// conferencingLabel is returned when a provider keyword appears without an
// accompanying URL.
const conferencingLabel = "Zoom/Meet/Teams"

var (
	conferencePat = regexp.MustCompile(`(?i)(זום|zoom|meet\.google|teams\.microsoft|teams|סקייפ|skype)`)
	urlPat        = regexp.MustCompile(`(?i)https?://\S+`)
	addressPat    = regexp.MustCompile(`(ברח׳|ברח'|ברחוב|בשדרות|בסמטת|בכיכר|ברח\s|בכתובת|במשרד|בבית|במרפאה|במסעדת|במסעדה|בבית\sכנסת|בבית כנסת|באולם)\s+([^,.\n]+(\s*\d+)?)?`)
	genericAtPat  = regexp.MustCompile(`ב(?:-|\s)([\p{Hebrew}A-Za-z0-9][^,.\n]{0,40})`)
)

// extractLocation finds a meeting-place or video-link expression. Priority
// order, first match wins:
//
//  1. a conferencing provider keyword; a URL in the same text wins over the
//     keyword itself
//  2. an address-introducing particle followed by the rest of the clause
//  3. a generic "at <token>" fallback up to the next comma/period/newline
func extractLocation(text string) (locationMatch, bool) {
	if kw := conferencePat.FindString(text); kw != "" {
		if u := urlPat.FindString(text); u != "" {
			return locationMatch{value: u, raw: u}, true
		}
		return locationMatch{value: conferencingLabel, raw: kw}, true
	}

	if m := addressPat.FindStringSubmatch(text); m != nil {
		value := strings.TrimSpace(strings.TrimPrefix(m[0], "ב"))
		return locationMatch{value: value, raw: m[0]}, true
	}

	if m := genericAtPat.FindStringSubmatch(text); m != nil {
		return locationMatch{value: strings.TrimSpace(m[1]), raw: m[0]}, true
	}

	return locationMatch{}, false
}
