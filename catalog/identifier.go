package catalog

import (
	"net/url"
	"strings"

	"lapangin-web/config"
	"lapangin-web/models/venue"
)

// uuidMinLength is the length above which a dashed id is taken as a UUID.
const uuidMinLength = 20

// DetailID picks the path segment used to link to a venue. UUID-shaped ids
// are used verbatim, anything else links by the escaped name.
func DetailID(v venue.Venue) string {
	if strings.Contains(v.ID, "-") && len(v.ID) > uuidMinLength {
		return v.ID
	}
	key := v.Name
	if key == "" {
		key = v.ID
	}
	return url.PathEscape(key)
}

// DetailPath is the front route of the venue detail page.
func DetailPath(v venue.Venue) string {
	return config.DETAIL_ROUTE + "/" + DetailID(v) + "/"
}

// TrailingSegment returns the last non-empty segment of a URL path.
func TrailingSegment(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
