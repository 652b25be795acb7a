package catalog

import (
	"sort"
	"strings"

	"lapangin-web/models/venue"
)

// Categories lists the distinct non-empty categories, sorted case-insensitively.
// The first spelling seen wins.
func Categories(venues []venue.Venue) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range venues {
		c := strings.TrimSpace(v.Category)
		key := strings.ToLower(c)
		if c == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}
