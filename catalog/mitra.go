package catalog

import (
	"sort"
	"strings"
	"time"

	"lapangin-web/models"
)

// SortMitra returns a copy of rows ordered by s. Dates compare as times and
// missing dates sort first; text compares case-insensitively.
func SortMitra(rows []models.Mitra, s models.MitraSort) []models.Mitra {
	out := make([]models.Mitra, len(rows))
	copy(out, rows)

	cmp := func(a, b models.Mitra) int {
		switch s.Key {
		case models.MitraSortTanggalDaftar:
			return compareTimes(a.TanggalDaftar, b.TanggalDaftar)
		case models.MitraSortEmail:
			return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
		case models.MitraSortStatus:
			return strings.Compare(a.Status, b.Status)
		default:
			return strings.Compare(strings.ToLower(a.Nama), strings.ToLower(b.Nama))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Dir == models.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}
