package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	MitraPending  = "pending"
	MitraApproved = "approved"
	MitraRejected = "rejected"
)

// Mitra is a partner registration awaiting (or past) admin review.
type Mitra struct {
	ID            string     `json:"id"`
	Nama          string     `json:"nama"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	TanggalDaftar *time.Time `json:"tanggal_daftar,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

type rawMitra struct {
	ID            json.RawMessage `json:"id"`
	Nama          string          `json:"nama"`
	Email         string          `json:"email"`
	Status        string          `json:"status"`
	TanggalDaftar string          `json:"tanggal_daftar"`
	Reason        string          `json:"reason"`
}

func (m *Mitra) UnmarshalJSON(data []byte) error {
	var raw rawMitra
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal mitra: %w", err)
	}
	*m = Mitra{
		Nama:   raw.Nama,
		Email:  raw.Email,
		Status: raw.Status,
		Reason: raw.Reason,
	}
	if len(raw.ID) > 0 {
		var s string
		if err := json.Unmarshal(raw.ID, &s); err == nil {
			m.ID = s
		} else if string(raw.ID) != "null" {
			m.ID = string(raw.ID)
		}
	}
	if m.Status == "" {
		m.Status = MitraPending
	}
	if raw.TanggalDaftar != "" {
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw.TanggalDaftar); err == nil {
				m.TanggalDaftar = &t
				break
			}
		}
	}
	return nil
}

// MitraListResponse accepts both {data: [...]} and a bare array.
type MitraListResponse struct {
	Data []Mitra
}

func (r *MitraListResponse) UnmarshalJSON(data []byte) error {
	var items []Mitra
	if err := json.Unmarshal(data, &items); err == nil {
		r.Data = items
		return nil
	}
	var wrapped struct {
		Data []Mitra `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("failed to unmarshal mitra list: %w", err)
	}
	r.Data = wrapped.Data
	return nil
}

// MitraStatusUpdate is the PATCH body for approve/reject.
type MitraStatusUpdate struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// MitraStatusResponse is the PATCH reply.
type MitraStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    *Mitra `json:"data,omitempty"`
}

// sortable partner columns
const (
	MitraSortNama          = "nama"
	MitraSortEmail         = "email"
	MitraSortStatus        = "status"
	MitraSortTanggalDaftar = "tanggal_daftar"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// MitraSort is the partner table ordering.
type MitraSort struct {
	Key string
	Dir string
}

// DefaultMitraSort shows the newest registrations first.
var DefaultMitraSort = MitraSort{Key: MitraSortTanggalDaftar, Dir: SortDesc}

// Toggle returns the ordering after a click on key's column header: the
// current key flips direction, any other key starts ascending.
func (s MitraSort) Toggle(key string) MitraSort {
	if key == s.Key {
		if s.Dir == SortAsc {
			return MitraSort{Key: key, Dir: SortDesc}
		}
		return MitraSort{Key: key, Dir: SortAsc}
	}
	return MitraSort{Key: key, Dir: SortAsc}
}

// ParseMitraSort validates a requested ordering, falling back to the default.
func ParseMitraSort(key, dir string) MitraSort {
	switch key {
	case MitraSortNama, MitraSortEmail, MitraSortStatus, MitraSortTanggalDaftar:
	default:
		return DefaultMitraSort
	}
	if dir != SortAsc && dir != SortDesc {
		dir = SortAsc
	}
	return MitraSort{Key: key, Dir: dir}
}
