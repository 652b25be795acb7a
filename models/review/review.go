package review

import (
	"encoding/json"
	"fmt"
	"time"
)

// Review is a single user review of a venue. Sub-scores are optional:
// nil means the reviewer skipped that category.
type Review struct {
	ID             string    `json:"id,omitempty"`
	User           string    `json:"user"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	Cleanliness    *int      `json:"cleanliness,omitempty"`
	CourtCondition *int      `json:"court_condition,omitempty"`
	Communication  *int      `json:"communication,omitempty"`
}

type rawReview struct {
	ID             json.RawMessage `json:"id"`
	User           *string         `json:"user"`
	Rating         *float64        `json:"rating"`
	Comment        *string         `json:"comment"`
	CreatedAt      *string         `json:"created_at"`
	subScores
	// the review page script reads sub-scores from a nested object
	Ratings *subScores `json:"ratings"`
}

type subScores struct {
	Cleanliness         *float64 `json:"cleanliness"`
	CourtCondition      *float64 `json:"court_condition"`
	CourtConditionCamel *float64 `json:"courtCondition"`
	Communication       *float64 `json:"communication"`
}

// merged fills the sub-scores s lacks from nested, preferring the
// snake_case court condition key over the camelCase one.
func (s subScores) merged(nested *subScores) subScores {
	if s.CourtCondition == nil {
		s.CourtCondition = s.CourtConditionCamel
	}
	if nested == nil {
		return s
	}
	n := nested.merged(nil)
	if s.Cleanliness == nil {
		s.Cleanliness = n.Cleanliness
	}
	if s.CourtCondition == nil {
		s.CourtCondition = n.CourtCondition
	}
	if s.Communication == nil {
		s.Communication = n.Communication
	}
	return s
}

// accepted created_at layouts, most specific first
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON tolerates missing fields and the timestamp shapes the backend emits.
func (r *Review) UnmarshalJSON(data []byte) error {
	var raw rawReview
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal review: %w", err)
	}

	scores := raw.subScores.merged(raw.Ratings)
	*r = Review{
		Cleanliness:    subScore(scores.Cleanliness),
		CourtCondition: subScore(scores.CourtCondition),
		Communication:  subScore(scores.Communication),
	}
	if len(raw.ID) > 0 && string(raw.ID) != "null" {
		var s string
		if err := json.Unmarshal(raw.ID, &s); err == nil {
			r.ID = s
		} else {
			r.ID = string(raw.ID)
		}
	}
	if raw.User != nil {
		r.User = *raw.User
	}
	if raw.Comment != nil {
		r.Comment = *raw.Comment
	}
	if raw.Rating != nil {
		r.Rating = clamp(int(*raw.Rating + 0.5))
	}
	if raw.CreatedAt != nil {
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, *raw.CreatedAt); err == nil {
				r.CreatedAt = t
				break
			}
		}
	}
	return nil
}

func subScore(p *float64) *int {
	if p == nil || *p <= 0 {
		return nil
	}
	v := clamp(int(*p + 0.5))
	return &v
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
