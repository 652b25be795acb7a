package catalog

import (
	"math"

	"lapangin-web/models/review"
)

// DefaultSubScore stands in for a category the reviewer skipped.
const DefaultSubScore = 4

const MaxStars = 5

// ReviewSummary aggregates a venue's reviews.
type ReviewSummary struct {
	Count          int
	Average        float64
	Cleanliness    float64
	CourtCondition float64
	Communication  float64
}

// SummarizeReviews averages the overall rating and each category.
// An empty list yields a zero summary.
func SummarizeReviews(reviews []review.Review) ReviewSummary {
	s := ReviewSummary{Count: len(reviews)}
	if s.Count == 0 {
		return s
	}

	var total, clean, court, comm int
	for _, r := range reviews {
		total += r.Rating
		clean += subScoreOrDefault(r.Cleanliness)
		court += subScoreOrDefault(r.CourtCondition)
		comm += subScoreOrDefault(r.Communication)
	}

	n := float64(s.Count)
	s.Average = float64(total) / n
	s.Cleanliness = float64(clean) / n
	s.CourtCondition = float64(court) / n
	s.Communication = float64(comm) / n
	return s
}

// ScorePercent maps a 0-5 score to a 0-100 bar width.
func ScorePercent(avg float64) float64 {
	return avg / MaxStars * 100
}

// StarFill returns, per star, whether it is filled for the given rating.
func StarFill(rating float64) []bool {
	filled := int(math.Round(rating))
	stars := make([]bool, MaxStars)
	for i := range stars {
		stars[i] = i < filled
	}
	return stars
}

func subScoreOrDefault(p *int) int {
	if p == nil {
		return DefaultSubScore
	}
	return *p
}
