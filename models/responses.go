package models

import (
	"encoding/json"

	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

const StatusOK = "ok"

// VenueListResponse matches GET /api/public/venues/.
type VenueListResponse struct {
	Data       []venue.Venue `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// VenueDetailResponse matches GET /venue/<id>/.
type VenueDetailResponse struct {
	Status string       `json:"status,omitempty"`
	Data   *venue.Venue `json:"data"`
}

// ReviewListResponse matches GET /venue/<id>/reviews/.
type ReviewListResponse struct {
	Data []review.Review `json:"data"`
}

// ReviewRequest is the body of a review submission.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// StatusResponse is the generic {status, message} mutation reply.
type StatusResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (r StatusResponse) OK() bool {
	return r.Status == StatusOK
}

// UserStatus matches GET /api/user-status/.
type UserStatus struct {
	Authenticated bool        `json:"authenticated"`
	User          *StatusUser `json:"user,omitempty"`
}

type StatusUser struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
