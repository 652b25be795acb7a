package util

import (
	"encoding/json"
	"fmt"
	"os"

	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

// ReadVenueListResponseFromJSON loads a VenueListResponse from JSON on disk.
func ReadVenueListResponseFromJSON(filePath string) (*models.VenueListResponse, error) {
	var resp models.VenueListResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load VenueListResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single Venue from a detail response on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	var resp models.VenueDetailResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load Venue: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("file %q has no venue data", filePath)
	}
	return resp.Data, nil
}

// ReadVenuesFromJSON loads a bare venue array, the shape of an injected snapshot.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	var venues []venue.Venue
	if err := readJSON(filePath, &venues); err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}
	return venues, nil
}

// ReadReviewsFromJSON loads a ReviewListResponse from JSON on disk.
func ReadReviewsFromJSON(filePath string) ([]review.Review, error) {
	var resp models.ReviewListResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return resp.Data, nil
}

// ReadMitraListFromJSON loads partner records from JSON on disk.
func ReadMitraListFromJSON(filePath string) ([]models.Mitra, error) {
	var resp models.MitraListResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load mitra list: %w", err)
	}
	return resp.Data, nil
}

// ReadProfileResponseFromJSON loads a ProfileResponse from JSON on disk.
func ReadProfileResponseFromJSON(filePath string) (*models.ProfileResponse, error) {
	var resp models.ProfileResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &resp, nil
}

// PrintVenueListResponsePartially prints key fields of VenueListResponse.
func PrintVenueListResponsePartially(resp *models.VenueListResponse) {
	fmt.Printf("Page: %d/%d\n", resp.Pagination.Page, resp.Pagination.TotalPages)
	if count, ok := resp.Pagination.Count(); ok {
		fmt.Printf("Total count: %d\n", count)
	}
	fmt.Printf("Venues returned: %d\n", len(resp.Data))
	if len(resp.Data) > 0 {
		v := resp.Data[0]
		fmt.Printf("First venue: %s\n", v.ToString())
	}
}

func readJSON(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return nil
}
