package placesapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"placehound/shared/go/models"
)

// Places lists places with zero or more optional filters. Repeated category
// values are sent as repeated query params, matching the backend's getlist.
func (c *Client) Places(ctx context.Context, q PlaceQuery) ([]models.Place, error) {
	params := url.Values{}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	for _, category := range q.Categories {
		params.Add("categories", category)
	}

	var places []models.Place
	if err := c.do(ctx, http.MethodGet, "api/places", params, nil, &places); err != nil {
		return nil, err
	}
	for i, p := range places {
		if p.PlaceID == 0 {
			return nil, fmt.Errorf("place %d missing place_id: %w", i, ErrBadResponse)
		}
	}
	return places, nil
}

type addPlaceResponse struct {
	PlaceID int64 `json:"place_id"`
}

// AddPlace creates a place (admin only; the server enforces permission) and
// returns the server-assigned place identifier.
func (c *Client) AddPlace(ctx context.Context, place models.Place) (int64, error) {
	var resp addPlaceResponse
	if err := c.do(ctx, http.MethodPost, "api/add-place", nil, place, &resp); err != nil {
		return 0, err
	}
	if resp.PlaceID == 0 {
		return 0, fmt.Errorf("add place missing place_id: %w", ErrBadResponse)
	}
	return resp.PlaceID, nil
}

// DeletePlace removes a place (admin only).
func (c *Client) DeletePlace(ctx context.Context, placeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/delete-place/%d", placeID), nil, nil, nil)
}
