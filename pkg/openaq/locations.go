package openaq

import (
	"context"
	"fmt"
)

// ErrLocationNotFound is returned when a location lookup yields no results.
var ErrLocationNotFound = fmt.Errorf("openaq: location not found")

// GetLocation fetches a monitoring site and its sensor list.
func (c *Client) GetLocation(ctx context.Context, locationID int) (*Location, error) {
	var page LocationsPage
	if err := c.get(ctx, fmt.Sprintf("/locations/%d", locationID), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to get location %d: %w", locationID, err)
	}

	if len(page.Results) == 0 {
		return nil, ErrLocationNotFound
	}
	return &page.Results[0], nil
}
