package openaq

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DaysParams are the query parameters for daily sensor aggregates.
type DaysParams struct {
	// DatetimeFrom and DatetimeTo must already be in API format
	// (see ParseDate). Empty values are omitted from the query.
	DatetimeFrom string
	DatetimeTo   string
	Limit        int
	Page         int
}

// ListSensorDays fetches a single page of daily aggregates for a sensor.
func (c *Client) ListSensorDays(ctx context.Context, sensorID int, p DaysParams) (*MeasurementsPage, error) {
	if p.Limit <= 0 {
		p.Limit = 1000
	}
	if p.Page <= 0 {
		p.Page = 1
	}

	query := url.Values{}
	if p.DatetimeFrom != "" {
		query.Set("datetime_from", p.DatetimeFrom)
	}
	if p.DatetimeTo != "" {
		query.Set("datetime_to", p.DatetimeTo)
	}
	query.Set("limit", strconv.Itoa(p.Limit))
	query.Set("page", strconv.Itoa(p.Page))

	var page MeasurementsPage
	if err := c.get(ctx, fmt.Sprintf("/sensors/%d/days", sensorID), query, &page); err != nil {
		return nil, fmt.Errorf("failed to list days for sensor %d: %w", sensorID, err)
	}
	return &page, nil
}

// WalkSensorDays pages through all daily aggregates for a sensor,
// invoking fn once per non-empty page. Paging stops when a page comes
// back empty or shorter than the requested limit.
func (c *Client) WalkSensorDays(ctx context.Context, sensorID int, p DaysParams, fn func(*MeasurementsPage) error) error {
	if p.Limit <= 0 {
		p.Limit = 1000
	}

	page := 1
	for {
		p.Page = page
		resp, err := c.ListSensorDays(ctx, sensorID, p)
		if err != nil {
			return err
		}

		if len(resp.Results) == 0 {
			return nil
		}

		if err := fn(resp); err != nil {
			return err
		}

		if len(resp.Results) < p.Limit {
			return nil
		}
		page++
	}
}

// AllSensorDays collects every daily aggregate for a sensor into memory.
func (c *Client) AllSensorDays(ctx context.Context, sensorID int, p DaysParams) ([]MeasurementResult, error) {
	var all []MeasurementResult
	err := c.WalkSensorDays(ctx, sensorID, p, func(page *MeasurementsPage) error {
		all = append(all, page.Results...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
