package api

import (
	"context"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

type InspectionsPage struct {
	models.PageInfo
	Inspections []models.Inspection `json:"data"`
}

// ListInspections returns one page of inspections. classification filters by
// outcome (NAI/VAI/OAI); companySlug scopes to a single firm. Either may be
// empty.
func (c *Client) ListInspections(ctx context.Context, opts ListOptions, classification, companySlug string) (*InspectionsPage, error) {
	q := opts.query()
	if classification != "" {
		q.Set("classification", classification)
	}
	if companySlug != "" {
		q.Set("company", companySlug)
	}

	var page InspectionsPage
	if err := c.getJSON(ctx, "/api/inspections", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
