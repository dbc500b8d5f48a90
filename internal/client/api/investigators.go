package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

type InvestigatorsPage struct {
	models.PageInfo
	Investigators []models.Investigator `json:"data"`
}

func (c *Client) ListInvestigators(ctx context.Context, opts ListOptions) (*InvestigatorsPage, error) {
	var page InvestigatorsPage
	if err := c.getJSON(ctx, "/api/investigators", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetInvestigator(ctx context.Context, id string) (*models.Investigator, error) {
	var inv models.Investigator
	if err := c.getJSON(ctx, "/api/investigators/"+url.PathEscape(id), nil, &inv); err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, fmt.Errorf("investigator %q: empty record", id)
	}
	return &inv, nil
}
