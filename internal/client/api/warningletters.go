package api

import (
	"context"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

type WarningLettersPage struct {
	models.PageInfo
	WarningLetters []models.WarningLetter `json:"data"`
}

func (c *Client) ListWarningLetters(ctx context.Context, opts ListOptions) (*WarningLettersPage, error) {
	var page WarningLettersPage
	if err := c.getJSON(ctx, "/api/warning-letters", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
