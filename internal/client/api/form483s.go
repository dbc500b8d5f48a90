package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

type Form483sPage struct {
	models.PageInfo
	Form483s []models.Form483 `json:"data"`
}

func (c *Client) ListForm483s(ctx context.Context, opts ListOptions) (*Form483sPage, error) {
	var page Form483sPage
	if err := c.getJSON(ctx, "/api/form483s", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetForm483(ctx context.Context, id string) (*models.Form483, error) {
	var f models.Form483
	if err := c.getJSON(ctx, "/api/form483s/"+url.PathEscape(id), nil, &f); err != nil {
		return nil, err
	}
	if f.ID == "" {
		return nil, fmt.Errorf("form 483 %q: empty record", id)
	}
	return &f, nil
}

// DownloadForm483 fetches the PDF document of a Form 483. It goes through
// the authenticated pipeline like any other call; only the Accept header
// differs.
func (c *Client) DownloadForm483(ctx context.Context, id string) ([]byte, error) {
	headers := http.Header{}
	headers.Set("Accept", "application/pdf")

	resp, err := c.Do(ctx, http.MethodGet, "/api/form483s/"+url.PathEscape(id)+"/document", nil, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading form 483 document: %w", err)
	}
	return data, nil
}
