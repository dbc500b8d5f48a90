package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

// ListOptions are the pagination and search parameters shared by every list
// endpoint. Zero values are omitted from the query.
type ListOptions struct {
	Page    int
	PerPage int
	Search  string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

type CompaniesPage struct {
	models.PageInfo
	Companies []models.Company `json:"data"`
}

// ListCompanies returns one page of companies, optionally filtered by a
// US state code.
func (c *Client) ListCompanies(ctx context.Context, opts ListOptions, state string) (*CompaniesPage, error) {
	q := opts.query()
	if state != "" {
		q.Set("state", state)
	}

	var page CompaniesPage
	if err := c.getJSON(ctx, "/api/companies", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCompany fetches a single company by slug.
func (c *Client) GetCompany(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	if err := c.getJSON(ctx, "/api/companies/"+url.PathEscape(slug), nil, &company); err != nil {
		return nil, err
	}
	if company.Slug == "" {
		return nil, fmt.Errorf("company %q: empty record", slug)
	}
	return &company, nil
}
