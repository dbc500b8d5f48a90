package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCompanies_QueryAndParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/companies", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "25", r.URL.Query().Get("per_page"))
		require.Equal(t, "acme", r.URL.Query().Get("search"))
		require.Equal(t, "NJ", r.URL.Query().Get("state"))

		_, _ = w.Write([]byte(`{
			"page": 2, "perPage": 25, "total": 51,
			"data": [
				{"slug": "acme-pharma", "name": "Acme Pharma", "state": "NJ", "inspectionCount": 7}
			]
		}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, &staticTokens{token: "tok", ok: true})

	page, err := c.ListCompanies(context.Background(), ListOptions{Page: 2, PerPage: 25, Search: "acme"}, "NJ")
	require.NoError(t, err)
	require.Equal(t, 51, page.Total)
	require.True(t, page.HasMore())
	require.Len(t, page.Companies, 1)
	require.Equal(t, "Acme Pharma", page.Companies[0].Name)
}

func TestGetCompany_EscapesSlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"slug": "acme-pharma", "name": "Acme Pharma"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, &staticTokens{token: "tok", ok: true})

	company, err := c.GetCompany(context.Background(), "acme-pharma")
	require.NoError(t, err)
	require.Equal(t, "Acme Pharma", company.Name)
}

func TestListInspections_Filters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "OAI", r.URL.Query().Get("classification"))
		require.Equal(t, "acme-pharma", r.URL.Query().Get("company"))
		_, _ = w.Write([]byte(`{"page":1,"perPage":20,"total":1,"data":[{"id":"i1","classification":"OAI"}]}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, &staticTokens{token: "tok", ok: true})

	page, err := c.ListInspections(context.Background(), ListOptions{}, "OAI", "acme-pharma")
	require.NoError(t, err)
	require.Len(t, page.Inspections, 1)
	require.Equal(t, "OAI", page.Inspections[0].Classification)
}

func TestDownloadForm483_OverridesAcceptNotAuthorization(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/form483s/f-1/document", r.URL.Path)
		require.Equal(t, "application/pdf", r.Header.Get("Accept"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, &staticTokens{token: "tok", ok: true})

	data, err := c.DownloadForm483(context.Background(), "f-1")
	require.NoError(t, err)
	require.Equal(t, pdf, data)
}

func TestGetDashboardStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalCompanies":10,"totalInspections":40,"totalForm483s":12,"totalWarningLetters":3,"recentForm483s":2}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, &staticTokens{token: "tok", ok: true})

	stats, err := c.GetDashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, stats.TotalCompanies)
	require.Equal(t, 2, stats.RecentForm483s)
}
