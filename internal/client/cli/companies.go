package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fdatrack/fdatrack/internal/client/api"
)

// parseListArgs interprets trailing "key=value" tokens shared by the list
// commands; a bare token is treated as a search term. Unrecognized keys are
// returned for the command to use as endpoint-specific filters.
func parseListArgs(args []string) (api.ListOptions, map[string]string) {
	opts := api.ListOptions{}
	filters := map[string]string{}

	for _, arg := range args {
		k, v, found := strings.Cut(arg, "=")
		if !found {
			opts.Search = arg
			continue
		}
		switch k {
		case "page":
			opts.Page, _ = strconv.Atoi(v)
		case "per":
			opts.PerPage, _ = strconv.Atoi(v)
		default:
			filters[k] = v
		}
	}
	return opts, filters
}

func (a *App) Companies(ctx context.Context, args []string) error {
	opts, filters := parseListArgs(args)

	page, err := a.client.ListCompanies(ctx, opts, filters["state"])
	if err != nil {
		return err
	}

	for _, c := range page.Companies {
		fmt.Fprintf(a.out, "%-30s %-20s %-2s  inspections=%d  483s=%d  WLs=%d\n",
			c.Slug, c.City, c.State, c.InspectionCount, c.Form483Count, c.WarningLetterCount)
	}
	a.printPageFooter(page.PageInfo, len(page.Companies))
	return nil
}

func (a *App) Company(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: company <slug>")
		return nil
	}

	c, err := a.client.GetCompany(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", c.Name)
	fmt.Fprintf(a.out, "  location:        %s, %s, %s\n", c.City, c.State, c.Country)
	fmt.Fprintf(a.out, "  inspections:     %d (last %s)\n", c.InspectionCount, c.LastInspectionDate)
	fmt.Fprintf(a.out, "  form 483s:       %d\n", c.Form483Count)
	fmt.Fprintf(a.out, "  warning letters: %d\n", c.WarningLetterCount)
	return nil
}
