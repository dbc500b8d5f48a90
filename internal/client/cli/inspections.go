package cli

import (
	"context"
	"fmt"
)

func (a *App) Inspections(ctx context.Context, args []string) error {
	opts, filters := parseListArgs(args)

	page, err := a.client.ListInspections(ctx, opts, filters["class"], filters["company"])
	if err != nil {
		return err
	}

	for _, i := range page.Inspections {
		fmt.Fprintf(a.out, "%-12s %-30s %-10s %-3s %s\n",
			i.ID, i.CompanyName, i.InspectionDate, i.Classification, i.ProjectArea)
	}
	a.printPageFooter(page.PageInfo, len(page.Inspections))
	return nil
}
