package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Investigators(ctx context.Context, args []string) error {
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		return a.investigator(ctx, args[0])
	}

	opts, _ := parseListArgs(args)
	page, err := a.client.ListInvestigators(ctx, opts)
	if err != nil {
		return err
	}

	for _, inv := range page.Investigators {
		fmt.Fprintf(a.out, "%-12s %-30s inspections=%d  483s=%d\n",
			inv.ID, inv.Name, inv.InspectionCount, inv.Form483Count)
	}
	a.printPageFooter(page.PageInfo, len(page.Investigators))
	return nil
}

func (a *App) investigator(ctx context.Context, id string) error {
	inv, err := a.client.GetInvestigator(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", inv.Name)
	fmt.Fprintf(a.out, "  inspections:   %d\n", inv.InspectionCount)
	fmt.Fprintf(a.out, "  form 483s:     %d\n", inv.Form483Count)
	fmt.Fprintf(a.out, "  last activity: %s\n", inv.LastActivityDate)
	if len(inv.Specialties) > 0 {
		fmt.Fprintf(a.out, "  specialties:   %s\n", strings.Join(inv.Specialties, ", "))
	}
	return nil
}
