package cli

import (
	"context"
	"fmt"
)

func (a *App) WarningLetters(ctx context.Context, args []string) error {
	opts, _ := parseListArgs(args)

	page, err := a.client.ListWarningLetters(ctx, opts)
	if err != nil {
		return err
	}

	for _, w := range page.WarningLetters {
		fmt.Fprintf(a.out, "%-12s %-30s %-10s %s\n", w.ID, w.CompanyName, w.IssueDate, w.Subject)
	}
	a.printPageFooter(page.PageInfo, len(page.WarningLetters))
	return nil
}
