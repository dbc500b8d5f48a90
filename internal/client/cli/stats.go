package cli

import (
	"context"
	"fmt"
)

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.client.GetDashboardStats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Companies:       %d\n", stats.TotalCompanies)
	fmt.Fprintf(a.out, "Inspections:     %d\n", stats.TotalInspections)
	fmt.Fprintf(a.out, "Form 483s:       %d (%d in the last 30 days)\n", stats.TotalForm483s, stats.RecentForm483s)
	fmt.Fprintf(a.out, "Warning letters: %d\n", stats.TotalWarningLetters)
	return nil
}
