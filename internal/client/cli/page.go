package cli

import (
	"fmt"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

func (a *App) printPageFooter(p models.PageInfo, shown int) {
	if p.HasMore() {
		fmt.Fprintf(a.out, "-- page %d, %d of %d (append page=%d for more)\n", p.Page, shown, p.Total, p.Page+1)
	} else {
		fmt.Fprintf(a.out, "-- %d of %d\n", shown, p.Total)
	}
}
