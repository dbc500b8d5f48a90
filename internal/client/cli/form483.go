package cli

import (
	"context"
	"fmt"

	"github.com/fdatrack/fdatrack/internal/filex"
)

const downloadDir = "downloads"

func (a *App) Form483s(ctx context.Context, args []string) error {
	opts, _ := parseListArgs(args)

	page, err := a.client.ListForm483s(ctx, opts)
	if err != nil {
		return err
	}

	for _, f := range page.Form483s {
		converted := ""
		if f.Converted {
			converted = "  -> warning letter"
		}
		fmt.Fprintf(a.out, "%-12s %-30s %-10s obs=%d%s\n",
			f.ID, f.CompanyName, f.IssueDate, f.NumObservations, converted)
	}
	a.printPageFooter(page.PageInfo, len(page.Form483s))
	return nil
}

func (a *App) Form483(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: f483 show <id>")
		return nil
	}

	f, err := a.client.GetForm483(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Form 483 %s\n", f.ID)
	fmt.Fprintf(a.out, "  company:      %s (FEI %s)\n", f.CompanyName, f.FEINumber)
	fmt.Fprintf(a.out, "  issued:       %s\n", f.IssueDate)
	fmt.Fprintf(a.out, "  observations: %d\n", f.NumObservations)
	if f.Converted {
		fmt.Fprintln(a.out, "  escalated to a warning letter")
	}
	return nil
}

// DownloadForm483 fetches the PDF and stores it under ./downloads.
func (a *App) DownloadForm483(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: f483 get <id>")
		return nil
	}
	id := args[0]

	data, err := a.client.DownloadForm483(ctx, id)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubDir(downloadDir)
	if err != nil {
		return err
	}
	path, err := filex.WriteFile(dir, id+".pdf", data)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), path)
	return nil
}

// ArchiveForm483 downloads the PDF and pushes it to the archive bucket.
func (a *App) ArchiveForm483(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: f483 archive <id>")
		return nil
	}
	if a.config.S3Bucket == "" {
		printlnFn("Archive bucket is not configured.")
		return nil
	}
	id := args[0]

	data, err := a.client.DownloadForm483(ctx, id)
	if err != nil {
		return err
	}

	key, err := a.uploader.Store(ctx, id, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Archived as %s\n", key)
	return nil
}
