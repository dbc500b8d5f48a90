package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fdatrack/fdatrack/internal/client/repositories/watchlist"
	"github.com/fdatrack/fdatrack/internal/common"
)

const watchUsage = "Usage: watch add <company|inspection> <ref> [label...] | watch list | watch rm <id>"

// Watch manages the local bookmark list. It touches only the local
// database, so it works logged out as well.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn(watchUsage)
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			printlnFn(watchUsage)
			return nil
		}
		kind := args[1]
		if kind != watchlist.KindCompany && kind != watchlist.KindInspection {
			printlnFn(watchUsage)
			return nil
		}
		item := &watchlist.Item{
			ID:      uuid.NewString(),
			Kind:    kind,
			Ref:     args[2],
			Label:   strings.Join(args[3:], " "),
			AddedAt: time.Now().UTC(),
		}
		if err := a.watchlist.Add(ctx, item); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Watching %s %s (%s)\n", kind, item.Ref, item.ID)
		return nil

	case "list":
		items, err := a.watchlist.List(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			printlnFn("Watchlist is empty.")
			return nil
		}
		for _, item := range items {
			fmt.Fprintf(a.out, "%s  %-10s %-20s %s\n", item.ID, item.Kind, item.Ref, item.Label)
		}
		return nil

	case "rm":
		if len(args) < 2 {
			printlnFn(watchUsage)
			return nil
		}
		if err := a.watchlist.DeleteByID(ctx, args[1]); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				printlnFn("No such watch item.")
				return nil
			}
			return err
		}
		printlnFn("Removed.")
		return nil

	default:
		printlnFn(watchUsage)
		return nil
	}
}
