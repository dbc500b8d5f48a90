// Package watchlist stores local bookmarks of companies and inspections so
// frequently checked records are one command away.
package watchlist

import (
	"context"
	"time"
)

// Kinds of records a watchlist item can point at.
const (
	KindCompany    = "company"
	KindInspection = "inspection"
)

type Item struct {
	ID      string
	Kind    string
	Ref     string // company slug or inspection id
	Label   string
	AddedAt time.Time
}

type Repository interface {
	Add(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]*Item, error)
	DeleteByID(ctx context.Context, id string) error
}
