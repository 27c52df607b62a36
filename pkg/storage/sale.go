package storage

import (
	"context"

	"appraiser/pkg/domain"
)

// SaleStorage defines persistence operations for the historical sale records
// the comparable matcher draws candidates from.
type SaleStorage interface {
	// StoreSales inserts sale records, skipping duplicates on
	// (domain, sold_date, source), and returns the rows actually stored.
	StoreSales(ctx context.Context, sales ...domain.ComparableSale) ([]domain.ComparableSale, error)

	// RecentSales returns up to limit sales with a price inside
	// [minPrice, maxPrice], most recent first. A maxPrice of 0 means no
	// upper bound.
	RecentSales(ctx context.Context, minPrice int64, maxPrice int64, limit uint) ([]domain.ComparableSale, error)
}
