package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"appraiser/pkg/domain"
)

const salesTable = "comparable_sales"

// StoreSales inserts sale records. Rows colliding with an existing
// (domain, sold_date, source) are skipped; only the rows actually inserted
// are returned.
func (p *PgSQL) StoreSales(ctx context.Context, sales ...domain.ComparableSale) ([]domain.ComparableSale, error) {
	if len(sales) == 0 {
		return nil, nil
	}

	var result []PgSale
	if err := p.Builder.Insert(salesTable).
		Rows(domainSalesToPg(sales)).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSale{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store sales into pg: %w", err)
	}

	return pgSalesToDomain(result), nil
}

// RecentSales returns up to limit sales priced inside [minPrice, maxPrice],
// most recent sale first. A maxPrice of 0 means no upper bound.
func (p *PgSQL) RecentSales(ctx context.Context,
	minPrice int64,
	maxPrice int64,
	limit uint) ([]domain.ComparableSale, error) {
	w := []goqu.Expression{
		goqu.I("sold_price").Gte(minPrice),
	}
	if maxPrice > 0 {
		w = append(w, goqu.I("sold_price").Lte(maxPrice))
	}

	var rows []PgSale
	if err := p.Builder.From(salesTable).
		Where(w...).
		Order(goqu.I("sold_date").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent sales from pg: %w", err)
	}

	return pgSalesToDomain(rows), nil
}
