package comps_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"appraiser/internal/comps"
	"appraiser/pkg/domain"
	"appraiser/pkg/serrors"
)

type fakeSales struct {
	sales []domain.ComparableSale
	err   error

	gotMin   int64
	gotMax   int64
	gotLimit uint
}

func (f *fakeSales) RecentSales(_ context.Context, minPrice, maxPrice int64, limit uint) ([]domain.ComparableSale, error) {
	f.gotMin, f.gotMax, f.gotLimit = minPrice, maxPrice, limit

	return f.sales, f.err
}

func (f *fakeSales) StoreSales(_ context.Context, sales ...domain.ComparableSale) ([]domain.ComparableSale, error) {
	f.sales = append(f.sales, sales...)

	return sales, nil
}

func sale(domainName string, price int64) domain.ComparableSale {
	return domain.ComparableSale{
		Domain:    domainName,
		SoldPrice: price,
		SoldDate:  time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		Source:    "sedo",
	}
}

func TestFindComparablesRanksBySimilarity(t *testing.T) {
	sales := &fakeSales{sales: []domain.ComparableSale{
		sale("foodbox.com", 40_000),
		sale("cryptopay.net", 95_000),
		sale("crypto.com", 12_000_000),
	}}

	matcher := comps.NewMatcher(sales, 0)

	got, err := matcher.FindComparables(context.Background(), "cryptopay.com", 5)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "cryptopay.net", got[0].Domain)
	require.Equal(t, "crypto.com", got[1].Domain)
	require.Equal(t, "foodbox.com", got[2].Domain)

	require.InDelta(t, 88.5, got[0].Similarity, 0.001)
	for _, comp := range got {
		require.GreaterOrEqual(t, comp.Similarity, float64(comps.SimilarityFloor))
	}
}

func TestFindComparablesRespectsLimit(t *testing.T) {
	sales := &fakeSales{sales: []domain.ComparableSale{
		sale("foodbox.com", 40_000),
		sale("cryptopay.net", 95_000),
		sale("crypto.com", 12_000_000),
	}}

	matcher := comps.NewMatcher(sales, 0)

	got, err := matcher.FindComparables(context.Background(), "cryptopay.com", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "cryptopay.net", got[0].Domain)
}

func TestFindComparablesDiscardsBelowFloor(t *testing.T) {
	sales := &fakeSales{sales: []domain.ComparableSale{
		sale("zz-99.info", 1_200),
		sale("cryptopay.net", 95_000),
	}}

	matcher := comps.NewMatcher(sales, 0)

	got, err := matcher.FindComparables(context.Background(), "cryptopay.io", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "cryptopay.net", got[0].Domain)
}

func TestFindComparablesSkipsUnparseableCandidates(t *testing.T) {
	sales := &fakeSales{sales: []domain.ComparableSale{
		sale("corrupt-row", 999),
		sale("cryptopay.net", 95_000),
	}}

	matcher := comps.NewMatcher(sales, 0)

	got, err := matcher.FindComparables(context.Background(), "cryptopay.com", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "cryptopay.net", got[0].Domain)
}

func TestFindComparablesFallsBackToEmbeddedDataset(t *testing.T) {
	tests := []struct {
		name  string
		sales *fakeSales
	}{
		{"storage error", &fakeSales{err: serrors.With(serrors.ErrPersistence, "db down")}},
		{"empty pool", &fakeSales{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := comps.NewMatcher(tt.sales, 0)

			got, err := matcher.FindComparables(context.Background(), "shopsmart.com", 3)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			require.Equal(t, "shopsmart.com", got[0].Domain)
			require.InDelta(t, 98.5, got[0].Similarity, 0.001)
		})
	}
}

func TestFindComparablesAppliesPriceBandPrefilter(t *testing.T) {
	sales := &fakeSales{sales: []domain.ComparableSale{sale("shopsmart.net", 61_000)}}
	matcher := comps.NewMatcher(sales, 0)

	_, err := matcher.FindComparables(context.Background(), "shopsmart.com", 5)
	require.NoError(t, err)

	// 9-character .com shapes as premium: band widened one bracket each way
	require.EqualValues(t, 10_000, sales.gotMin)
	require.EqualValues(t, 2_500_000, sales.gotMax)
	require.EqualValues(t, comps.DefaultPoolSize, sales.gotLimit)
}

func TestFindComparablesRejectsMalformedDomain(t *testing.T) {
	matcher := comps.NewMatcher(&fakeSales{}, 0)

	_, err := matcher.FindComparables(context.Background(), "localhost", 5)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestFindComparablesDefaultLimit(t *testing.T) {
	pool := make([]domain.ComparableSale, 0, 8)
	for _, name := range []string{
		"cryptopay.net", "cryptopays.com", "crypto.com", "cryptolab.com",
		"paycrypto.com", "cryptopay.io", "cryptopay.co", "cryptopay.org",
	} {
		pool = append(pool, sale(name, 50_000))
	}

	matcher := comps.NewMatcher(&fakeSales{sales: pool}, 0)

	got, err := matcher.FindComparables(context.Background(), "cryptopay.com", 0)
	require.NoError(t, err)
	require.Len(t, got, comps.DefaultLimit)
}
