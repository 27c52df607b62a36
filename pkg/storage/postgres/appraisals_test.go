package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"appraiser/pkg/domain"
)

func sampleAppraisal(domainName, hash string) domain.Appraisal {
	return domain.Appraisal{
		Domain:     domainName,
		FinalScore: 72.5,
		Bracket:    "strong",
		Price: domain.PriceEstimate{
			Investor:    9_000,
			Retail:      15_000,
			Explanation: "blend of bracket midpoint and comparable sales",
		},
		Factors: []domain.FactorScore{
			{Factor: domain.FactorLength, Score: 82, Weight: 0.15, Contribution: 12.3, DataSource: domain.DataSourceComputed},
			{Factor: domain.FactorTLD, Score: 100, Weight: 0.15, Contribution: 15, Note: "premium .com", DataSource: domain.DataSourceComputed},
		},
		Legal:      domain.ClearLegalRisk(),
		Commentary: "Short, liquid and easy to brand.",
		Comparables: []domain.ComparableSale{
			{
				Domain:     "paycrypto.com",
				SoldPrice:  52_000,
				SoldDate:   time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC),
				Source:     "sedo",
				Similarity: 74.5,
			},
		},
		OptionsHash: hash,
	}
}

func TestPgSQL_StoreAppraisal(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("round trips all fields", func(t *testing.T) {
		in := sampleAppraisal("cryptopay.com", "hash-a")

		stored, err := pgSQL.StoreAppraisal(ctx, in)
		require.NoError(t, err)
		require.NotEqual(t, domain.AppraisalID(uuid.Nil), stored.ID)
		require.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)

		require.Equal(t, in.Domain, stored.Domain)
		require.InDelta(t, in.FinalScore, stored.FinalScore, 0.0001)
		require.Equal(t, in.Bracket, stored.Bracket)
		require.Equal(t, in.Price, stored.Price)
		require.Equal(t, in.Factors, stored.Factors)
		require.Equal(t, in.Legal, stored.Legal)
		require.Equal(t, in.Commentary, stored.Commentary)
		require.Equal(t, in.Comparables, stored.Comparables)
		require.Equal(t, in.OptionsHash, stored.OptionsHash)
		require.Nil(t, stored.Whois)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		in := sampleAppraisal("bare.io", "hash-b")
		in.Commentary = ""
		in.Comparables = nil

		stored, err := pgSQL.StoreAppraisal(ctx, in)
		require.NoError(t, err)
		require.Empty(t, stored.Commentary)
		require.Empty(t, stored.Comparables)
	})
}

func TestPgSQL_AppraisalByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreAppraisal(ctx, sampleAppraisal("fetchme.com", "hash-c"))
	require.NoError(t, err)

	got, err := pgSQL.AppraisalByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, "fetchme.com", got.Domain)

	missing, err := pgSQL.AppraisalByID(ctx, domain.AppraisalID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_LatestAppraisalByDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	first, err := pgSQL.StoreAppraisal(ctx, sampleAppraisal("repeat.com", "hash-d"))
	require.NoError(t, err)

	// spaced out so created_at strictly increases
	time.Sleep(10 * time.Millisecond)
	second, err := pgSQL.StoreAppraisal(ctx, sampleAppraisal("repeat.com", "hash-d"))
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	t.Run("returns most recent matching row", func(t *testing.T) {
		got, err := pgSQL.LatestAppraisalByDomain(ctx, "repeat.com", "hash-d", since)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, second.ID, got.ID)
	})

	t.Run("different hash does not match", func(t *testing.T) {
		got, err := pgSQL.LatestAppraisalByDomain(ctx, "repeat.com", "hash-other", since)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("rows outside the window do not match", func(t *testing.T) {
		got, err := pgSQL.LatestAppraisalByDomain(ctx, "repeat.com", "hash-d", time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("rows without a recorded hash match any hash", func(t *testing.T) {
		legacy := sampleAppraisal("legacy.com", "")
		_, err := pgSQL.StoreAppraisal(ctx, legacy)
		require.NoError(t, err)

		got, err := pgSQL.LatestAppraisalByDomain(ctx, "legacy.com", "hash-whatever", since)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "legacy.com", got.Domain)
	})

	t.Run("unknown domain does not match", func(t *testing.T) {
		got, err := pgSQL.LatestAppraisalByDomain(ctx, "nothing-here.com", "hash-d", since)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_PatchAppraisalWhois(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreAppraisal(ctx, sampleAppraisal("augment.com", "hash-e"))
	require.NoError(t, err)
	require.Nil(t, stored.Whois)

	snapshot := domain.WhoisSnapshot{
		Registrar:   "Example Registrar",
		CreatedDate: time.Date(2015, time.February, 3, 0, 0, 0, 0, time.UTC),
		AgeYears:    11.5,
		Registered:  true,
		FetchedAt:   time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	}

	patched, err := pgSQL.PatchAppraisalWhois(ctx, stored.ID, snapshot)
	require.NoError(t, err)
	require.True(t, patched)

	got, err := pgSQL.AppraisalByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Whois)
	require.Equal(t, snapshot, *got.Whois)

	// redelivered job patches again without harm
	patched, err = pgSQL.PatchAppraisalWhois(ctx, stored.ID, snapshot)
	require.NoError(t, err)
	require.True(t, patched)

	// missing rows are a no-op, not an error
	patched, err = pgSQL.PatchAppraisalWhois(ctx, domain.AppraisalID(uuid.New()), snapshot)
	require.NoError(t, err)
	require.False(t, patched)
}
