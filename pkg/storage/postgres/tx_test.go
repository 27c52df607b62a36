package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/pkg/domain"
	"appraiser/pkg/storage"
	"appraiser/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, txStorage.Rollback())
}

func TestPgSQL_CommitRollback_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitOnSuccess(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	var storedID domain.AppraisalID
	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreAppraisal(ctx, sampleAppraisal("txcommit.com", "hash-tx"))
		if err != nil {
			return err
		}
		storedID = stored.ID

		return nil
	})
	require.NoError(t, err)

	got, err := pg.AppraisalByID(ctx, storedID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "txcommit.com", got.Domain)
}

func TestPgSQL_WithTx_RollbackOnError(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sentinel := errors.New("boom")

	var storedID domain.AppraisalID
	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreAppraisal(ctx, sampleAppraisal("txrollback.com", "hash-tx"))
		if err != nil {
			return err
		}
		storedID = stored.ID

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := pg.AppraisalByID(ctx, storedID)
	require.NoError(t, err)
	require.Nil(t, got)
}
