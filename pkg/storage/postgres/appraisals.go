package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"appraiser/pkg/domain"
)

const appraisalsTable = "appraisals"

// StoreAppraisal inserts a completed appraisal and returns the stored row,
// including the generated ID and creation timestamp.
func (p *PgSQL) StoreAppraisal(ctx context.Context, appraisal domain.Appraisal) (domain.Appraisal, error) {
	var row PgAppraisal
	if err := row.FromDomain(appraisal); err != nil {
		return domain.Appraisal{}, err
	}

	var stored PgAppraisal
	found, err := p.Builder.Insert(appraisalsTable).
		Rows(row).
		Returning(&PgAppraisal{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return domain.Appraisal{}, fmt.Errorf("could not store appraisal into pg: %w", err)
	}
	if !found {
		return domain.Appraisal{}, fmt.Errorf("insert returned no appraisal row")
	}

	out, err := stored.ToDomain()
	if err != nil {
		return domain.Appraisal{}, err
	}

	return *out, nil
}

// AppraisalByID returns an appraisal by its ID, or nil when no such row
// exists.
func (p *PgSQL) AppraisalByID(ctx context.Context, id domain.AppraisalID) (*domain.Appraisal, error) {
	var row PgAppraisal
	found, err := p.Builder.From(appraisalsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch appraisal by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LatestAppraisalByDomain returns the most recent appraisal of domainName
// created at or after since, restricted to rows whose recorded options hash
// matches optionsHash or that carry no hash at all (rows written before
// fingerprinting was introduced). Returns nil when nothing qualifies.
func (p *PgSQL) LatestAppraisalByDomain(ctx context.Context,
	domainName string,
	optionsHash string,
	since time.Time) (*domain.Appraisal, error) {
	var row PgAppraisal
	found, err := p.Builder.From(appraisalsTable).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("created_at").Gte(since),
			goqu.Or(
				goqu.I("options_hash").IsNull(),
				goqu.I("options_hash").Eq(optionsHash),
			),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest appraisal by domain: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PatchAppraisalWhois attaches a WHOIS snapshot to an existing appraisal.
// It reports whether a row was updated; a missing row is a no-op, not an
// error, so redelivered augmentation jobs stay harmless.
func (p *PgSQL) PatchAppraisalWhois(ctx context.Context,
	id domain.AppraisalID,
	snapshot domain.WhoisSnapshot) (bool, error) {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("could not marshal whois snapshot: %w", err)
	}

	res, err := p.Builder.Update(appraisalsTable).
		Set(goqu.Record{"whois": string(b)}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not patch appraisal whois in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
