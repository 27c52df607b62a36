package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"appraiser/pkg/domain"
)

// PgAppraisal is the appraisals table row. JSON document columns are carried
// as strings: database/sql scans jsonb into a string without ambiguity, and
// string parameters let the server infer the jsonb type on insert.
type PgAppraisal struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Domain     string  `db:"domain"`
	FinalScore float64 `db:"final_score"`
	Bracket    string  `db:"bracket"`

	Price       string         `db:"price"`
	Factors     string         `db:"factors"`
	Legal       string         `db:"legal"`
	Commentary  sql.NullString `db:"commentary"`
	Comparables sql.NullString `db:"comparables"`
	Whois       sql.NullString `db:"whois"`

	// OptionsHash is NULL on rows written before option fingerprinting was
	// introduced; such rows satisfy any requested hash.
	OptionsHash sql.NullString `db:"options_hash"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAppraisal) ToDomain() (*domain.Appraisal, error) {
	out := &domain.Appraisal{
		ID:          domain.AppraisalID(p.ID),
		Domain:      p.Domain,
		FinalScore:  p.FinalScore,
		Bracket:     p.Bracket,
		Commentary:  p.Commentary.String,
		OptionsHash: p.OptionsHash.String,
		CreatedAt:   p.CreatedAt,
	}

	if err := json.Unmarshal([]byte(p.Price), &out.Price); err != nil {
		return nil, fmt.Errorf("could not unmarshal price estimate: %w", err)
	}
	if err := json.Unmarshal([]byte(p.Factors), &out.Factors); err != nil {
		return nil, fmt.Errorf("could not unmarshal factor scores: %w", err)
	}
	if err := json.Unmarshal([]byte(p.Legal), &out.Legal); err != nil {
		return nil, fmt.Errorf("could not unmarshal legal risk: %w", err)
	}
	if p.Comparables.Valid {
		if err := json.Unmarshal([]byte(p.Comparables.String), &out.Comparables); err != nil {
			return nil, fmt.Errorf("could not unmarshal comparables: %w", err)
		}
	}
	if p.Whois.Valid {
		out.Whois = &domain.WhoisSnapshot{}
		if err := json.Unmarshal([]byte(p.Whois.String), out.Whois); err != nil {
			return nil, fmt.Errorf("could not unmarshal whois snapshot: %w", err)
		}
	}

	return out, nil
}

func (p *PgAppraisal) FromDomain(appraisal domain.Appraisal) error {
	price, err := json.Marshal(appraisal.Price)
	if err != nil {
		return fmt.Errorf("could not marshal price estimate: %w", err)
	}
	factors, err := json.Marshal(appraisal.Factors)
	if err != nil {
		return fmt.Errorf("could not marshal factor scores: %w", err)
	}
	legal, err := json.Marshal(appraisal.Legal)
	if err != nil {
		return fmt.Errorf("could not marshal legal risk: %w", err)
	}

	*p = PgAppraisal{
		ID:         uuid.UUID(appraisal.ID),
		Domain:     appraisal.Domain,
		FinalScore: appraisal.FinalScore,
		Bracket:    appraisal.Bracket,
		Price:      string(price),
		Factors:    string(factors),
		Legal:      string(legal),
		Commentary: sql.NullString{
			String: appraisal.Commentary,
			Valid:  appraisal.Commentary != "",
		},
		OptionsHash: sql.NullString{
			String: appraisal.OptionsHash,
			Valid:  appraisal.OptionsHash != "",
		},
		CreatedAt: appraisal.CreatedAt,
	}

	if len(appraisal.Comparables) > 0 {
		comps, err := json.Marshal(appraisal.Comparables)
		if err != nil {
			return fmt.Errorf("could not marshal comparables: %w", err)
		}
		p.Comparables = sql.NullString{String: string(comps), Valid: true}
	}
	if appraisal.Whois != nil {
		whois, err := json.Marshal(appraisal.Whois)
		if err != nil {
			return fmt.Errorf("could not marshal whois snapshot: %w", err)
		}
		p.Whois = sql.NullString{String: string(whois), Valid: true}
	}

	return nil
}

// PgSale is the comparable_sales table row. Similarity is computed per
// appraisal target and deliberately has no column.
type PgSale struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Domain    string    `db:"domain"`
	SoldPrice int64     `db:"sold_price"`
	SoldDate  time.Time `db:"sold_date"`
	Source    string    `db:"source"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSale) ToDomain() domain.ComparableSale {
	return domain.ComparableSale{
		Domain:    p.Domain,
		SoldPrice: p.SoldPrice,
		SoldDate:  p.SoldDate,
		Source:    p.Source,
	}
}

func (p *PgSale) FromDomain(sale domain.ComparableSale) {
	*p = PgSale{
		Domain:    sale.Domain,
		SoldPrice: sale.SoldPrice,
		SoldDate:  sale.SoldDate,
		Source:    sale.Source,
	}
}

func domainSalesToPg(sales []domain.ComparableSale) []PgSale {
	out := make([]PgSale, len(sales))
	for i := range out {
		out[i].FromDomain(sales[i])
	}

	return out
}

func pgSalesToDomain(sales []PgSale) []domain.ComparableSale {
	out := make([]domain.ComparableSale, 0, len(sales))
	for i := range sales {
		out = append(out, sales[i].ToDomain())
	}

	return out
}
