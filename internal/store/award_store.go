package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tedsearch/tedsearch/internal/model"
)

// AwardStore handles database operations for contract award notices.
type AwardStore struct {
	db *sqlx.DB
}

// NewAwardStore creates a new AwardStore.
func NewAwardStore(db *sqlx.DB) *AwardStore {
	return &AwardStore{db: db}
}

// Exists reports whether an award with the given OJS reference is persisted.
func (s *AwardStore) Exists(ctx context.Context, ojsRef string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(1) FROM contract_award_notices WHERE ojs_ref = $1`, ojsRef)
	if err != nil {
		return false, fmt.Errorf("check award %q: %w", ojsRef, err)
	}
	return count > 0, nil
}

// Create inserts a new award and fills in its id and added timestamp.
// Awards are immutable once created.
func (s *AwardStore) Create(ctx context.Context, a *model.ContractAwardNotice) error {
	query := `
        INSERT INTO contract_award_notices
            (ojs_ref, contract_notice_id, country_id, url, title, short_descr,
             contracting_body_name, dispatch_date, publication_date,
             value_of_procurement, currency_id)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, added_timestamp`
	err := s.db.QueryRowContext(ctx, query,
		a.OJSRef, a.ContractNoticeID, a.CountryID, a.URL, a.Title, a.ShortDescr,
		a.ContractingBodyName, a.DispatchDate, a.PublicationDate,
		a.ValueOfProcurement, a.CurrencyID).
		Scan(&a.ID, &a.AddedAt)
	if err != nil {
		return fmt.Errorf("create award %q: %w", a.OJSRef, err)
	}
	return nil
}

// List returns awards ordered by OJS reference.
func (s *AwardStore) List(ctx context.Context, limit, offset int) ([]model.ContractAwardNotice, error) {
	awards := []model.ContractAwardNotice{}
	err := s.db.SelectContext(ctx, &awards,
		`SELECT * FROM contract_award_notices ORDER BY ojs_ref LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	return awards, nil
}
