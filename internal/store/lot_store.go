package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tedsearch/tedsearch/internal/model"
)

// LotStore handles database operations for lots.
type LotStore struct {
	db *sqlx.DB
}

// NewLotStore creates a new LotStore.
func NewLotStore(db *sqlx.DB) *LotStore {
	return &LotStore{db: db}
}

// CreateBatch inserts all lots of a notice in one transaction. Callers are
// responsible for the derived-field and activation bookkeeping the per-row
// save path would normally do; the batch path deliberately skips it.
func (s *LotStore) CreateBatch(ctx context.Context, lots []model.Lot) error {
	if len(lots) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lot batch: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO lots
            (contract_notice_id, lot_no, title, short_descr, info_add)
        VALUES
            ($1, $2, $3, $4, $5)
        RETURNING id, added_timestamp`
	for i := range lots {
		l := &lots[i]
		err := tx.QueryRowContext(ctx, query,
			l.ContractNoticeID, l.LotNo, l.Title, l.ShortDescr, l.InfoAdd).
			Scan(&l.ID, &l.AddedAt)
		if err != nil {
			return fmt.Errorf("create lot %d of notice %d: %w", l.LotNo, l.ContractNoticeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lot batch: %w", err)
	}
	return nil
}

// ListByNotice returns a notice's lots ordered by ordinal.
func (s *LotStore) ListByNotice(ctx context.Context, noticeID int) ([]model.Lot, error) {
	lots := []model.Lot{}
	err := s.db.SelectContext(ctx, &lots,
		`SELECT * FROM lots WHERE contract_notice_id = $1 ORDER BY lot_no`, noticeID)
	if err != nil {
		return nil, fmt.Errorf("list lots of notice %d: %w", noticeID, err)
	}
	return lots, nil
}

// Update persists a lot's mutable fields. The value-per-unit column is
// written from the struct as-is; callers recompute it via RecalcValuePerUnit
// before saving.
func (s *LotStore) Update(ctx context.Context, l *model.Lot) error {
	query := `
        UPDATE lots
        SET awarded_contract = $1, awarded_to_group = $2, conclusion_date = $3,
            contractor_name = $4, contractor_country_id = $5, value = $6,
            currency_id = $7, value_estimated = $8, number_of_units = $9,
            value_per_unit = $10
        WHERE id = $11`
	_, err := s.db.ExecContext(ctx, query,
		l.AwardedContract, l.AwardedToGroup, l.ConclusionDate,
		l.ContractorName, l.ContractorCountryID, l.Value,
		l.CurrencyID, l.ValueEstimated, l.NumberOfUnits,
		l.ValuePerUnit, l.ID)
	if err != nil {
		return fmt.Errorf("update lot %d: %w", l.ID, err)
	}
	return nil
}

// SetNumberOfUnits records a manual unit count on a lot and recomputes the
// derived value-per-unit under the usual invariant.
func (s *LotStore) SetNumberOfUnits(ctx context.Context, lotID int, units sql.NullInt64) (*model.Lot, error) {
	l := &model.Lot{}
	err := s.db.GetContext(ctx, l, `SELECT * FROM lots WHERE id = $1`, lotID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lot %d: %w", lotID, err)
	}

	l.NumberOfUnits = units
	l.RecalcValuePerUnit()

	if err := s.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
