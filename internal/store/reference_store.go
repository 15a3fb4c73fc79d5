package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tedsearch/tedsearch/internal/model"
)

// ErrCodeNotFound is returned when an ISO code is absent from the reference
// tables. Country and currency codes are part of a fixed universe loaded by
// migration, so hitting this during ingestion is an invariant violation, not
// a user-facing rejection.
var ErrCodeNotFound = errors.New("reference code not found")

// ReferenceStore handles the Country and Currency reference tables.
type ReferenceStore struct {
	db *sqlx.DB
}

// NewReferenceStore creates a new ReferenceStore.
func NewReferenceStore(db *sqlx.DB) *ReferenceStore {
	return &ReferenceStore{db: db}
}

// CountryByISO looks up a country by its ISO 3166 alpha-2 code.
func (s *ReferenceStore) CountryByISO(ctx context.Context, code string) (*model.Country, error) {
	c := &model.Country{}
	err := s.db.GetContext(ctx, c, `SELECT * FROM countries WHERE iso_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("country %q: %w", code, ErrCodeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get country %q: %w", code, err)
	}
	return c, nil
}

// CurrencyByISO looks up a currency by its ISO 4217 code.
func (s *ReferenceStore) CurrencyByISO(ctx context.Context, code string) (*model.Currency, error) {
	c := &model.Currency{}
	err := s.db.GetContext(ctx, c, `SELECT * FROM currencies WHERE iso_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("currency %q: %w", code, ErrCodeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get currency %q: %w", code, err)
	}
	return c, nil
}

// ActivateCountry flips is_active to true. A no-op for already-active rows;
// activation never reverses.
func (s *ReferenceStore) ActivateCountry(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE countries SET is_active = TRUE WHERE id = $1 AND NOT is_active`, id)
	if err != nil {
		return fmt.Errorf("activate country %d: %w", id, err)
	}
	return nil
}

// ActivateCurrency flips is_active to true, never back.
func (s *ReferenceStore) ActivateCurrency(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE currencies SET is_active = TRUE WHERE id = $1 AND NOT is_active`, id)
	if err != nil {
		return fmt.Errorf("activate currency %d: %w", id, err)
	}
	return nil
}

// ActiveCountries lists countries referenced by at least one ingested
// document, ordered by ISO code.
func (s *ReferenceStore) ActiveCountries(ctx context.Context) ([]model.Country, error) {
	countries := []model.Country{}
	err := s.db.SelectContext(ctx, &countries,
		`SELECT * FROM countries WHERE is_active ORDER BY iso_code`)
	if err != nil {
		return nil, fmt.Errorf("list active countries: %w", err)
	}
	return countries, nil
}
