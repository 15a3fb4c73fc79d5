package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tedsearch/tedsearch/internal/model"
)

// StatusStore handles the per-package ingestion status records.
type StatusStore struct {
	db *sqlx.DB
}

// NewStatusStore creates a new StatusStore.
func NewStatusStore(db *sqlx.DB) *StatusStore {
	return &StatusStore{db: db}
}

// GetOrCreate returns the status record for a package file name, creating an
// idle one if none exists yet. The file date is derived from the name's
// YYYYMMDD prefix.
func (s *StatusStore) GetOrCreate(ctx context.Context, fileName string) (*model.PackageStatus, error) {
	st := &model.PackageStatus{}
	err := s.db.GetContext(ctx, st,
		`SELECT * FROM package_statuses WHERE file_name = $1`, fileName)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get status %q: %w", fileName, err)
	}

	fileDate, err := model.FileDateFromName(fileName)
	if err != nil {
		return nil, err
	}

	st.FileName = fileName
	st.FileDate = fileDate
	st.State = model.StateIdle
	err = s.db.QueryRowContext(ctx, `
        INSERT INTO package_statuses (file_name, file_date, status)
        VALUES ($1, $2, $3)
        RETURNING id, added_timestamp, modified_timestamp`,
		st.FileName, st.FileDate, st.State).
		Scan(&st.ID, &st.AddedAt, &st.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create status %q: %w", fileName, err)
	}
	return st, nil
}

// SetState moves the record to a new state, optionally with a message, and
// persists it.
func (s *StatusStore) SetState(ctx context.Context, st *model.PackageStatus, state model.PackageState, msg string) error {
	st.State = state
	if msg != "" {
		st.StatusMsg = sql.NullString{String: msg, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
        UPDATE package_statuses
        SET status = $1, status_msg = $2, modified_timestamp = NOW()
        WHERE id = $3`,
		st.State, st.StatusMsg, st.ID)
	if err != nil {
		return fmt.Errorf("set status %q to %s: %w", st.FileName, state, err)
	}
	return nil
}

// CompletedForDate reports whether a package for the given date has already
// been ingested to completion. Used to refuse duplicate downloads.
func (s *StatusStore) CompletedForDate(ctx context.Context, date time.Time) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `
        SELECT COUNT(1) FROM package_statuses
        WHERE file_date = $1 AND status = $2`,
		date, model.StateComplete)
	if err != nil {
		return false, fmt.Errorf("check completed packages for %s: %w", date.Format("2006-01-02"), err)
	}
	return count > 0, nil
}

// Latest returns the most recent status records, newest file date first.
func (s *StatusStore) Latest(ctx context.Context, limit int) ([]model.PackageStatus, error) {
	statuses := []model.PackageStatus{}
	err := s.db.SelectContext(ctx, &statuses,
		`SELECT * FROM package_statuses ORDER BY file_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}
