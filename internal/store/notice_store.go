package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tedsearch/tedsearch/internal/model"
)

// NoticeStore handles database operations for contract notices.
type NoticeStore struct {
	db *sqlx.DB
}

// NewNoticeStore creates a new NoticeStore.
func NewNoticeStore(db *sqlx.DB) *NoticeStore {
	return &NoticeStore{db: db}
}

// Exists reports whether a notice with the given OJS reference is persisted.
func (s *NoticeStore) Exists(ctx context.Context, ojsRef string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(1) FROM contract_notices WHERE ojs_ref = $1`, ojsRef)
	if err != nil {
		return false, fmt.Errorf("check notice %q: %w", ojsRef, err)
	}
	return count > 0, nil
}

// GetByOJSRef retrieves a notice by its OJS reference, or nil when absent.
func (s *NoticeStore) GetByOJSRef(ctx context.Context, ojsRef string) (*model.ContractNotice, error) {
	n := &model.ContractNotice{}
	err := s.db.GetContext(ctx, n,
		`SELECT * FROM contract_notices WHERE ojs_ref = $1`, ojsRef)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notice %q: %w", ojsRef, err)
	}
	return n, nil
}

// Create inserts a new notice and fills in its id and added timestamp.
func (s *NoticeStore) Create(ctx context.Context, n *model.ContractNotice) error {
	query := `
        INSERT INTO contract_notices
            (ojs_ref, country_id, url, title, short_descr, contracting_body_name,
             closing_date, dispatch_date, publication_date, procurement_ref,
             procurement_docs_url, full_docs_available)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, added_timestamp`
	err := s.db.QueryRowContext(ctx, query,
		n.OJSRef, n.CountryID, n.URL, n.Title, n.ShortDescr, n.ContractingBodyName,
		n.ClosingDate, n.DispatchDate, n.PublicationDate, n.ProcurementRef,
		n.ProcurementDocsURL, n.FullDocsAvailable).
		Scan(&n.ID, &n.AddedAt)
	if err != nil {
		return fmt.Errorf("create notice %q: %w", n.OJSRef, err)
	}
	return nil
}

// AttachProcurementDocs records the blob-store key of an uploaded supporting
// document. This is the only business mutation a notice sees after creation.
func (s *NoticeStore) AttachProcurementDocs(ctx context.Context, id int, key string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE contract_notices SET procurement_docs_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("attach docs to notice %d: %w", id, err)
	}
	return nil
}

// List returns notices ordered by OJS reference.
func (s *NoticeStore) List(ctx context.Context, limit, offset int) ([]model.ContractNotice, error) {
	notices := []model.ContractNotice{}
	err := s.db.SelectContext(ctx, &notices,
		`SELECT * FROM contract_notices ORDER BY ojs_ref LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}
