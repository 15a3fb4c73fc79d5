package handlers

import (
	"context"
	"database/sql"
	"io"

	"github.com/tedsearch/tedsearch/internal/model"
)

// Store interfaces consumed by the handlers. The sqlx stores satisfy them;
// tests substitute fakes.

type NoticeLister interface {
	List(ctx context.Context, limit, offset int) ([]model.ContractNotice, error)
	AttachProcurementDocs(ctx context.Context, id int, key string) error
}

type CountryLister interface {
	ActiveCountries(ctx context.Context) ([]model.Country, error)
}

type AwardLister interface {
	List(ctx context.Context, limit, offset int) ([]model.ContractAwardNotice, error)
}

type LotReader interface {
	ListByNotice(ctx context.Context, noticeID int) ([]model.Lot, error)
	SetNumberOfUnits(ctx context.Context, lotID int, units sql.NullInt64) (*model.Lot, error)
}

type StatusLister interface {
	Latest(ctx context.Context, limit int) ([]model.PackageStatus, error)
}

// Ingestor validates and persists a single uploaded document.
type Ingestor interface {
	IngestFile(ctx context.Context, fileName string, r io.Reader) (accepted bool, violations []string, err error)
}
