package service

import (
	"context"
	"time"

	"github.com/tedsearch/tedsearch/internal/model"
)

// Narrow store interfaces so the pipeline is testable without Postgres. The
// concrete sqlx stores in internal/store satisfy them.

// ReferenceStore resolves and activates reference data.
type ReferenceStore interface {
	CountryByISO(ctx context.Context, code string) (*model.Country, error)
	CurrencyByISO(ctx context.Context, code string) (*model.Currency, error)
	ActivateCountry(ctx context.Context, id int) error
	ActivateCurrency(ctx context.Context, id int) error
}

// NoticeStore persists contract notices.
type NoticeStore interface {
	Exists(ctx context.Context, ojsRef string) (bool, error)
	GetByOJSRef(ctx context.Context, ojsRef string) (*model.ContractNotice, error)
	Create(ctx context.Context, n *model.ContractNotice) error
}

// AwardStore persists contract award notices.
type AwardStore interface {
	Exists(ctx context.Context, ojsRef string) (bool, error)
	Create(ctx context.Context, a *model.ContractAwardNotice) error
}

// LotStore persists lots.
type LotStore interface {
	CreateBatch(ctx context.Context, lots []model.Lot) error
	ListByNotice(ctx context.Context, noticeID int) ([]model.Lot, error)
	Update(ctx context.Context, l *model.Lot) error
}

// StatusStore tracks per-package ingestion progress.
type StatusStore interface {
	GetOrCreate(ctx context.Context, fileName string) (*model.PackageStatus, error)
	SetState(ctx context.Context, st *model.PackageStatus, state model.PackageState, msg string) error
	CompletedForDate(ctx context.Context, date time.Time) (bool, error)
}

// PackageSource retrieves daily package archives. The FTP client implements
// it; tests substitute a local fake.
type PackageSource interface {
	CheckDailyPackage(ctx context.Context, date time.Time) (string, error)
	RetrieveDailyPackage(ctx context.Context, fileName, destDir string) (string, error)
}
