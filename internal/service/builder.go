package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tedsearch/tedsearch/internal/config"
	"github.com/tedsearch/tedsearch/internal/model"
	"github.com/tedsearch/tedsearch/internal/ted"
)

// Date layouts used by the TED export: coded-data dates are 8 digits, form
// dates are dashed.
const (
	tenderDateLayout = "20060102"
	lotDateLayout    = "2006-01-02"
)

// Builder maps validated documents into entity rows. It must only ever see
// documents the Validator accepted; a missing country or parent notice here
// is a violated invariant and propagates as a hard error.
type Builder struct {
	cfg        *config.Config
	refs       ReferenceStore
	notices    NoticeStore
	awards     AwardStore
	lots       LotStore
	reconciler *Reconciler
	loc        *time.Location
}

// NewBuilder creates a Builder. The publication timezone is resolved once
// here; an unknown zone name is a configuration error.
func NewBuilder(cfg *config.Config, refs ReferenceStore, notices NoticeStore, awards AwardStore, lots LotStore) (*Builder, error) {
	loc, err := time.LoadLocation(cfg.TED.PublicationTimezone)
	if err != nil {
		return nil, fmt.Errorf("load publication timezone %q: %w", cfg.TED.PublicationTimezone, err)
	}
	return &Builder{
		cfg:        cfg,
		refs:       refs,
		notices:    notices,
		awards:     awards,
		lots:       lots,
		reconciler: NewReconciler(refs, lots),
		loc:        loc,
	}, nil
}

// BuildNotice creates a ContractNotice row and its lot batch from a
// validated Contract Notice document.
func (b *Builder) BuildNotice(ctx context.Context, doc *ted.Document) (*model.ContractNotice, error) {
	country, err := b.refs.CountryByISO(ctx, doc.CountryCode())
	if err != nil {
		return nil, err
	}

	dispatchDate, err := time.Parse(tenderDateLayout, doc.DispatchDate())
	if err != nil {
		return nil, fmt.Errorf("parse dispatch date: %w", err)
	}
	publicationDate, err := time.Parse(tenderDateLayout, doc.PublicationDate())
	if err != nil {
		return nil, fmt.Errorf("parse publication date: %w", err)
	}
	closingDate, err := b.closingInstant(doc)
	if err != nil {
		return nil, err
	}

	notice := &model.ContractNotice{
		OJSRef:              doc.OJSRef(),
		CountryID:           country.ID,
		URL:                 model.UpdateURLLanguageTab(doc.DocURL(), b.cfg.TED.ExportLanguage),
		Title:               doc.Title(),
		ShortDescr:          model.ConcatStrings(doc.ShortDescr()),
		ContractingBodyName: doc.ContractingBodyName(),
		ClosingDate:         closingDate,
		DispatchDate:        dispatchDate,
		PublicationDate:     publicationDate,
		ProcurementDocsURL:  model.EnsureURLScheme(doc.ProcurementDocsURL()),
		FullDocsAvailable:   doc.FullDocsAvailable(),
	}
	if ref := doc.ProcurementRef(); ref != "" {
		notice.ProcurementRef = sql.NullString{String: ref, Valid: true}
	}

	if err := b.refs.ActivateCountry(ctx, country.ID); err != nil {
		return nil, err
	}
	if err := b.notices.Create(ctx, notice); err != nil {
		return nil, err
	}
	if err := b.createLots(ctx, doc, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// createLots builds the notice's lot batch. Entries without a title or with
// a non-numeric ordinal are dropped without error: the export carries plenty
// of placeholder sections and this is deliberate data hygiene.
func (b *Builder) createLots(ctx context.Context, doc *ted.Document, notice *model.ContractNotice) error {
	var lots []model.Lot
	for _, entry := range doc.LotEntries() {
		title := entry.Title()
		lotNo, numeric := parseOrdinal(entry.LotNo())
		if title == "" || !numeric {
			continue
		}

		lot := model.Lot{
			ContractNoticeID: notice.ID,
			LotNo:            lotNo,
			Title:            title,
		}
		if descr := model.ConcatStrings(entry.ShortDescr()); descr != "" {
			lot.ShortDescr = sql.NullString{String: descr, Valid: true}
		}
		if info := model.ConcatStrings(entry.InfoAdd()); info != "" {
			lot.InfoAdd = sql.NullString{String: info, Valid: true}
		}
		lots = append(lots, lot)
	}

	if err := b.lots.CreateBatch(ctx, lots); err != nil {
		return err
	}

	// The batch insert bypasses the per-row save path, so reference
	// activation has to happen here for every distinct country and
	// currency the filtered lots carry. Skipping it would leave codes
	// stuck in the "never referenced" state.
	return b.activateLotReferences(ctx, lots)
}

func (b *Builder) activateLotReferences(ctx context.Context, lots []model.Lot) error {
	countries := map[int64]struct{}{}
	currencies := map[int64]struct{}{}
	for _, l := range lots {
		if l.ContractorCountryID.Valid {
			countries[l.ContractorCountryID.Int64] = struct{}{}
		}
		if l.CurrencyID.Valid {
			currencies[l.CurrencyID.Int64] = struct{}{}
		}
	}
	for id := range countries {
		if err := b.refs.ActivateCountry(ctx, int(id)); err != nil {
			return err
		}
	}
	for id := range currencies {
		if err := b.refs.ActivateCurrency(ctx, int(id)); err != nil {
			return err
		}
	}
	return nil
}

// BuildAward creates a ContractAwardNotice row from a validated Contract
// Award Notice document and reconciles the parent notice's lots with the
// award outcome.
func (b *Builder) BuildAward(ctx context.Context, doc *ted.Document) (*model.ContractAwardNotice, error) {
	country, err := b.refs.CountryByISO(ctx, doc.CountryCode())
	if err != nil {
		return nil, err
	}

	parent, err := b.notices.GetByOJSRef(ctx, doc.RefNoticeOJS())
	if err != nil {
		return nil, err
	}
	if parent == nil {
		// The validator guaranteed this notice exists; losing it between
		// validation and build is outside this pipeline's control.
		return nil, fmt.Errorf("contract notice %q vanished before award build", doc.RefNoticeOJS())
	}

	dispatchDate, err := time.Parse(tenderDateLayout, doc.DispatchDate())
	if err != nil {
		return nil, fmt.Errorf("parse dispatch date: %w", err)
	}
	publicationDate, err := time.Parse(tenderDateLayout, doc.PublicationDate())
	if err != nil {
		return nil, fmt.Errorf("parse publication date: %w", err)
	}

	award := &model.ContractAwardNotice{
		OJSRef:              doc.OJSRef(),
		ContractNoticeID:    parent.ID,
		CountryID:           country.ID,
		URL:                 model.UpdateURLLanguageTab(doc.DocURL(), b.cfg.TED.ExportLanguage),
		Title:               doc.Title(),
		ShortDescr:          model.ConcatStrings(doc.ShortDescr()),
		ContractingBodyName: doc.ContractingBodyName(),
		DispatchDate:        dispatchDate,
		PublicationDate:     publicationDate,
	}

	// Total value and currency only when the source declares a value.
	if raw := doc.ProcurementValue(); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse procurement value %q: %w", raw, err)
		}
		currency, err := b.refs.CurrencyByISO(ctx, doc.ProcurementValueCurrency())
		if err != nil {
			return nil, err
		}
		if err := b.refs.ActivateCurrency(ctx, currency.ID); err != nil {
			return nil, err
		}
		award.ValueOfProcurement = decimal.NullDecimal{Decimal: value, Valid: true}
		award.CurrencyID = sql.NullInt64{Int64: int64(currency.ID), Valid: true}
	}

	if err := b.refs.ActivateCountry(ctx, country.ID); err != nil {
		return nil, err
	}
	if err := b.awards.Create(ctx, award); err != nil {
		return nil, err
	}
	if err := b.reconciler.Reconcile(ctx, doc, award); err != nil {
		return nil, err
	}
	return award, nil
}

// closingInstant combines the optional raw closing date and time into a
// timezone-aware instant in the publication timezone. A date without a time
// means midnight; no date means no closing instant.
func (b *Builder) closingInstant(doc *ted.Document) (sql.NullTime, error) {
	dateStr := doc.ClosingDate()
	if dateStr == "" {
		return sql.NullTime{}, nil
	}

	layout := lotDateLayout
	value := dateStr
	if timeStr := doc.ClosingTime(); timeStr != "" {
		layout = lotDateLayout + "15:04"
		value = dateStr + timeStr
	}

	t, err := time.ParseInLocation(layout, value, b.loc)
	if err != nil {
		return sql.NullTime{}, fmt.Errorf("parse closing date: %w", err)
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

// parseOrdinal reports whether raw is a plain unsigned integer and returns
// its value.
func parseOrdinal(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
