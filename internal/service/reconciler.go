package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tedsearch/tedsearch/internal/model"
	"github.com/tedsearch/tedsearch/internal/ted"
)

// Reconciler applies award outcomes to the lots created when the parent
// Contract Notice was ingested. Lots are located by ordinal and mutated in
// place; they are never re-created here.
type Reconciler struct {
	refs ReferenceStore
	lots LotStore
}

// NewReconciler creates a Reconciler.
func NewReconciler(refs ReferenceStore, lots LotStore) *Reconciler {
	return &Reconciler{refs: refs, lots: lots}
}

// Reconcile walks every lot of the award's parent notice and updates those
// the award document carries an entry for. An absent entry for an ordinal is
// the normal "contract not awarded for that lot" case and leaves the lot
// completely untouched.
func (r *Reconciler) Reconcile(ctx context.Context, doc *ted.Document, award *model.ContractAwardNotice) error {
	dialect, err := ted.ResolveDialect(doc.SchemaVersion())
	if err != nil {
		// The validator confirmed the schema version before we got here.
		return err
	}

	entries := map[string]ted.AwardEntry{}
	for _, e := range doc.AwardEntries() {
		entries[e.LotNo()] = e
	}

	lots, err := r.lots.ListByNotice(ctx, award.ContractNoticeID)
	if err != nil {
		return err
	}

	for i := range lots {
		lot := &lots[i]
		entry, ok := entries[strconv.Itoa(lot.LotNo)]
		if !ok {
			continue
		}
		if err := r.applyEntry(ctx, lot, entry, dialect); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) applyEntry(ctx context.Context, lot *model.Lot, entry ted.AwardEntry, dialect *ted.Dialect) error {
	lot.AwardedContract = entry.Awarded()
	lot.AwardedToGroup = entry.AwardedToGroup(dialect)

	if lot.AwardedContract {
		conclusionDate, err := time.Parse(lotDateLayout, entry.ConclusionDate())
		if err != nil {
			return fmt.Errorf("parse conclusion date for lot %d: %w", lot.LotNo, err)
		}
		lot.ConclusionDate = sql.NullTime{Time: conclusionDate, Valid: true}

		country, err := r.refs.CountryByISO(ctx, entry.ContractorCountry(dialect))
		if err != nil {
			return err
		}
		if err := r.refs.ActivateCountry(ctx, country.ID); err != nil {
			return err
		}
		lot.ContractorCountryID = sql.NullInt64{Int64: int64(country.ID), Valid: true}
		lot.ContractorName = sql.NullString{String: entry.ContractorName(dialect), Valid: true}

		// An entry without a total value only declares an estimate; mark
		// the lot instead of saving a number that was never awarded.
		if raw := entry.TotalValue(dialect); raw != "" {
			value, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("parse awarded value for lot %d: %w", lot.LotNo, err)
			}
			currency, err := r.refs.CurrencyByISO(ctx, entry.TotalValueCurrency(dialect))
			if err != nil {
				return err
			}
			if err := r.refs.ActivateCurrency(ctx, currency.ID); err != nil {
				return err
			}
			lot.Value = decimal.NullDecimal{Decimal: value, Valid: true}
			lot.CurrencyID = sql.NullInt64{Int64: int64(currency.ID), Valid: true}
		} else {
			lot.ValueEstimated = true
		}
	}

	lot.RecalcValuePerUnit()
	return r.lots.Update(ctx, lot)
}
