package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Lot is one line item of a ContractNotice, identified by its ordinal within
// the parent notice. Award outcome fields start empty and are filled in when
// a matching ContractAwardNotice is ingested.
type Lot struct {
	ID                  int                 `db:"id" json:"id"`
	ContractNoticeID    int                 `db:"contract_notice_id" json:"contractNoticeId"`
	LotNo               int                 `db:"lot_no" json:"lotNo"`
	Title               string              `db:"title" json:"title"`
	ShortDescr          sql.NullString      `db:"short_descr" json:"shortDescr"`
	InfoAdd             sql.NullString      `db:"info_add" json:"infoAdd"`
	AwardedContract     bool                `db:"awarded_contract" json:"awardedContract"`
	AwardedToGroup      bool                `db:"awarded_to_group" json:"awardedToGroup"`
	ConclusionDate      sql.NullTime        `db:"conclusion_date" json:"conclusionDate"`
	ContractorName      sql.NullString      `db:"contractor_name" json:"contractorName"`
	ContractorCountryID sql.NullInt64       `db:"contractor_country_id" json:"contractorCountryId"`
	Value               decimal.NullDecimal `db:"value" json:"value"`
	CurrencyID          sql.NullInt64       `db:"currency_id" json:"currencyId"`
	ValueEstimated      bool                `db:"value_estimated" json:"valueEstimated"`
	NumberOfUnits       sql.NullInt64       `db:"number_of_units" json:"numberOfUnits"`
	ValuePerUnit        decimal.NullDecimal `db:"value_per_unit" json:"valuePerUnit"`
	AddedAt             time.Time           `db:"added_timestamp" json:"addedAt"`
}

// RecalcValuePerUnit recomputes ValuePerUnit from the current Value and
// NumberOfUnits. It must run on every save: when either input is missing, or
// units are zero, any previously derived value is cleared rather than left
// stale.
func (l *Lot) RecalcValuePerUnit() {
	if l.Value.Valid && l.NumberOfUnits.Valid && l.NumberOfUnits.Int64 > 0 {
		units := decimal.NewFromInt(l.NumberOfUnits.Int64)
		l.ValuePerUnit = decimal.NullDecimal{
			Decimal: l.Value.Decimal.DivRound(units, 2),
			Valid:   true,
		}
		return
	}
	l.ValuePerUnit = decimal.NullDecimal{}
}
