package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ContractAwardNotice is the outcome of a ContractNotice (TED form F03).
// Immutable once created.
type ContractAwardNotice struct {
	ID                  int                 `db:"id" json:"id"`
	OJSRef              string              `db:"ojs_ref" json:"ojsRef"`
	ContractNoticeID    int                 `db:"contract_notice_id" json:"contractNoticeId"`
	CountryID           int                 `db:"country_id" json:"countryId"`
	URL                 string              `db:"url" json:"url"`
	Title               string              `db:"title" json:"title"`
	ShortDescr          string              `db:"short_descr" json:"shortDescr"`
	ContractingBodyName string              `db:"contracting_body_name" json:"contractingBodyName"`
	DispatchDate        time.Time           `db:"dispatch_date" json:"dispatchDate"`
	PublicationDate     time.Time           `db:"publication_date" json:"publicationDate"`
	ValueOfProcurement  decimal.NullDecimal `db:"value_of_procurement" json:"valueOfProcurement"`
	CurrencyID          sql.NullInt64       `db:"currency_id" json:"currencyId"`
	AddedAt             time.Time           `db:"added_timestamp" json:"addedAt"`
}
