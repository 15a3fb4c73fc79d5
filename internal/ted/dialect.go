package ted

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSchema is returned by ResolveDialect for schema versions the
// registry does not know.
var ErrUnsupportedSchema = errors.New("unsupported TED schema version")

// Dialect carries the award-entry locators whose document paths changed
// between the two supported schema releases. The rest of the document model
// is shared, so all other locators live on Document directly.
//
// All paths are relative to an AWARD_CONTRACT section.
type Dialect struct {
	Version string

	AwardedToGroup       string
	ContractorCountry    string
	ContractorName       string
	ValTotal             string
	ValTotalCurrency     string
	ValEstimated         string
	ValEstimatedCurrency string
}

var dialectS02E01 = &Dialect{
	Version:              "R2.0.9.S02.E01",
	AwardedToGroup:       "def:AWARDED_CONTRACT/def:AWARDED_TO_GROUP",
	ContractorCountry:    "def:AWARDED_CONTRACT/def:CONTRACTOR/def:ADDRESS_CONTRACTOR/def:COUNTRY/@VALUE",
	ContractorName:       "def:AWARDED_CONTRACT/def:CONTRACTOR/def:ADDRESS_CONTRACTOR/def:OFFICIALNAME",
	ValTotal:             "def:AWARDED_CONTRACT/def:VAL_TOTAL",
	ValTotalCurrency:     "def:AWARDED_CONTRACT/def:VAL_TOTAL/@CURRENCY",
	ValEstimated:         "def:AWARDED_CONTRACT/def:VAL_ESTIMATED_TOTAL",
	ValEstimatedCurrency: "def:AWARDED_CONTRACT/def:VAL_ESTIMATED_TOTAL/@CURRENCY",
}

var dialectS03E01 = &Dialect{
	Version:              "R2.0.9.S03.E01",
	AwardedToGroup:       "def:AWARDED_CONTRACT/def:CONTRACTORS/def:AWARDED_TO_GROUP",
	ContractorCountry:    "def:AWARDED_CONTRACT/def:CONTRACTORS/def:CONTRACTOR/def:ADDRESS_CONTRACTOR/def:COUNTRY/@VALUE",
	ContractorName:       "def:AWARDED_CONTRACT/def:CONTRACTORS/def:CONTRACTOR/def:ADDRESS_CONTRACTOR/def:OFFICIALNAME",
	ValTotal:             "def:AWARDED_CONTRACT/def:VALUES/def:VAL_TOTAL",
	ValTotalCurrency:     "def:AWARDED_CONTRACT/def:VALUES/def:VAL_TOTAL/@CURRENCY",
	ValEstimated:         "def:AWARDED_CONTRACT/def:VALUES/def:VAL_ESTIMATED_TOTAL",
	ValEstimatedCurrency: "def:AWARDED_CONTRACT/def:VALUES/def:VAL_ESTIMATED_TOTAL/@CURRENCY",
}

// ResolveDialect maps a declared export schema version to its locator set.
// Resolve once per document; the Dialect is immutable and safe to share.
func ResolveDialect(version string) (*Dialect, error) {
	switch version {
	case dialectS02E01.Version:
		return dialectS02E01, nil
	case dialectS03E01.Version:
		return dialectS03E01, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSchema, version)
}
