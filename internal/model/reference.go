package model

// Country is an ISO 3166 alpha-2 reference entry. The full table is seeded
// once by migration; IsActive starts false and flips to true the first time
// an ingested document references the code. It never flips back.
type Country struct {
	ID       int    `db:"id" json:"id"`
	ISOCode  string `db:"iso_code" json:"isoCode"`
	Name     string `db:"country_name" json:"name"`
	IsActive bool   `db:"is_active" json:"isActive"`
}

// Currency is an ISO 4217 reference entry with the same deferred-activation
// behaviour as Country.
type Currency struct {
	ID       int    `db:"id" json:"id"`
	ISOCode  string `db:"iso_code" json:"isoCode"`
	Name     string `db:"currency_name" json:"name"`
	IsActive bool   `db:"is_active" json:"isActive"`
}
