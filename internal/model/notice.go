package model

import (
	"database/sql"
	"regexp"
	"strings"
	"time"
)

// langTabRe matches the two-letter language tab at the end of a TED document
// URL, e.g. ".../TEXT:PL:HTML".
var langTabRe = regexp.MustCompile(`TEXT:(\D{2}):HTML$`)

// ContractNotice is a call for tenders (TED form F02).
type ContractNotice struct {
	ID                  int             `db:"id" json:"id"`
	OJSRef              string          `db:"ojs_ref" json:"ojsRef"` // format 9999/S 999-999999
	CountryID           int             `db:"country_id" json:"countryId"`
	URL                 string          `db:"url" json:"url"`
	Title               string          `db:"title" json:"title"`
	ShortDescr          string          `db:"short_descr" json:"shortDescr"`
	ContractingBodyName string          `db:"contracting_body_name" json:"contractingBodyName"`
	ClosingDate         sql.NullTime    `db:"closing_date" json:"closingDate"`
	DispatchDate        time.Time       `db:"dispatch_date" json:"dispatchDate"`
	PublicationDate     time.Time       `db:"publication_date" json:"publicationDate"`
	ProcurementRef      sql.NullString  `db:"procurement_ref" json:"procurementRef"`
	ProcurementDocsURL  string          `db:"procurement_docs_url" json:"procurementDocsUrl"`
	FullDocsAvailable   bool            `db:"full_docs_available" json:"fullDocsAvailable"`
	ProcurementDocsKey  sql.NullString  `db:"procurement_docs_key" json:"procurementDocsKey"` // blob store reference
	AddedAt             time.Time       `db:"added_timestamp" json:"addedAt"`
}

// UpdateURLLanguageTab rewrites the language tab of a TED document URL to
// lang, so the linked page renders in that language. URLs without a matching
// tab are returned unchanged. The surrounding colons are included in the
// replacement to avoid touching other parts of the URL.
func UpdateURLLanguageTab(url, lang string) string {
	m := langTabRe.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return strings.ReplaceAll(url, ":"+m[1]+":", ":"+lang+":")
}

// ConcatStrings flattens a multi-paragraph field into a single
// newline-joined string.
func ConcatStrings(parts []string) string {
	return strings.Join(parts, "\n")
}

// EnsureURLScheme prefixes url with "http://" when no scheme is present, so
// it is never treated as a relative link downstream.
func EnsureURLScheme(url string) string {
	if url == "" || strings.HasPrefix(url, "http") {
		return url
	}
	return "http://" + url
}
