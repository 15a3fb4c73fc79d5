package ted

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// DocType classifies a TED export document by its TD_DOCUMENT_TYPE code.
type DocType int

const (
	DocTypeUnsupported DocType = iota
	DocTypeNotice              // code "3", Contract Notice (form F02)
	DocTypeAward               // code "7", Contract Award Notice (form F03)
)

// Codes the two supported document types declare.
const (
	ContractNoticeCode      = "3"
	ContractAwardNoticeCode = "7"
)

// Document is a parsed TED export file with typed field accessors. All
// lookups go through XPath locators evaluated against the document tree with
// the default namespace bound to the "def" prefix.
type Document struct {
	root  *xmlquery.Node
	ns    map[string]string
	exprs map[string]*xpath.Expr
}

// Parse reads a TED export XML document from r. Malformed markup returns a
// wrapped error; callers treat that as a per-document rejection, not a crash.
//
// The export declares a single unnamed default namespace for the whole body.
// XPath name tests cannot reference an unnamed namespace, so it is bound to
// the "def" alias here, once, before any field lookup.
func Parse(r io.Reader) (*Document, error) {
	tree, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse TED export: %w", err)
	}

	var root *xmlquery.Node
	for n := tree.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			root = n
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parse TED export: document has no root element")
	}

	return &Document{
		root:  tree,
		ns:    map[string]string{"def": root.NamespaceURI},
		exprs: make(map[string]*xpath.Expr),
	}, nil
}

// compile returns the cached compiled form of a locator. Locators are
// package constants, so a compile failure is a programming error.
func (d *Document) compile(locator string) *xpath.Expr {
	if e, ok := d.exprs[locator]; ok {
		return e
	}
	e, err := xpath.CompileWithNS(locator, d.ns)
	if err != nil {
		panic(fmt.Sprintf("ted: bad locator %q: %v", locator, err))
	}
	d.exprs[locator] = e
	return e
}

// text returns the trimmed text of the first node the locator selects under
// n, or "" when nothing matches.
func (d *Document) text(n *xmlquery.Node, locator string) string {
	found := xmlquery.QuerySelector(n, d.compile(locator))
	if found == nil {
		return ""
	}
	return strings.TrimSpace(found.InnerText())
}

// textList returns the trimmed texts of every node the locator selects under
// n, preserving document order. Multi-paragraph fields stay sequences here;
// flattening is the builder's job.
func (d *Document) textList(n *xmlquery.Node, locator string) []string {
	nodes := xmlquery.QuerySelectorAll(n, d.compile(locator))
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, strings.TrimSpace(node.InnerText()))
	}
	return out
}

// exists reports whether the locator selects at least one node under n.
func (d *Document) exists(n *xmlquery.Node, locator string) bool {
	return xmlquery.QuerySelector(n, d.compile(locator)) != nil
}

// SchemaVersion returns the declared export schema version string.
func (d *Document) SchemaVersion() string {
	return d.text(d.root, locExportVersion)
}

// DocTypeCode returns the raw TD_DOCUMENT_TYPE code.
func (d *Document) DocTypeCode() string {
	return d.text(d.root, locDocTypeCode)
}

// Type classifies the document.
func (d *Document) Type() DocType {
	switch d.DocTypeCode() {
	case ContractNoticeCode:
		return DocTypeNotice
	case ContractAwardNoticeCode:
		return DocTypeAward
	}
	return DocTypeUnsupported
}

// OJSRef returns the document's external reference id.
func (d *Document) OJSRef() string {
	return d.text(d.root, locOJSRef)
}

// CountryCode returns the ISO 3166 alpha-2 code of the issuing country.
func (d *Document) CountryCode() string {
	return d.text(d.root, locISOCountry)
}

// ContractNatureCode returns the NC_CONTRACT_NATURE code ("2" = Supplies).
func (d *Document) ContractNatureCode() string {
	return d.text(d.root, locContractNatureCode)
}

// DocURL returns the canonical TED document URL.
func (d *Document) DocURL() string {
	return d.text(d.root, locURIDoc)
}

// DispatchDate returns the raw dispatch date string (YYYYMMDD).
func (d *Document) DispatchDate() string {
	return d.text(d.root, locDateDispatch)
}

// PublicationDate returns the raw publication date string (YYYYMMDD).
func (d *Document) PublicationDate() string {
	return d.text(d.root, locDatePub)
}

// CPVCode returns the main CPV classification code from the type-specific
// form section.
func (d *Document) CPVCode() string {
	switch d.Type() {
	case DocTypeNotice:
		return d.text(d.root, locF02CPVCode)
	case DocTypeAward:
		return d.text(d.root, locF03CPVCode)
	}
	return ""
}

// LotDivision reports whether the document declares itself divided into lots
// (a presence check at the type-specific location).
func (d *Document) LotDivision() bool {
	switch d.Type() {
	case DocTypeNotice:
		return d.exists(d.root, locF02LotDivision)
	case DocTypeAward:
		return d.exists(d.root, locF03LotDivision)
	}
	return false
}

// Title returns the contract title from the type-specific form section.
func (d *Document) Title() string {
	switch d.Type() {
	case DocTypeNotice:
		return d.text(d.root, locF02TitleP)
	case DocTypeAward:
		return d.text(d.root, locF03TitleP)
	}
	return ""
}

// ShortDescr returns the multi-paragraph contract description as an ordered
// sequence of paragraphs.
func (d *Document) ShortDescr() []string {
	switch d.Type() {
	case DocTypeNotice:
		return d.textList(d.root, locF02ShortDescrP)
	case DocTypeAward:
		return d.textList(d.root, locF03ShortDescrP)
	}
	return nil
}

// ContractingBodyName returns the issuing body's official name.
func (d *Document) ContractingBodyName() string {
	switch d.Type() {
	case DocTypeNotice:
		return d.text(d.root, locF02OfficialName)
	case DocTypeAward:
		return d.text(d.root, locF03OfficialName)
	}
	return ""
}

// Contract Notice specific accessors.

// ClosingDate returns the raw submission-closing date string (YYYY-MM-DD),
// empty when the notice declares none.
func (d *Document) ClosingDate() string {
	return d.text(d.root, locF02DateReceiptTenders)
}

// ClosingTime returns the raw submission-closing time string (HH:MM), empty
// when the notice declares none.
func (d *Document) ClosingTime() string {
	return d.text(d.root, locF02TimeReceiptTenders)
}

// ProcurementRef returns the buyer's own procurement reference, if any.
func (d *Document) ProcurementRef() string {
	return d.text(d.root, locF02ReferenceNumber)
}

// ProcurementDocsURL returns the external document-location URL.
func (d *Document) ProcurementDocsURL() string {
	return d.text(d.root, locF02URLDocument)
}

// FullDocsAvailable reports whether the notice declares full procurement
// documents available online.
func (d *Document) FullDocsAvailable() bool {
	return d.exists(d.root, locF02DocumentFull)
}

// Contract Award Notice specific accessors.

// RefNoticeOJS returns the external reference of the originating Contract
// Notice an award refers back to.
func (d *Document) RefNoticeOJS() string {
	return d.text(d.root, locF03RefNoticeOJS)
}

// ProcurementValue returns the raw total procurement value string, empty
// when the source declares none.
func (d *Document) ProcurementValue() string {
	return d.text(d.root, locF03Value)
}

// ProcurementValueCurrency returns the currency code of ProcurementValue.
func (d *Document) ProcurementValueCurrency() string {
	return d.text(d.root, locF03ValueCurrency)
}

// LotEntry is one OBJECT_DESCR section of a Contract Notice.
type LotEntry struct {
	d    *Document
	node *xmlquery.Node
}

// LotEntries returns the notice's lot sections in document order.
func (d *Document) LotEntries() []LotEntry {
	nodes := xmlquery.QuerySelectorAll(d.root, d.compile(locF02ObjectDescr))
	entries := make([]LotEntry, 0, len(nodes))
	for _, n := range nodes {
		entries = append(entries, LotEntry{d: d, node: n})
	}
	return entries
}

// LotNo returns the raw lot ordinal string.
func (e LotEntry) LotNo() string { return e.d.text(e.node, locLotNo) }

// Title returns the lot title.
func (e LotEntry) Title() string { return e.d.text(e.node, locLotTitleP) }

// ShortDescr returns the lot description paragraphs.
func (e LotEntry) ShortDescr() []string { return e.d.textList(e.node, locLotShortDescP) }

// InfoAdd returns the additional-information paragraphs.
func (e LotEntry) InfoAdd() []string { return e.d.textList(e.node, locLotInfoAddP) }

// AwardEntry is one AWARD_CONTRACT section of a Contract Award Notice,
// scoped to a single lot ordinal. The seven sub-fields whose location varies
// between schema releases are queried through a Dialect.
type AwardEntry struct {
	d    *Document
	node *xmlquery.Node
}

// AwardEntries returns the award's per-lot sections in document order.
func (d *Document) AwardEntries() []AwardEntry {
	nodes := xmlquery.QuerySelectorAll(d.root, d.compile(locF03AwardContract))
	entries := make([]AwardEntry, 0, len(nodes))
	for _, n := range nodes {
		entries = append(entries, AwardEntry{d: d, node: n})
	}
	return entries
}

// LotNo returns the raw lot ordinal string this entry applies to.
func (e AwardEntry) LotNo() string { return e.d.text(e.node, locAwardLotNo) }

// Awarded reports whether the entry carries an awarded-contract marker.
func (e AwardEntry) Awarded() bool { return e.d.exists(e.node, locAwardAwardedContract) }

// ConclusionDate returns the raw contract conclusion date (YYYY-MM-DD).
func (e AwardEntry) ConclusionDate() string { return e.d.text(e.node, locAwardConclusionDate) }

// AwardedToGroup reports the group-award marker at the dialect's location.
func (e AwardEntry) AwardedToGroup(dl *Dialect) bool { return e.d.exists(e.node, dl.AwardedToGroup) }

// ContractorCountry returns the winning contractor's country code.
func (e AwardEntry) ContractorCountry(dl *Dialect) string {
	return e.d.text(e.node, dl.ContractorCountry)
}

// ContractorName returns the winning contractor's official name.
func (e AwardEntry) ContractorName(dl *Dialect) string {
	return e.d.text(e.node, dl.ContractorName)
}

// TotalValue returns the raw awarded total value, empty when the source only
// declares an estimate.
func (e AwardEntry) TotalValue(dl *Dialect) string { return e.d.text(e.node, dl.ValTotal) }

// TotalValueCurrency returns the currency code of TotalValue.
func (e AwardEntry) TotalValueCurrency(dl *Dialect) string {
	return e.d.text(e.node, dl.ValTotalCurrency)
}

// EstimatedValue returns the raw estimated total value.
func (e AwardEntry) EstimatedValue(dl *Dialect) string { return e.d.text(e.node, dl.ValEstimated) }

// EstimatedValueCurrency returns the currency code of EstimatedValue.
func (e AwardEntry) EstimatedValueCurrency(dl *Dialect) string {
	return e.d.text(e.node, dl.ValEstimatedCurrency)
}
