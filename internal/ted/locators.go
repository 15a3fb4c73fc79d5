package ted

// XPath locators for TED export XML files.
//
// The TED export uses an unnamed default namespace for the whole document,
// which XPath name tests cannot address directly. Parse binds that namespace
// to the "def" prefix, so every locator below is written against "def:".
//
// Locators whose path differs between the two supported schema releases live
// in dialect.go; everything here is dialect-invariant.

// Document-level locators, shared by both form types.
const (
	locExportVersion      = "/def:TED_EXPORT/@VERSION"
	locDatePub            = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:REF_OJS/def:DATE_PUB"
	locDateDispatch       = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:CODIF_DATA/def:DS_DATE_DISPATCH"
	locISOCountry         = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:ISO_COUNTRY/@VALUE"
	locContractNatureCode = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:CODIF_DATA/def:NC_CONTRACT_NATURE/@CODE"
	locOJSRef             = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:NO_DOC_OJS"
	locDocTypeCode        = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:CODIF_DATA/def:TD_DOCUMENT_TYPE/@CODE"
	locURIDoc             = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:URI_LIST/def:URI_DOC"
)

// Contract Notice (form F02) locators.
const (
	locF02CPVCode            = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:CPV_MAIN/def:CPV_CODE/@CODE"
	locF02LotDivision        = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:LOT_DIVISION"
	locF02OfficialName       = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:CONTRACTING_BODY/def:ADDRESS_CONTRACTING_BODY/def:OFFICIALNAME"
	locF02ShortDescrP        = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:SHORT_DESCR/def:P" // multi-valued
	locF02TitleP             = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:TITLE/def:P"
	locF02ObjectDescr        = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:OBJECT_DESCR"
	locF02DocumentFull       = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:CONTRACTING_BODY/def:DOCUMENT_FULL"
	locF02URLDocument        = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:CONTRACTING_BODY/def:URL_DOCUMENT"
	locF02ReferenceNumber    = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:OBJECT_CONTRACT/def:REFERENCE_NUMBER"
	locF02DateReceiptTenders = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:PROCEDURE/def:DATE_RECEIPT_TENDERS"
	locF02TimeReceiptTenders = "/def:TED_EXPORT/def:FORM_SECTION/def:F02_2014/def:PROCEDURE/def:TIME_RECEIPT_TENDERS"
)

// Contract Award Notice (form F03) locators.
const (
	locF03CPVCode       = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:OBJECT_CONTRACT/def:CPV_MAIN/def:CPV_CODE/@CODE"
	locF03LotDivision   = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:OBJECT_CONTRACT/def:LOT_DIVISION"
	locF03OfficialName  = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:CONTRACTING_BODY/def:ADDRESS_CONTRACTING_BODY/def:OFFICIALNAME"
	locF03ShortDescrP   = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:OBJECT_CONTRACT/def:SHORT_DESCR/def:P" // multi-valued
	locF03TitleP        = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:OBJECT_CONTRACT/def:TITLE/def:P"
	locF03RefNoticeOJS  = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:REF_NOTICE/def:NO_DOC_OJS"
	locF03Value         = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:VALUES/def:VALUE"
	locF03ValueCurrency = "/def:TED_EXPORT/def:CODED_DATA_SECTION/def:NOTICE_DATA/def:VALUES/def:VALUE/@CURRENCY"
	locF03AwardContract = "/def:TED_EXPORT/def:FORM_SECTION/def:F03_2014/def:AWARD_CONTRACT"
)

// Lot locators relative to an F02 OBJECT_DESCR section.
const (
	locLotNo         = "def:LOT_NO"
	locLotTitleP     = "def:TITLE/def:P"
	locLotInfoAddP   = "def:INFO_ADD/def:P"     // multi-valued
	locLotShortDescP = "def:SHORT_DESCR/def:P" // multi-valued
)

// Award-entry locators relative to an F03 AWARD_CONTRACT section.
const (
	locAwardLotNo           = "def:LOT_NO"
	locAwardAwardedContract = "def:AWARDED_CONTRACT"
	locAwardConclusionDate  = "def:AWARDED_CONTRACT/def:DATE_CONCLUSION_CONTRACT"
)
