package service

// Sample TED export documents for pipeline tests. The notice carries five lot
// sections, two of which are dropped by the builder (missing title, ordinal
// "A"); the award covers lot 1 with a total value, lot 138 with only an
// estimate, and declares lot 3 unawarded.

const noticeXML = `<?xml version="1.0" encoding="UTF-8"?>
<TED_EXPORT xmlns="http://publications.europa.eu/resource/schema/ted/R2.0.9/publication" VERSION="R2.0.9.S02.E01">
  <CODED_DATA_SECTION>
    <REF_OJS>
      <DATE_PUB>20200305</DATE_PUB>
    </REF_OJS>
    <NOTICE_DATA>
      <NO_DOC_OJS>2020/S 046-108442</NO_DOC_OJS>
      <ISO_COUNTRY VALUE="PL"/>
      <URI_LIST>
        <URI_DOC LG="PL">http://ted.europa.eu/udl?uri=TED:NOTICE:108442-2020:TEXT:PL:HTML</URI_DOC>
      </URI_LIST>
    </NOTICE_DATA>
    <CODIF_DATA>
      <DS_DATE_DISPATCH>20200302</DS_DATE_DISPATCH>
      <TD_DOCUMENT_TYPE CODE="3">Contract notice</TD_DOCUMENT_TYPE>
      <NC_CONTRACT_NATURE CODE="2">Supplies</NC_CONTRACT_NATURE>
    </CODIF_DATA>
  </CODED_DATA_SECTION>
  <FORM_SECTION>
    <F02_2014 LG="PL">
      <CONTRACTING_BODY>
        <ADDRESS_CONTRACTING_BODY>
          <OFFICIALNAME>Zespol Opieki Zdrowotnej w Debicy</OFFICIALNAME>
        </ADDRESS_CONTRACTING_BODY>
        <DOCUMENT_FULL/>
        <URL_DOCUMENT>www.zoz-debica.pl</URL_DOCUMENT>
      </CONTRACTING_BODY>
      <OBJECT_CONTRACT>
        <TITLE>
          <P>Dostawa produktow leczniczych</P>
        </TITLE>
        <REFERENCE_NUMBER>ZP-PN-12/2020</REFERENCE_NUMBER>
        <CPV_MAIN>
          <CPV_CODE CODE="33600000"/>
        </CPV_MAIN>
        <LOT_DIVISION/>
        <SHORT_DESCR>
          <P>Przedmiotem zamowienia jest dostawa lekow.</P>
          <P>Zamowienie podzielono na pakiety.</P>
        </SHORT_DESCR>
        <OBJECT_DESCR ITEM="1">
          <TITLE>
            <P>Pakiet 1</P>
          </TITLE>
          <LOT_NO>1</LOT_NO>
          <SHORT_DESCR>
            <P>Leki rozne.</P>
          </SHORT_DESCR>
          <INFO_ADD>
            <P>Wymagane pozwolenie na dopuszczenie do obrotu.</P>
          </INFO_ADD>
        </OBJECT_DESCR>
        <OBJECT_DESCR ITEM="2">
          <LOT_NO>2</LOT_NO>
          <SHORT_DESCR>
            <P>Pakiet bez tytulu.</P>
          </SHORT_DESCR>
        </OBJECT_DESCR>
        <OBJECT_DESCR ITEM="3">
          <TITLE>
            <P>Pakiet 3</P>
          </TITLE>
          <LOT_NO>3</LOT_NO>
          <SHORT_DESCR>
            <P>Antybiotyki.</P>
          </SHORT_DESCR>
        </OBJECT_DESCR>
        <OBJECT_DESCR ITEM="4">
          <TITLE>
            <P>Pakiet A</P>
          </TITLE>
          <LOT_NO>A</LOT_NO>
        </OBJECT_DESCR>
        <OBJECT_DESCR ITEM="5">
          <TITLE>
            <P>Pakiet 138</P>
          </TITLE>
          <LOT_NO>138</LOT_NO>
        </OBJECT_DESCR>
      </OBJECT_CONTRACT>
      <PROCEDURE>
        <DATE_RECEIPT_TENDERS>2020-04-08</DATE_RECEIPT_TENDERS>
        <TIME_RECEIPT_TENDERS>10:00</TIME_RECEIPT_TENDERS>
      </PROCEDURE>
    </F02_2014>
  </FORM_SECTION>
</TED_EXPORT>`

const awardXML = `<?xml version="1.0" encoding="UTF-8"?>
<TED_EXPORT xmlns="http://publications.europa.eu/resource/schema/ted/R2.0.9/publication" VERSION="R2.0.9.S03.E01">
  <CODED_DATA_SECTION>
    <REF_OJS>
      <DATE_PUB>20200619</DATE_PUB>
    </REF_OJS>
    <NOTICE_DATA>
      <NO_DOC_OJS>2020/S 118-286341</NO_DOC_OJS>
      <ISO_COUNTRY VALUE="PL"/>
      <REF_NOTICE>
        <NO_DOC_OJS>2020/S 046-108442</NO_DOC_OJS>
      </REF_NOTICE>
      <VALUES>
        <VALUE CURRENCY="PLN">4731911.00</VALUE>
      </VALUES>
      <URI_LIST>
        <URI_DOC LG="PL">http://ted.europa.eu/udl?uri=TED:NOTICE:286341-2020:TEXT:PL:HTML</URI_DOC>
      </URI_LIST>
    </NOTICE_DATA>
    <CODIF_DATA>
      <DS_DATE_DISPATCH>20200616</DS_DATE_DISPATCH>
      <TD_DOCUMENT_TYPE CODE="7">Contract award notice</TD_DOCUMENT_TYPE>
      <NC_CONTRACT_NATURE CODE="2">Supplies</NC_CONTRACT_NATURE>
    </CODIF_DATA>
  </CODED_DATA_SECTION>
  <FORM_SECTION>
    <F03_2014 LG="PL">
      <CONTRACTING_BODY>
        <ADDRESS_CONTRACTING_BODY>
          <OFFICIALNAME>Zespol Opieki Zdrowotnej w Debicy</OFFICIALNAME>
        </ADDRESS_CONTRACTING_BODY>
      </CONTRACTING_BODY>
      <OBJECT_CONTRACT>
        <TITLE>
          <P>Dostawa produktow leczniczych</P>
        </TITLE>
        <CPV_MAIN>
          <CPV_CODE CODE="33600000"/>
        </CPV_MAIN>
        <LOT_DIVISION/>
        <SHORT_DESCR>
          <P>Rozstrzygniecie postepowania na dostawe lekow.</P>
        </SHORT_DESCR>
      </OBJECT_CONTRACT>
      <AWARD_CONTRACT ITEM="1">
        <LOT_NO>1</LOT_NO>
        <AWARDED_CONTRACT>
          <DATE_CONCLUSION_CONTRACT>2020-05-12</DATE_CONCLUSION_CONTRACT>
          <CONTRACTORS>
            <CONTRACTOR>
              <ADDRESS_CONTRACTOR>
                <OFFICIALNAME>Urtica Sp. z o.o.</OFFICIALNAME>
                <COUNTRY VALUE="PL"/>
              </ADDRESS_CONTRACTOR>
            </CONTRACTOR>
          </CONTRACTORS>
          <VALUES>
            <VAL_TOTAL CURRENCY="PLN">75750.00</VAL_TOTAL>
          </VALUES>
        </AWARDED_CONTRACT>
      </AWARD_CONTRACT>
      <AWARD_CONTRACT ITEM="2">
        <LOT_NO>138</LOT_NO>
        <AWARDED_CONTRACT>
          <DATE_CONCLUSION_CONTRACT>2020-05-12</DATE_CONCLUSION_CONTRACT>
          <CONTRACTORS>
            <CONTRACTOR>
              <ADDRESS_CONTRACTOR>
                <OFFICIALNAME>Salus International Sp. z o.o.</OFFICIALNAME>
                <COUNTRY VALUE="PL"/>
              </ADDRESS_CONTRACTOR>
            </CONTRACTOR>
          </CONTRACTORS>
          <VALUES>
            <VAL_ESTIMATED_TOTAL CURRENCY="PLN">12000.00</VAL_ESTIMATED_TOTAL>
          </VALUES>
        </AWARDED_CONTRACT>
      </AWARD_CONTRACT>
      <AWARD_CONTRACT ITEM="3">
        <LOT_NO>3</LOT_NO>
        <NO_AWARDED_CONTRACT>
          <PROCUREMENT_UNSUCCESSFUL/>
        </NO_AWARDED_CONTRACT>
      </AWARD_CONTRACT>
    </F03_2014>
  </FORM_SECTION>
</TED_EXPORT>`
