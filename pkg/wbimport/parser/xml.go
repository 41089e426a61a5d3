package parser

import "encoding/xml"

// Struct mappings for the package parts this importer reads. Child element
// names are left unqualified so they match regardless of which namespace
// prefix the producing application used.

type xlsxWorkbook struct {
	XMLName      xml.Name          `xml:"workbook"`
	Sheets       []xlsxSheetEntry  `xml:"sheets>sheet"`
	DefinedNames []xlsxDefinedName `xml:"definedNames>definedName"`
}

type xlsxSheetEntry struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	RID     string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type xlsxDefinedName struct {
	Name         string  `xml:"name,attr"`
	LocalSheetID *string `xml:"localSheetId,attr"`
	Text         string  `xml:",chardata"`
}

type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"Relationships"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xlsxSST struct {
	XMLName xml.Name `xml:"sst"`
	SI      []xlsxSI `xml:"si"`
}

// xlsxSI is a shared-string entry: either a single direct text node or a
// sequence of rich-text runs.
type xlsxSI struct {
	T *xlsxText `xml:"t"`
	R []xlsxRun `xml:"r"`
}

type xlsxRun struct {
	T xlsxText `xml:"t"`
}

type xlsxText struct {
	Content string `xml:",chardata"`
}

type xlsxWorksheet struct {
	XMLName         xml.Name             `xml:"worksheet"`
	Dimension       *xlsxDimension       `xml:"dimension"`
	Rows            []xlsxRow            `xml:"sheetData>row"`
	DataValidations []xlsxDataValidation `xml:"dataValidations>dataValidation"`
}

type xlsxDimension struct {
	Ref string `xml:"ref,attr"`
}

type xlsxRow struct {
	R      int        `xml:"r,attr"`
	Hidden bool       `xml:"hidden,attr"`
	Cells  []xlsxCell `xml:"c"`
}

type xlsxCell struct {
	R string       `xml:"r,attr"`
	T string       `xml:"t,attr"`
	F *xlsxFormula `xml:"f"`
	V *xlsxText    `xml:"v"`
	// Is is the inline-string composite; only its direct text node is
	// consulted.
	Is *xlsxInlineStr `xml:"is"`
}

type xlsxFormula struct {
	Content string  `xml:",chardata"`
	SI      *string `xml:"si,attr"`
}

type xlsxInlineStr struct {
	T *xlsxText `xml:"t"`
}

type xlsxDataValidation struct {
	Sqref string `xml:"sqref,attr"`
}

type xlsxComments struct {
	XMLName  xml.Name      `xml:"comments"`
	Comments []xlsxComment `xml:"commentList>comment"`
}

type xlsxComment struct {
	Ref string `xml:"ref,attr"`
}
