package archive

import (
	"strconv"
	"strings"
)

// ListSeparator joins multi-valued fields into one table cell.
const ListSeparator = " || "

// dateFormat renders publication dates in table cells.
const dateFormat = "2006-01-02"

// rowHeader is the fixed projection column order.
var rowHeader = []string{
	"accession",
	"title",
	"description",
	"publicationDate",
	"numAssays",
	"species",
	"tissues",
	"ptmNames",
	"instrumentNames",
	"tags",
	"submissionType",
}

// RowHeader returns the tabular projection's column names in order.
func RowHeader() []string {
	return append([]string(nil), rowHeader...)
}

// Row flattens the record into one table row following the [RowHeader] column
// order. Multi-valued fields are joined with [ListSeparator], preserving the
// archive's element order.
func (p Project) Row() []string {
	return []string{
		p.fields.Accession,
		p.fields.Title,
		p.fields.Description,
		p.fields.PublicationDate.Format(dateFormat),
		strconv.Itoa(p.fields.NumAssays),
		strings.Join(p.fields.Species, ListSeparator),
		strings.Join(p.fields.Tissues, ListSeparator),
		strings.Join(p.fields.PtmNames, ListSeparator),
		strings.Join(p.fields.InstrumentNames, ListSeparator),
		strings.Join(p.fields.Tags, ListSeparator),
		p.fields.SubmissionType,
	}
}

// Rows flattens every record into a table row, one per record, in the
// collection's record order. This is a pure projection: no filtering, no
// sorting, no column reordering.
func (c Collection) Rows() [][]string {
	rows := make([][]string, len(c.records))
	for i, p := range c.records {
		rows[i] = p.Row()
	}
	return rows
}
