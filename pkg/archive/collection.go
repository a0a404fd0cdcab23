package archive

import (
	"fmt"
	"slices"

	"github.com/openproteomics/pride/pkg/errors"
)

// DefaultPageSize is the page size used when the caller does not specify one.
const DefaultPageSize = 10

// Collection is one page of search or list results together with the query
// metadata that produced it. Like [Project], it is an immutable value object.
//
// An empty query means an unfiltered listing. The record order is the web
// service's response order; the collection never reorders or filters.
type Collection struct {
	query      string
	records    []Project
	pageNumber int
	pageSize   int
}

// NewCollection bundles a page of records with its query metadata.
// A zero pageSize defaults to [DefaultPageSize]. pageNumber must be >= 0 and
// pageSize must be positive; record counts are not checked against pageSize
// because the remote side controls page fill.
func NewCollection(query string, records []Project, pageNumber, pageSize int) (Collection, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if err := errors.ValidatePage(pageNumber, pageSize); err != nil {
		return Collection{}, err
	}
	return Collection{
		query:      query,
		records:    slices.Clone(records),
		pageNumber: pageNumber,
		pageSize:   pageSize,
	}, nil
}

// Query returns the search query; empty means an unfiltered listing.
func (c Collection) Query() string { return c.query }

// Records returns the page's records in response order.
func (c Collection) Records() []Project { return slices.Clone(c.records) }

// Len returns the number of records on this page.
func (c Collection) Len() int { return len(c.records) }

// PageNumber returns the zero-based page number.
func (c Collection) PageNumber() int { return c.pageNumber }

// PageSize returns the requested page size.
func (c Collection) PageSize() int { return c.pageSize }

// String returns a human-readable summary for diagnostic display.
func (c Collection) String() string {
	query := c.query
	if query == "" {
		query = "<all>"
	}
	return fmt.Sprintf("query %s: %d records (page %d, size %d)",
		query, len(c.records), c.pageNumber, c.pageSize)
}
