package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// accessionRegex matches archive-style dataset accessions (e.g., "PXD000001",
// "PRD000123"). The rule is intentionally loose: an alphanumeric head followed
// by alphanumerics, hyphens, or underscores.
var accessionRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAccession validates a dataset accession before it is interpolated
// into a request path. It rejects values that could be used for path traversal
// or injection rather than enforcing any particular archive's numbering scheme.
func ValidateAccession(accession string) error {
	if accession == "" {
		return New(ErrCodeInvalidAccession, "accession cannot be empty")
	}

	if len(accession) > 64 {
		return New(ErrCodeInvalidAccession, "accession too long (max 64 characters)")
	}

	for _, r := range accession {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAccession, "accession contains invalid control characters")
		}
	}

	if strings.ContainsAny(accession, "/\\") || strings.Contains(accession, "..") {
		return New(ErrCodeInvalidAccession, "accession cannot contain path separators")
	}

	if !accessionRegex.MatchString(accession) {
		return New(ErrCodeInvalidAccession, "invalid accession: %q", accession)
	}

	return nil
}

// ValidateQuery validates a free-text search query.
// Empty queries are allowed; an empty query means an unfiltered listing.
func ValidateQuery(query string) error {
	if len(query) > 256 {
		return New(ErrCodeInvalidQuery, "query too long (max 256 characters)")
	}

	for _, r := range query {
		if r != ' ' && unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "query contains invalid control characters")
		}
	}

	return nil
}

// ValidatePage validates pagination parameters.
// Page numbers are zero-based; page size must be positive.
func ValidatePage(page, size int) error {
	if page < 0 {
		return New(ErrCodeInvalidPage, "page number cannot be negative: %d", page)
	}
	if size <= 0 {
		return New(ErrCodeInvalidPage, "page size must be positive: %d", size)
	}
	return nil
}
