// Package archive defines the domain records for the PRIDE Archive client:
// immutable project records, result collections, and their tabular projection.
//
// A [Project] is constructed once from validated fields and never mutated;
// every With* update returns a new, re-validated copy. [MapProject] converts
// raw web service JSON into records, applying the documented "Not available"
// defaults for absent fields. [Collection] bundles one page of search or list
// results with its query metadata.
package archive
