// Package pride provides an HTTP client for the PRIDE Archive web service API.
//
// # Overview
//
// This package fetches proteomics dataset metadata from the PRIDE Archive
// (https://www.ebi.ac.uk/pride), the public repository for mass spectrometry
// proteomics data.
//
// # Usage
//
//	backend, err := cache.NewFileCache(dir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := pride.NewClient("", backend, 24*time.Hour) // "" = production base URL
//
//	project, err := client.Project(ctx, "PXD000001", false) // false = use cache
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(project.Accession(), project.Title())
//
// # Operations
//
//   - [Client.Project]: one dataset record by accession
//   - [Client.List]: the first N records of the archive listing
//   - [Client.Search]: one page of records matching a query, as a [archive.Collection]
//   - [Client.Count]: total number of public datasets
//
// # Caching
//
// Responses are cached to reduce load on the archive and speed up repeated
// requests. The cache TTL is set when creating the client. Pass refresh=true
// to any operation to bypass the cache.
//
// # Errors
//
// Failures surface as structured errors from pkg/errors: NOT_FOUND for
// unknown accessions, REMOTE_ERROR for transport/status/decode failures
// (carrying the endpoint), and MAPPING_FAILED when a response cannot produce
// a valid record. List and search are fail-fast: one unmappable element fails
// the whole call, since a partial page would misrepresent the result.
package pride
