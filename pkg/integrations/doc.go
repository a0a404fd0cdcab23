// Package integrations provides HTTP clients for remote web service APIs.
//
// The base [Client] handles the concerns every API client needs: response
// caching, retry with backoff for transient failures, common request headers,
// and JSON decoding. Service-specific clients live in subpackages (e.g.,
// pride) and compose the base client with their endpoint layouts.
package integrations
