package pride

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/openproteomics/pride/pkg/archive"
	"github.com/openproteomics/pride/pkg/cache"
	"github.com/openproteomics/pride/pkg/errors"
	"github.com/openproteomics/pride/pkg/integrations"
)

const (
	// DefaultBaseURL is the production PRIDE Archive web service.
	DefaultBaseURL = "https://www.ebi.ac.uk/pride/ws/archive"

	// DevBaseURL is the development variant of the web service.
	DevBaseURL = "https://wwwdev.ebi.ac.uk/pride/ws/archive"
)

// Client provides access to the PRIDE Archive web service.
// It handles HTTP requests with caching and automatic retries for transient
// failures; every operation is a read-only GET and safe to repeat.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PRIDE Archive client.
//
// Parameters:
//   - baseURL: service base URL; empty selects [DefaultBaseURL]
//   - backend: cache backend for response caching (use cache.NewNullCache()
//     for no caching)
//   - cacheTTL: how long responses stay cached (typical: 1-24 hours)
//
// The returned Client is safe for concurrent use.
func NewClient(baseURL string, backend cache.Cache, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{
		"User-Agent": "pride-go/1.0 (https://github.com/openproteomics/pride)",
	}
	return &Client{
		Client:  integrations.NewClient(backend, "pride:", cacheTTL, headers),
		baseURL: baseURL,
	}
}

// BaseURL returns the service base URL this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Project retrieves one dataset record by accession.
//
// Returns NOT_FOUND if the accession doesn't exist, REMOTE_ERROR for
// transport failures, and MAPPING_FAILED if the response cannot produce a
// valid record. If refresh is true the cache is bypassed.
func (c *Client) Project(ctx context.Context, accession string, refresh bool) (archive.Project, error) {
	if err := errors.ValidateAccession(accession); err != nil {
		return archive.Project{}, err
	}

	endpoint := fmt.Sprintf("%s/project/%s", c.baseURL, accession)

	var raw json.RawMessage
	err := c.Cached(ctx, "project:"+accession, refresh, &raw, func() error {
		body, err := c.GetRaw(ctx, endpoint)
		if err != nil {
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		return archive.Project{}, remoteErr(endpoint, err)
	}

	return archive.MapProject(raw)
}

// List retrieves the first count records of the archive listing.
//
// The response's first array field is mapped element by element; the call
// fails as a whole if any element cannot be mapped.
func (c *Client) List(ctx context.Context, count int, refresh bool) ([]archive.Project, error) {
	if count == 0 {
		count = archive.DefaultPageSize
	}
	if count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "list count must be positive: %d", count)
	}

	endpoint := fmt.Sprintf("%s/project/list?show=%d", c.baseURL, count)
	return c.fetchProjects(ctx, endpoint, fmt.Sprintf("list:%d", count), refresh)
}

// Search retrieves one page of records matching query, wrapped with the
// supplied query and page metadata. An empty query lists without a filter.
// Page numbers are zero-based; a zero pageSize defaults to
// [archive.DefaultPageSize].
func (c *Client) Search(ctx context.Context, query string, pageNumber, pageSize int, refresh bool) (archive.Collection, error) {
	if err := errors.ValidateQuery(query); err != nil {
		return archive.Collection{}, err
	}
	if pageSize == 0 {
		pageSize = archive.DefaultPageSize
	}
	if err := errors.ValidatePage(pageNumber, pageSize); err != nil {
		return archive.Collection{}, err
	}

	endpoint := fmt.Sprintf("%s/project/list?show=%d&page=%d&q=%s",
		c.baseURL, pageSize, pageNumber, integrations.URLEncode(query))
	key := fmt.Sprintf("search:%s:%d:%d", query, pageNumber, pageSize)

	records, err := c.fetchProjects(ctx, endpoint, key, refresh)
	if err != nil {
		return archive.Collection{}, err
	}
	return archive.NewCollection(query, records, pageNumber, pageSize)
}

// Count retrieves the total number of public datasets in the archive.
// A response body that is not a JSON integer is a REMOTE_ERROR, never a
// silent default.
func (c *Client) Count(ctx context.Context, refresh bool) (int64, error) {
	endpoint := fmt.Sprintf("%s/project/count", c.baseURL)

	var raw json.RawMessage
	err := c.Cached(ctx, "count", refresh, &raw, func() error {
		body, err := c.GetRaw(ctx, endpoint)
		if err != nil {
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		return 0, remoteErr(endpoint, err)
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, remoteErr(endpoint, fmt.Errorf("non-numeric count body %s", truncate(raw, 64)))
	}
	n, err := num.Int64()
	if err != nil {
		return 0, remoteErr(endpoint, fmt.Errorf("non-integer count %s", num))
	}
	return n, nil
}

// fetchProjects GETs endpoint and maps every element of the body's first
// array field into records, failing fast on the first bad element.
func (c *Client) fetchProjects(ctx context.Context, endpoint, key string, refresh bool) ([]archive.Project, error) {
	var raw json.RawMessage
	err := c.Cached(ctx, key, refresh, &raw, func() error {
		body, err := c.GetRaw(ctx, endpoint)
		if err != nil {
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		return nil, remoteErr(endpoint, err)
	}

	elements, ok := firstArrayField(raw)
	if !ok {
		return nil, remoteErr(endpoint, fmt.Errorf("no project array in body %s", truncate(raw, 64)))
	}

	records := make([]archive.Project, 0, len(elements))
	for _, el := range elements {
		p, err := archive.MapProject([]byte(el.Raw))
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}

// firstArrayField locates the project array in a response body.
// The archive wraps list responses in an object whose first field is the
// array ("list" in practice), but the accessor does not depend on the name;
// a bare top-level array is also accepted.
func firstArrayField(body []byte) ([]gjson.Result, bool) {
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root.Array(), true
	}
	if !root.IsObject() {
		return nil, false
	}

	var found []gjson.Result
	ok := false
	root.ForEach(func(_, value gjson.Result) bool {
		if value.IsArray() {
			found = value.Array()
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// remoteErr classifies a fetch failure, attaching the endpoint.
// Mapping and input validation errors pass through untouched.
func remoteErr(endpoint string, err error) error {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return err
	}
	if stderrors.Is(err, integrations.ErrNotFound) {
		return errors.Wrap(errors.ErrCodeNotFound, err, "GET %s", endpoint)
	}
	return errors.Wrap(errors.ErrCodeRemote, err, "GET %s", endpoint)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
