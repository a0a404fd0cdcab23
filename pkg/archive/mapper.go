package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/openproteomics/pride/pkg/errors"
)

// dateLayouts are the publication date formats the archive has been observed
// to emit, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// apiProject mirrors the web service's project representation.
// Multi-valued fields decode into any because the service emits them as an
// array, a lone scalar, or not at all.
type apiProject struct {
	Accession          string  `json:"accession"`
	Title              string  `json:"title"`
	ProjectDescription *string `json:"projectDescription"`
	PublicationDate    string  `json:"publicationDate"`
	NumAssays          any     `json:"numAssays"`
	Species            any     `json:"species"`
	Tissues            any     `json:"tissues"`
	PtmNames           any     `json:"ptmNames"`
	InstrumentNames    any     `json:"instrumentNames"`
	ProjectTags        any     `json:"projectTags"`
	SubmissionType     string  `json:"submissionType"`
}

// MapProject converts one raw web service project object into a validated
// [Project].
//
// Mapping rules:
//   - projectDescription → description; absent, null, or empty becomes
//     "Not available"
//   - publicationDate is parsed from the known archive layouts
//   - numAssays accepts any JSON number (the service has emitted both
//     integers and numeric strings)
//   - species, tissues, ptmNames, instrumentNames, projectTags normalize to
//     a non-empty []string: absent or empty becomes ["Not available"], a lone
//     string becomes a one-element slice
//
// The mapped record runs through the full validator; any failure is returned
// as a MAPPING_FAILED error carrying the offending input, since a response
// that cannot produce a valid record is an upstream defect, not caller error.
func MapProject(raw []byte) (Project, error) {
	var api apiProject
	if err := json.Unmarshal(raw, &api); err != nil {
		return Project{}, mappingErr(raw, err)
	}

	fields := ProjectFields{
		Accession:      api.Accession,
		Title:          api.Title,
		Description:    NotAvailable,
		SubmissionType: api.SubmissionType,
	}

	if api.ProjectDescription != nil && *api.ProjectDescription != "" {
		fields.Description = *api.ProjectDescription
	}

	if api.PublicationDate != "" {
		date, err := parseDate(api.PublicationDate)
		if err != nil {
			return Project{}, mappingErr(raw, err)
		}
		fields.PublicationDate = date
	}

	if api.NumAssays != nil {
		n, err := cast.ToIntE(api.NumAssays)
		if err != nil {
			return Project{}, mappingErr(raw, fmt.Errorf("numAssays: %w", err))
		}
		fields.NumAssays = n
	}

	lists := []struct {
		name string
		src  any
		dst  *[]string
	}{
		{"species", api.Species, &fields.Species},
		{"tissues", api.Tissues, &fields.Tissues},
		{"ptmNames", api.PtmNames, &fields.PtmNames},
		{"instrumentNames", api.InstrumentNames, &fields.InstrumentNames},
		{"projectTags", api.ProjectTags, &fields.Tags},
	}
	for _, l := range lists {
		values, err := stringList(l.name, l.src)
		if err != nil {
			return Project{}, mappingErr(raw, err)
		}
		*l.dst = values
	}

	project, err := NewProject(fields)
	if err != nil {
		return Project{}, mappingErr(raw, err)
	}
	return project, nil
}

// parseDate tries each known archive date layout in order.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable publication date %q", s)
}

// stringList normalizes a multi-valued field to a non-empty string slice.
// Absent (nil) or empty inputs become the sentinel slice; a lone string
// becomes a one-element slice. Elements of any other type are rejected
// rather than coerced.
func stringList(field string, v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return []string{NotAvailable}, nil
	case string:
		if t == "" {
			return []string{NotAvailable}, nil
		}
		return []string{t}, nil
	case []any:
		if len(t) == 0 {
			return []string{NotAvailable}, nil
		}
		out := make([]string, len(t))
		for i, el := range t {
			s, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected string, got %T", field, i, el)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected string or array, got %T", field, v)
	}
}

// mappingErr wraps a cause as MAPPING_FAILED, attaching the raw input
// (truncated) for diagnostics.
func mappingErr(raw []byte, cause error) error {
	return errors.Wrap(errors.ErrCodeMapping, cause, "cannot map project from %s", truncate(raw, 256))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
