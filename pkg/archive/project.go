package archive

import (
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/openproteomics/pride/pkg/errors"
)

// NotAvailable is the placeholder substituted when upstream data is missing.
const NotAvailable = "Not available"

// ProjectFields holds the raw field values of a project record.
// It is the input to [NewProject]; once a [Project] has been constructed the
// fields can no longer be changed.
type ProjectFields struct {
	Accession       string    `json:"accession"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"publicationDate"`
	NumAssays       int       `json:"numAssays"`
	Species         []string  `json:"species"`
	Tissues         []string  `json:"tissues"`
	PtmNames        []string  `json:"ptmNames"`
	InstrumentNames []string  `json:"instrumentNames"`
	Tags            []string  `json:"tags"`
	SubmissionType  string    `json:"submissionType"`
}

// Validate checks every record invariant: no empty or missing string values,
// a real publication date, and a non-negative assay count. Multi-valued
// fields must carry at least one element and no empty elements.
func (f ProjectFields) Validate() error {
	notBlank := []validation.Rule{
		validation.Required,
		validation.Each(validation.Required),
	}

	err := validation.ValidateStruct(&f,
		validation.Field(&f.Accession, validation.Required),
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.PublicationDate, validation.Required),
		validation.Field(&f.NumAssays, validation.Min(0)),
		validation.Field(&f.Species, notBlank...),
		validation.Field(&f.Tissues, notBlank...),
		validation.Field(&f.PtmNames, notBlank...),
		validation.Field(&f.InstrumentNames, notBlank...),
		validation.Field(&f.Tags, notBlank...),
		validation.Field(&f.SubmissionType, validation.Required),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "invalid project record")
	}
	return nil
}

// clone deep-copies the fields so slice updates never leak between records.
func (f ProjectFields) clone() ProjectFields {
	f.Species = slices.Clone(f.Species)
	f.Tissues = slices.Clone(f.Tissues)
	f.PtmNames = slices.Clone(f.PtmNames)
	f.InstrumentNames = slices.Clone(f.InstrumentNames)
	f.Tags = slices.Clone(f.Tags)
	return f
}

// Project is one dataset record from the archive.
//
// Projects are immutable value objects: construct one with [NewProject] or
// [MapProject], read fields through accessors, and derive modified copies with the
// With* methods. Every construction path runs the full validator; there is no
// way to hold a Project that violates an invariant.
type Project struct {
	fields ProjectFields
}

// NewProject validates fields and returns the resulting record.
// The fields are deep-copied, so the caller may reuse or modify the input
// slices afterwards. A violation returns a VALIDATION_FAILED error naming the
// offending field.
func NewProject(fields ProjectFields) (Project, error) {
	f := fields.clone()
	if err := f.Validate(); err != nil {
		return Project{}, err
	}
	return Project{fields: f}, nil
}

// Accession returns the unique dataset identifier (e.g., "PXD000001").
func (p Project) Accession() string { return p.fields.Accession }

// Title returns the project title.
func (p Project) Title() string { return p.fields.Title }

// Description returns the project description, or "Not available" when the
// archive supplied none.
func (p Project) Description() string { return p.fields.Description }

// PublicationDate returns the date the dataset was made public.
func (p Project) PublicationDate() time.Time { return p.fields.PublicationDate }

// NumAssays returns the number of assays in the dataset.
func (p Project) NumAssays() int { return p.fields.NumAssays }

// Species returns the species annotations in archive order.
func (p Project) Species() []string { return slices.Clone(p.fields.Species) }

// Tissues returns the tissue annotations in archive order.
func (p Project) Tissues() []string { return slices.Clone(p.fields.Tissues) }

// PtmNames returns the post-translational modification names in archive order.
func (p Project) PtmNames() []string { return slices.Clone(p.fields.PtmNames) }

// InstrumentNames returns the instrument names in archive order.
func (p Project) InstrumentNames() []string { return slices.Clone(p.fields.InstrumentNames) }

// Tags returns the project tags in archive order.
func (p Project) Tags() []string { return slices.Clone(p.fields.Tags) }

// SubmissionType returns the submission classification (e.g., "COMPLETE",
// "PARTIAL", "PRIDE"). The set is not closed; any non-empty value is valid.
func (p Project) SubmissionType() string { return p.fields.SubmissionType }

// Fields returns a deep copy of the record's fields, suitable as a starting
// point for constructing a modified record.
func (p Project) Fields() ProjectFields { return p.fields.clone() }

// with applies mutate to a copy of the fields and re-validates.
func (p Project) with(mutate func(*ProjectFields)) (Project, error) {
	f := p.fields.clone()
	mutate(&f)
	return NewProject(f)
}

// WithTitle returns a copy of the record with a new title.
func (p Project) WithTitle(title string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.Title = title })
}

// WithDescription returns a copy of the record with a new description.
func (p Project) WithDescription(description string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.Description = description })
}

// WithPublicationDate returns a copy of the record with a new publication date.
func (p Project) WithPublicationDate(date time.Time) (Project, error) {
	return p.with(func(f *ProjectFields) { f.PublicationDate = date })
}

// WithNumAssays returns a copy of the record with a new assay count.
func (p Project) WithNumAssays(n int) (Project, error) {
	return p.with(func(f *ProjectFields) { f.NumAssays = n })
}

// WithSpecies returns a copy of the record with new species annotations.
func (p Project) WithSpecies(species []string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.Species = slices.Clone(species) })
}

// WithTissues returns a copy of the record with new tissue annotations.
func (p Project) WithTissues(tissues []string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.Tissues = slices.Clone(tissues) })
}

// WithPtmNames returns a copy of the record with new modification names.
func (p Project) WithPtmNames(ptms []string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.PtmNames = slices.Clone(ptms) })
}

// WithInstrumentNames returns a copy of the record with new instrument names.
func (p Project) WithInstrumentNames(instruments []string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.InstrumentNames = slices.Clone(instruments) })
}

// WithTags returns a copy of the record with new tags.
func (p Project) WithTags(tags []string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.Tags = slices.Clone(tags) })
}

// WithSubmissionType returns a copy of the record with a new submission type.
func (p Project) WithSubmissionType(submissionType string) (Project, error) {
	return p.with(func(f *ProjectFields) { f.SubmissionType = submissionType })
}
