package archive

import (
	"testing"
	"time"

	"github.com/openproteomics/pride/pkg/errors"
)

func validFields() ProjectFields {
	return ProjectFields{
		Accession:       "PXD000001",
		Title:           "TMT spikes",
		Description:     "Expected reporter ion ratios",
		PublicationDate: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
		NumAssays:       3,
		Species:         []string{"Erwinia carotovora"},
		Tissues:         []string{NotAvailable},
		PtmNames:        []string{"TMT 6-plex"},
		InstrumentNames: []string{"LTQ Orbitrap Velos"},
		Tags:            []string{"Biological"},
		SubmissionType:  "COMPLETE",
	}
}

func TestNewProjectRoundTrip(t *testing.T) {
	fields := validFields()
	p, err := NewProject(fields)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}

	if p.Accession() != fields.Accession {
		t.Errorf("Accession() = %q, want %q", p.Accession(), fields.Accession)
	}
	if p.Title() != fields.Title {
		t.Errorf("Title() = %q, want %q", p.Title(), fields.Title)
	}
	if p.Description() != fields.Description {
		t.Errorf("Description() = %q, want %q", p.Description(), fields.Description)
	}
	if !p.PublicationDate().Equal(fields.PublicationDate) {
		t.Errorf("PublicationDate() = %v, want %v", p.PublicationDate(), fields.PublicationDate)
	}
	if p.NumAssays() != fields.NumAssays {
		t.Errorf("NumAssays() = %d, want %d", p.NumAssays(), fields.NumAssays)
	}
	if got := p.Species(); len(got) != 1 || got[0] != "Erwinia carotovora" {
		t.Errorf("Species() = %v", got)
	}
	if got := p.PtmNames(); len(got) != 1 || got[0] != "TMT 6-plex" {
		t.Errorf("PtmNames() = %v", got)
	}
	if p.SubmissionType() != "COMPLETE" {
		t.Errorf("SubmissionType() = %q", p.SubmissionType())
	}
}

func TestNewProjectValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectFields)
	}{
		{"empty accession", func(f *ProjectFields) { f.Accession = "" }},
		{"empty title", func(f *ProjectFields) { f.Title = "" }},
		{"empty description", func(f *ProjectFields) { f.Description = "" }},
		{"zero publication date", func(f *ProjectFields) { f.PublicationDate = time.Time{} }},
		{"negative assays", func(f *ProjectFields) { f.NumAssays = -1 }},
		{"nil species", func(f *ProjectFields) { f.Species = nil }},
		{"empty species", func(f *ProjectFields) { f.Species = []string{} }},
		{"blank species element", func(f *ProjectFields) { f.Species = []string{"human", ""} }},
		{"nil tissues", func(f *ProjectFields) { f.Tissues = nil }},
		{"nil ptm names", func(f *ProjectFields) { f.PtmNames = nil }},
		{"nil instruments", func(f *ProjectFields) { f.InstrumentNames = nil }},
		{"nil tags", func(f *ProjectFields) { f.Tags = nil }},
		{"empty submission type", func(f *ProjectFields) { f.SubmissionType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)
			_, err := NewProject(fields)
			if err == nil {
				t.Fatal("NewProject() = nil error, want validation failure")
			}
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
			}
		})
	}
}

func TestProjectImmutability(t *testing.T) {
	fields := validFields()
	p, err := NewProject(fields)
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}

	// Mutating the input after construction must not affect the record
	fields.Species[0] = "mutated"
	if p.Species()[0] != "Erwinia carotovora" {
		t.Error("record shares backing array with constructor input")
	}

	// Mutating an accessor result must not affect the record
	got := p.Species()
	got[0] = "mutated"
	if p.Species()[0] != "Erwinia carotovora" {
		t.Error("accessor returns the record's backing array")
	}
}

func TestProjectWith(t *testing.T) {
	p, err := NewProject(validFields())
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}

	updated, err := p.WithTitle("Renamed")
	if err != nil {
		t.Fatalf("WithTitle() error: %v", err)
	}
	if updated.Title() != "Renamed" {
		t.Errorf("updated Title() = %q", updated.Title())
	}
	if p.Title() != "TMT spikes" {
		t.Errorf("original mutated: Title() = %q", p.Title())
	}

	updated, err = p.WithSpecies([]string{"human", "mouse"})
	if err != nil {
		t.Fatalf("WithSpecies() error: %v", err)
	}
	if got := updated.Species(); len(got) != 2 || got[0] != "human" || got[1] != "mouse" {
		t.Errorf("updated Species() = %v", got)
	}
	if got := p.Species(); len(got) != 1 {
		t.Errorf("original mutated: Species() = %v", got)
	}
}

func TestProjectWithRevalidates(t *testing.T) {
	p, err := NewProject(validFields())
	if err != nil {
		t.Fatalf("NewProject() error: %v", err)
	}

	if _, err := p.WithTitle(""); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("WithTitle(\"\") code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
	}
	if _, err := p.WithNumAssays(-5); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("WithNumAssays(-5) code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
	}
	if _, err := p.WithSpecies(nil); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("WithSpecies(nil) code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
	}
	if _, err := p.WithTags([]string{""}); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("WithTags([\"\"]) code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
	}
}

func TestSubmissionTypeIsOpenSet(t *testing.T) {
	fields := validFields()
	fields.SubmissionType = "MASSIVE" // not one of COMPLETE/PARTIAL/PRIDE
	if _, err := NewProject(fields); err != nil {
		t.Errorf("unknown submission type rejected: %v", err)
	}
}
