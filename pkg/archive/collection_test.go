package archive

import (
	"strings"
	"testing"

	"github.com/openproteomics/pride/pkg/errors"
)

func testProjects(t *testing.T, accessions ...string) []Project {
	t.Helper()
	out := make([]Project, len(accessions))
	for i, acc := range accessions {
		fields := validFields()
		fields.Accession = acc
		p, err := NewProject(fields)
		if err != nil {
			t.Fatalf("NewProject(%s) error: %v", acc, err)
		}
		out[i] = p
	}
	return out
}

func TestNewCollection(t *testing.T) {
	records := testProjects(t, "PXD000001", "PXD000002")
	c, err := NewCollection("plasma", records, 2, 25)
	if err != nil {
		t.Fatalf("NewCollection() error: %v", err)
	}

	if c.Query() != "plasma" {
		t.Errorf("Query() = %q", c.Query())
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d", c.Len())
	}
	if c.PageNumber() != 2 {
		t.Errorf("PageNumber() = %d", c.PageNumber())
	}
	if c.PageSize() != 25 {
		t.Errorf("PageSize() = %d", c.PageSize())
	}

	// Record order is preserved
	got := c.Records()
	if got[0].Accession() != "PXD000001" || got[1].Accession() != "PXD000002" {
		t.Errorf("Records() order = %s, %s", got[0].Accession(), got[1].Accession())
	}
}

func TestNewCollectionDefaults(t *testing.T) {
	c, err := NewCollection("", nil, 0, 0)
	if err != nil {
		t.Fatalf("NewCollection() error: %v", err)
	}
	if c.PageSize() != DefaultPageSize {
		t.Errorf("PageSize() = %d, want %d", c.PageSize(), DefaultPageSize)
	}
	if c.PageNumber() != 0 {
		t.Errorf("PageNumber() = %d, want 0", c.PageNumber())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestNewCollectionRangeChecks(t *testing.T) {
	if _, err := NewCollection("", nil, -1, 10); !errors.Is(err, errors.ErrCodeInvalidPage) {
		t.Errorf("negative page: code = %v", errors.GetCode(err))
	}
	if _, err := NewCollection("", nil, 0, -10); !errors.Is(err, errors.ErrCodeInvalidPage) {
		t.Errorf("negative size: code = %v", errors.GetCode(err))
	}
}

func TestCollectionString(t *testing.T) {
	records := testProjects(t, "PXD000001")
	c, err := NewCollection("plasma", records, 1, 10)
	if err != nil {
		t.Fatalf("NewCollection() error: %v", err)
	}

	s := c.String()
	for _, want := range []string{"plasma", "1 records", "page 1", "size 10"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}

	empty, _ := NewCollection("", nil, 0, 10)
	if !strings.Contains(empty.String(), "<all>") {
		t.Errorf("String() = %q, want unfiltered marker", empty.String())
	}
}

func TestCollectionImmutability(t *testing.T) {
	records := testProjects(t, "PXD000001", "PXD000002")
	c, err := NewCollection("", records, 0, 10)
	if err != nil {
		t.Fatalf("NewCollection() error: %v", err)
	}

	records[0] = records[1]
	if c.Records()[0].Accession() != "PXD000001" {
		t.Error("collection shares backing array with constructor input")
	}
}
