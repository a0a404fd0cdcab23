package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openproteomics/pride/pkg/errors"
)

var (
	testHeader = []string{"accession", "title", "species"}
	testRows   = [][]string{
		{"PXD000001", "TMT spikes", "human || mouse"},
		{"PXD000002", "Plasma study", "human"},
	}
)

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(testHeader, testRows, &b); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "accession,title,species" {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "PXD000001,TMT spikes,human || mouse" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestWriteCSVRowWidthMismatch(t *testing.T) {
	var b strings.Builder
	err := WriteCSV(testHeader, [][]string{{"only-one-cell"}}, &b)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInternal)
	}
}

func TestWriteJSON(t *testing.T) {
	var b strings.Builder
	if err := WriteJSON(testHeader, testRows, &b); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	out := b.String()
	for _, want := range []string{
		`"accession": "PXD000001"`,
		`"species": "human || mouse"`,
		`"title": "Plasma study"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Key order must follow the header, not alphabetical order
	if strings.Index(out, `"title"`) < strings.Index(out, `"accession"`) {
		t.Error("JSON keys are not in header order")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "projects.csv")
	if err := Export(testHeader, testRows, csvPath); err != nil {
		t.Fatalf("Export(csv) error: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read exported csv: %v", err)
	}
	if !strings.HasPrefix(string(data), "accession,title,species") {
		t.Errorf("csv content = %q", data)
	}

	jsonPath := filepath.Join(dir, "projects.json")
	if err := Export(testHeader, testRows, jsonPath); err != nil {
		t.Fatalf("Export(json) error: %v", err)
	}

	if err := Export(testHeader, testRows, filepath.Join(dir, "projects.xlsx")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unsupported format: code = %v", errors.GetCode(err))
	}
}
