// Package export serializes tabular record projections to CSV and JSON.
//
// The input is the header/rows shape produced by archive's tabular
// projection ([archive.RowHeader] plus Row/Rows); column order is preserved
// exactly in both formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/openproteomics/pride/pkg/errors"
)

// WriteCSV writes the header and one line per row to w.
func WriteCSV(header []string, rows [][]string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return errors.New(errors.ErrCodeInternal, "row %d has %d cells, header has %d", i, len(row), len(header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the rows as a JSON array of objects to w, keyed by the
// header columns. Key order follows the header, and the output is indented
// for readability.
func WriteJSON(header []string, rows [][]string, w io.Writer) error {
	keys := make([][]byte, len(header))
	for i, name := range header {
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range rows {
		if len(row) != len(header) {
			return errors.New(errors.ErrCodeInternal, "row %d has %d cells, header has %d", i, len(row), len(header))
		}
		b.WriteString("  {\n")
		for j, cell := range row {
			v, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "    %s: %s", keys[j], v)
			if j < len(row)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("  }")
		if i < len(rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Export writes rows to a file at path, choosing the format from the
// extension: ".csv" or ".json".
func Export(header []string, rows [][]string, path string) error {
	var write func([]string, [][]string, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".json":
		write = WriteJSON
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unsupported export format %q (use .csv or .json)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(header, rows, f)
}
