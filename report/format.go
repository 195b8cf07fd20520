package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/crowd/crowd"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

// ParseFormat accepts "json", "table" or "csv" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTable, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Columns selects the optional census columns to print.
type Columns struct {
	H           bool
	Transmitter bool
	Topics      bool
}

// Rows lays records out as a header plus string rows.
func Rows(recs []crowd.Record, cols Columns) ([]string, [][]string) {
	headers := []string{"NODE", "S", "M", "K", "D", "PI"}
	if cols.H {
		headers = append(headers, "H")
	}
	if cols.Transmitter {
		headers = append(headers, "S_T", "PI_T")
	}
	if cols.Topics {
		headers = append(headers, "TOPICS")
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		row := []string{r.Node, itoa(r.S), itoa(r.M), itoa(r.K), itoa(r.D), itoa(r.Pi)}
		if cols.H {
			row = append(row, itoa(r.H))
		}
		if cols.Transmitter {
			row = append(row, itoa(r.ST), itoa(r.PiT))
		}
		if cols.Topics {
			row = append(row, strings.Join(r.Topics, ";"))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func itoa(n int) string { return strconv.Itoa(n) }

// WriteRecords writes recs to w in format f.
func WriteRecords(w io.Writer, f Format, recs []crowd.Record, cols Columns) error {
	if f == FormatJSON {
		return WriteJSON(w, recs)
	}
	headers, rows := Rows(recs, cols)
	if f == FormatCSV {
		return WriteCSV(w, headers, rows)
	}
	return WriteTable(w, headers, rows)
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteCSV writes headers then rows as RFC 4180 CSV.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("report: write csv: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("report: write csv: %w", err)
	}
	return nil
}

// WriteTable writes an aligned plain-text table with a dashed rule under
// the header.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			wd := 0
			if i < len(widths) {
				wd = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", wd, cell)
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := printRow(headers); err != nil {
		return err
	}
	seps := make([]string, len(headers))
	for i, wd := range widths {
		seps[i] = strings.Repeat("-", wd)
	}
	if err := printRow(seps); err != nil {
		return err
	}
	for _, row := range rows {
		if err := printRow(row); err != nil {
			return err
		}
	}
	return nil
}
