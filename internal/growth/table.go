package growth

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const DefaultIndex = "days"

// Table is a column-oriented view of a growth CSV: one index column and
// paired mean_i/std_i columns per measured group.
type Table struct {
	Index   string
	Days    []float64
	Columns []string
	Values  map[string][]float64
}

func NewTable(index string) *Table {
	return &Table{Index: index, Values: make(map[string][]float64)}
}

func (t *Table) Rows() int {
	return len(t.Days)
}

// AddColumn appends a column; existing columns of the same name are replaced.
func (t *Table) AddColumn(name string, vals []float64) {
	if _, ok := t.Values[name]; !ok {
		t.Columns = append(t.Columns, name)
	}
	t.Values[name] = vals
}

func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.Values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return vals, nil
}

// Groups returns the number of mean/std pairs, verifying that every
// mean_i has a matching std_i for i = 1..N.
func (t *Table) Groups() (int, error) {
	n := 0
	for _, c := range t.Columns {
		if strings.HasPrefix(c, "mean_") {
			n++
		}
	}
	for i := 1; i <= n; i++ {
		if _, ok := t.Values[MeanColumn(i)]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, MeanColumn(i))
		}
		if _, ok := t.Values[StdColumn(i)]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, StdColumn(i))
		}
	}
	return n, nil
}

func MeanColumn(i int) string { return fmt.Sprintf("mean_%d", i) }
func StdColumn(i int) string  { return fmt.Sprintf("std_%d", i) }

func ReadTable(path, index string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ParseTable(f, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable reads a CSV whose header names the index column. Empty cells
// parse as NaN.
func ParseTable(r io.Reader, index string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := records[0]
	idx := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] == index {
			idx = i
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingIndex, index)
	}

	t := NewTable(index)
	cols := make([][]float64, len(header))

	for line, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", line+2, len(header), len(rec))
		}
		for j, field := range rec {
			v, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", line+2, header[j], err)
			}
			cols[j] = append(cols[j], v)
		}
	}

	t.Days = cols[idx]
	if t.Days == nil {
		t.Days = []float64{}
	}
	for j, name := range header {
		if j == idx {
			continue
		}
		t.AddColumn(name, cols[j])
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func WriteTable(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeTable(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func EncodeTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{t.Index}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range t.Days {
		row := []string{formatCell(t.Days[i])}
		for _, c := range t.Columns {
			row = append(row, formatCell(t.Values[c][i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
