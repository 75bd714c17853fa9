package simmeta

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
)

// Table has one row per run and one column per parameter.
type Table struct {
	Rows    []string
	Columns []string
	cells   map[string]map[string]string
}

func NewTable() *Table {
	return &Table{cells: make(map[string]map[string]string)}
}

// Add inserts a run. Columns stay sorted.
func (t *Table) Add(row string, ps Params) {
	if _, ok := t.cells[row]; !ok {
		t.Rows = append(t.Rows, row)
		t.cells[row] = make(map[string]string)
	}
	known := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = true
	}
	for _, p := range ps {
		t.cells[row][p.Key] = p.Value
		if !known[p.Key] {
			known[p.Key] = true
			t.Columns = append(t.Columns, p.Key)
		}
	}
	sort.Strings(t.Columns)
}

func (t *Table) Get(row, col string) (string, bool) {
	v, ok := t.cells[row][col]
	return v, ok
}

// Simplify drops every column that holds a single distinct value across
// the rows that set it.
func (t *Table) Simplify() {
	var keep []string
	for _, c := range t.Columns {
		distinct := make(map[string]bool)
		for _, r := range t.Rows {
			if v, ok := t.cells[r][c]; ok {
				distinct[v] = true
			}
		}
		if len(distinct) == 1 {
			for _, r := range t.Rows {
				delete(t.cells[r], c)
			}
			continue
		}
		keep = append(keep, c)
	}
	t.Columns = keep
}

// Collect parses every file and builds the table.
func Collect(files []string, filter string) (*Table, error) {
	t := NewTable()
	seen := make(map[string]string, len(files))
	for _, f := range files {
		key := RowKey(f)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateRow, key, prev, f)
		}
		seen[key] = f
		ps, err := Parse(f, filter)
		if err != nil {
			return nil, err
		}
		t.Add(key, ps)
	}
	return t, nil
}

func (t *Table) EncodeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"filename"}, t.Columns...)); err != nil {
		return err
	}
	for _, r := range t.Rows {
		rec := make([]string, 0, len(t.Columns)+1)
		rec = append(rec, r)
		for _, c := range t.Columns {
			rec = append(rec, t.cells[r][c])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.EncodeCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
