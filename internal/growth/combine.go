package growth

import (
	"fmt"

	"github.com/san-kum/tumorkit/internal/pooled"
)

// DefaultGroupSizes are the animal counts of the six treatment groups.
var DefaultGroupSizes = []int{7, 8, 7, 7, 6, 7}

// DefaultLastDay is the last measurement day before treatment starts.
const DefaultLastDay = 34.0

type PooledRow struct {
	Day   float64
	Group pooled.Group
}

// Combine folds all groups of each row into a single pooled group. Rows
// are consumed in file order and processing stops at the first day
// greater than lastDay.
func Combine(t *Table, sizes []int, lastDay float64) ([]PooledRow, error) {
	n, err := t.Groups()
	if err != nil {
		return nil, err
	}
	if n != len(sizes) {
		return nil, fmt.Errorf("%w: table has %d, got %d sizes", ErrGroupSizes, n, len(sizes))
	}
	if t.Rows() == 0 {
		return nil, ErrEmptyTable
	}

	out := make([]PooledRow, 0, t.Rows())
	groups := make([]pooled.Group, n)

	for row, day := range t.Days {
		if day > lastDay {
			break
		}
		for i := 1; i <= n; i++ {
			groups[i-1] = pooled.Group{
				N:    sizes[i-1],
				Mean: t.Values[MeanColumn(i)][row],
				Std:  t.Values[StdColumn(i)][row],
			}
		}
		g, err := pooled.Fold(groups...)
		if err != nil {
			return nil, err
		}
		out = append(out, PooledRow{Day: day, Group: g})
	}
	return out, nil
}

// PooledTable converts pooled rows into a single-group table. The count
// column is dropped.
func PooledTable(index string, rows []PooledRow) *Table {
	t := NewTable(index)
	means := make([]float64, len(rows))
	stds := make([]float64, len(rows))
	t.Days = make([]float64, len(rows))

	for i, r := range rows {
		t.Days[i] = r.Day
		means[i] = r.Group.Mean
		stds[i] = r.Group.Std
	}
	t.AddColumn(MeanColumn(1), means)
	t.AddColumn(StdColumn(1), stds)
	return t
}
