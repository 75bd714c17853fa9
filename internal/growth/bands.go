package growth

// Band is the mean ± std envelope of one group.
type Band struct {
	Group int
	Mean  []float64
	Lower []float64
	Upper []float64
}

// Bands computes lower_i = mean_i - std_i and upper_i = mean_i + std_i for
// every group in the table.
func Bands(t *Table) ([]Band, error) {
	n, err := t.Groups()
	if err != nil {
		return nil, err
	}

	bands := make([]Band, 0, n)
	for i := 1; i <= n; i++ {
		mean := t.Values[MeanColumn(i)]
		std := t.Values[StdColumn(i)]

		b := Band{
			Group: i,
			Mean:  mean,
			Lower: make([]float64, len(mean)),
			Upper: make([]float64, len(mean)),
		}
		for j := range mean {
			b.Lower[j] = mean[j] - std[j]
			b.Upper[j] = mean[j] + std[j]
		}
		bands = append(bands, b)
	}
	return bands, nil
}
