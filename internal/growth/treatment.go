package growth

// Treatment lists the administration days of each drug for one group.
type Treatment struct {
	DOX []float64
	TRA []float64
	SAL []float64
}

// DefaultSchedule is the treatment protocol of the six experimental groups.
var DefaultSchedule = map[int]Treatment{
	1: {SAL: []float64{35, 38, 39}},
	2: {DOX: []float64{39}, SAL: []float64{35, 38}},
	3: {TRA: []float64{35, 38}, SAL: []float64{39}},
	4: {DOX: []float64{35}, TRA: []float64{36, 39}},
	5: {DOX: []float64{39}, TRA: []float64{35, 38}},
	6: {DOX: []float64{35, 38}, TRA: []float64{35, 38}},
}
