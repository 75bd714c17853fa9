package curves

// Grid is a cartesian product of named parameter values.
type Grid struct {
	names  []string
	ranges [][]float64
}

func NewGrid(names []string, ranges [][]float64) *Grid {
	return &Grid{names: names, ranges: ranges}
}

// Size is the number of points in the grid.
func (g *Grid) Size() int {
	if len(g.names) == 0 {
		return 0
	}
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Each calls fn for every point, varying the last name fastest.
func (g *Grid) Each(fn func(params map[string]float64)) {
	if len(g.names) == 0 {
		return
	}
	g.eachRecursive(0, make(map[string]float64), fn)
}

func (g *Grid) eachRecursive(depth int, current map[string]float64, fn func(map[string]float64)) {
	if depth == len(g.names) {
		point := make(map[string]float64, len(current))
		for k, v := range current {
			point[k] = v
		}
		fn(point)
		return
	}

	name := g.names[depth]
	for _, val := range g.ranges[depth] {
		current[name] = val
		g.eachRecursive(depth+1, current, fn)
	}
	delete(current, name)
}
