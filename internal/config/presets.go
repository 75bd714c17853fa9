package config

import (
	"sort"

	"github.com/san-kum/tumorkit/internal/curves"
)

var xbars = []float64{0.15, 0.3, 0.5, 0.7, 0.85}

var Presets = map[string]map[string]*Config{
	"sweep": {
		"h_a": {Curves: CurvesConfig{Points: DefaultPoints, Dt: DefaultCurvesDt, Sweep: &curves.Sweep{
			Function: "h", A: []float64{1, 2, 3, 4, 5}, B: []float64{30}, XBar: []float64{0.5}, Gamma: 1,
		}}},
		"h_b": {Curves: CurvesConfig{Points: DefaultPoints, Dt: DefaultCurvesDt, Sweep: &curves.Sweep{
			Function: "h", A: []float64{2}, B: []float64{1, 5, 15, 30, 50}, XBar: []float64{0.5}, Gamma: 1,
		}}},
		"h_xbar": {Curves: CurvesConfig{Points: DefaultPoints, Dt: DefaultCurvesDt, Sweep: &curves.Sweep{
			Function: "h", A: []float64{2}, B: []float64{30}, XBar: xbars, Gamma: 1,
		}}},
		"l_xbar": {Curves: CurvesConfig{Points: DefaultPoints, Dt: DefaultCurvesDt, Sweep: &curves.Sweep{
			Function: "l", A: []float64{2}, XBar: xbars,
		}}},
		"l_a": {Curves: CurvesConfig{Points: DefaultPoints, Dt: DefaultCurvesDt, Sweep: &curves.Sweep{
			Function: "l", A: []float64{1, 2, 3, 4, 5}, XBar: []float64{0.2},
		}}},
	},
	"segments": {
		"rattumor": {Vessels: VesselsConfig{UseCase: "rattumor", Segments: "data/rattum98_0.txt", ColsToDrop: 38, Title: "Rat Tumor"}},
		"ratbrain": {Vessels: VesselsConfig{UseCase: "ratbrain", Segments: "data/brain99.txt", ColsToDrop: 33, Title: "Rat Brain"}},
	},
}

func GetPreset(group, name string) *Config {
	if presets, ok := Presets[group]; ok {
		if cfg, ok := presets[name]; ok {
			return cfg
		}
	}
	return nil
}

// ListPresets returns the preset names of a group in sorted order.
func ListPresets(group string) []string {
	presets, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SweepFor returns a copy of the named sweep preset with the step and
// grid size from c filled in.
func (c *Config) SweepFor(name string) (curves.Sweep, bool) {
	p := GetPreset("sweep", name)
	if p == nil || p.Curves.Sweep == nil {
		return curves.Sweep{}, false
	}
	s := *p.Curves.Sweep
	s.Dt = c.Curves.Dt
	s.Points = c.Curves.Points
	return s, true
}
