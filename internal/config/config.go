package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tumorkit/internal/curves"
)

const (
	DefaultResults  = "results"
	DefaultDataDir  = "data"
	DefaultWorkers  = 1
	DefaultMaxIter  = 4000
	DefaultLastDay  = 34.0
	DefaultCurvesDt = 0.01
	DefaultPoints   = 1000
)

type Config struct {
	Results      string             `yaml:"results"`
	Growth       GrowthConfig       `yaml:"growth"`
	Vessels      VesselsConfig      `yaml:"vessels"`
	Fit          FitConfig          `yaml:"fit"`
	Curves       CurvesConfig       `yaml:"curves"`
	Metadata     MetadataConfig     `yaml:"metadata"`
	Permeability PermeabilityConfig `yaml:"permeability"`
}

type GrowthConfig struct {
	Input      string  `yaml:"input"`
	Output     string  `yaml:"output"`
	Index      string  `yaml:"index"`
	GroupSizes []int   `yaml:"group_sizes"`
	LastDay    float64 `yaml:"last_day"`
	YMax       float64 `yaml:"y_max"`
}

type VesselsConfig struct {
	Diameters  string  `yaml:"diameters"`
	UseCase    string  `yaml:"use_case"`
	Segments   string  `yaml:"segments"`
	ColsToDrop int     `yaml:"cols_to_drop"`
	Title      string  `yaml:"title"`
	Lengths    string  `yaml:"lengths"`
	BoxX       float64 `yaml:"box_x"`
	BoxY       float64 `yaml:"box_y"`
	BoxZ       float64 `yaml:"box_z"`
}

type FitConfig struct {
	Candidates []string `yaml:"candidates,omitempty"`
	Workers    int      `yaml:"workers"`
	MaxIter    int      `yaml:"max_iter"`
	Top        int      `yaml:"top"`
}

type CurvesConfig struct {
	Points int           `yaml:"points"`
	Dt     float64       `yaml:"dt"`
	Sweep  *curves.Sweep `yaml:"sweep,omitempty"`
}

type MetadataConfig struct {
	Folder   string `yaml:"folder"`
	Filter   string `yaml:"filter"`
	Output   string `yaml:"output"`
	Simplify bool   `yaml:"simplify"`
}

type PermeabilityConfig struct {
	Input         string  `yaml:"input"`
	SampleMinutes float64 `yaml:"sample_minutes"`
	OffsetDays    float64 `yaml:"offset_days"`
}

func DefaultConfig() *Config {
	return &Config{
		Results: DefaultResults,
		Growth: GrowthConfig{
			Input:      "data/data.csv",
			Output:     "data/combined.csv",
			Index:      "days",
			GroupSizes: []int{7, 8, 7, 7, 6, 7},
			LastDay:    DefaultLastDay,
			YMax:       3000,
		},
		Vessels: VesselsConfig{
			Diameters: "data/vessel-diameter.txt",
			UseCase:   "rattumor",
			Lengths:   "data/vessel-lengths.txt",
			BoxX:      550,
			BoxY:      550,
			BoxZ:      230,
		},
		Fit: FitConfig{
			Workers: DefaultWorkers,
			MaxIter: DefaultMaxIter,
			Top:     10,
		},
		Curves: CurvesConfig{
			Points: DefaultPoints,
			Dt:     DefaultCurvesDt,
		},
		Metadata: MetadataConfig{
			Folder: "output",
			Filter: "bdm::SimParam",
			Output: "metadata",
		},
		Permeability: PermeabilityConfig{
			Input:         "data/permeability_values.txt",
			SampleMinutes: 5,
			OffsetDays:    -100,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
