package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/tumorkit/internal/distfit"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved distribution search.
type RunMetadata struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Column     string    `json:"column"`
	Timestamp  time.Time `json:"timestamp"`
	SampleSize int       `json:"sample_size"`
	Candidates int       `json:"candidates"`
	Failed     int       `json:"failed"`
	Best       string    `json:"best"`
	BestP      float64   `json:"best_p"`
	BestD      float64   `json:"best_d"`
	Params     []float64 `json:"params"`
}

// RankRow is one line of a saved ranking.
type RankRow struct {
	Dist   string
	D, P   float64
	Params []float64
}

func (s *Store) Save(source, column string, sampleSize int, res *distfit.Result) (string, error) {
	if res == nil || res.Best == nil {
		return "", distfit.ErrNoFit
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", column, now.Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 2; exists(runDir); i++ {
		runID = fmt.Sprintf("%s_%d_%d", column, now.Unix(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Source:     source,
		Column:     column,
		Timestamp:  now,
		SampleSize: sampleSize,
		Candidates: len(res.Outcomes),
		Failed:     len(res.Failed()),
		Best:       res.Best.Name,
		BestP:      res.Best.P,
		BestD:      res.Best.D,
		Params:     res.Best.Fitted.Params(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "ranking.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"dist", "D", "p", "params"}); err != nil {
		return "", err
	}
	for _, o := range res.Ranking() {
		params := o.Fitted.Params()
		fields := make([]string, len(params))
		for i, v := range params {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		row := []string{
			o.Name,
			strconv.FormatFloat(o.D, 'g', -1, 64),
			strconv.FormatFloat(o.P, 'g', -1, 64),
			strings.Join(fields, " "),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// List returns saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadRanking(runID string) ([]RankRow, error) {
	csvPath := filepath.Join(s.baseDir, runID, "ranking.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []RankRow{}, nil
	}

	rows := make([]RankRow, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		d, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", csvPath, i+1, err)
		}
		p, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", csvPath, i+1, err)
		}
		row := RankRow{Dist: rec[0], D: d, P: p}
		for _, f := range strings.Fields(rec[3]) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", csvPath, i+1, err)
			}
			row.Params = append(row.Params, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
