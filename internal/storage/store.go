package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const (
	metadataFile = "metadata.json"
	tableFile    = "table.csv"
)

// Store keeps saved analysis runs, one directory per run.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]any     `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Rows      int                `json:"rows"`
}

// Save writes metadata.json and table.csv for a new run and returns its ID.
func (s *Store) Save(kind string, params map[string]any, metrics map[string]float64, table Table) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", kind, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Timestamp: ts,
		Params:    params,
		Metrics:   metrics,
		Rows:      len(table.Rows),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), data, 0644); err != nil {
		return "", err
	}

	if err := writeTable(filepath.Join(runDir, tableFile), table); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns saved runs sorted by timestamp. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTable(runID string) (Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, tableFile))
	if err != nil {
		return Table{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	t := Table{Header: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Table{}, fmt.Errorf("run %s: row %d column %s: %w", runID, i+1, t.Header[j], err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func writeTable(path string, t Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
