package storage

import (
	"io"

	"github.com/goccy/go-json"
)

type ExportData struct {
	RunMetadata
	Table Table `json:"table"`
}

// Export writes the metadata and table of a run as indented JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Table: table})
}
