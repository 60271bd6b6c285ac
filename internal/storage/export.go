package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run  RunMetadata `json:"run"`
	Rows []Row       `json:"ticks"`
}

func ExportJSON(w io.Writer, meta RunMetadata, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: meta, Rows: rows})
}
