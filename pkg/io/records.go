// Package io provides JSON import of award records and export of
// generation receipts for host applications.
//
// The record format is a single JSON object with "person" and "achievement"
// members:
//
//	{
//	  "person": {
//	    "name": "Ada Lovelace",
//	    "id": "STU-100",
//	    "completion_date": "2024-01-10T00:00:00Z",
//	    "email": "ada@example.com"
//	  },
//	  "achievement": {
//	    "name": "Intro to Computing",
//	    "duration": "10 hours",
//	    "instructor": "A. Turing",
//	    "institution": "Example University"
//	  }
//	}
//
// Structural validation is not performed here; the pipeline's validate
// stage is authoritative.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mhartmer/certforge/pkg/model"
	"github.com/mhartmer/certforge/pkg/pipeline"
)

type recordFile struct {
	Person      model.PersonRecord      `json:"person"`
	Achievement model.AchievementRecord `json:"achievement"`
}

// ReadRecords decodes an award record pair from r.
func ReadRecords(r io.Reader) (model.PersonRecord, model.AchievementRecord, error) {
	var data recordFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return model.PersonRecord{}, model.AchievementRecord{}, fmt.Errorf("decode: %w", err)
	}
	return data.Person, data.Achievement, nil
}

// ImportRecords reads a record pair from a JSON file at path.
func ImportRecords(path string) (model.PersonRecord, model.AchievementRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PersonRecord{}, model.AchievementRecord{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRecords(f)
}

// WriteResult encodes a generation receipt as indented JSON.
func WriteResult(res *pipeline.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes a generation receipt to a JSON file at path. The
// receipt is a convenience artifact for hosts, separate from the image bytes
// the checksum covers.
func ExportResult(res *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}
