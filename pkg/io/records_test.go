package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mhartmer/certforge/pkg/pipeline"
)

const recordJSON = `{
  "person": {
    "name": "Ada Lovelace",
    "id": "STU-100",
    "completion_date": "2024-01-10T00:00:00Z",
    "email": "ada@example.com"
  },
  "achievement": {
    "name": "Intro to Computing",
    "duration": "10 hours",
    "instructor": "A. Turing",
    "institution": "Example University"
  }
}`

func TestReadRecords(t *testing.T) {
	p, a, err := ReadRecords(strings.NewReader(recordJSON))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if p.Name != "Ada Lovelace" || p.ID != "STU-100" {
		t.Errorf("unexpected person: %+v", p)
	}
	if !p.CompletionDate.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected completion date: %v", p.CompletionDate)
	}
	if a.Institution != "Example University" {
		t.Errorf("unexpected achievement: %+v", a)
	}
}

func TestReadRecordsMalformed(t *testing.T) {
	if _, _, err := ReadRecords(strings.NewReader("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestImportRecordsMissingFile(t *testing.T) {
	if _, _, err := ImportRecords(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExportResult(t *testing.T) {
	res := &pipeline.Result{
		CertificateID: "CERT-ABCDEF12-AABBCCDD",
		FilePath:      "/tmp/cert.png",
		FileSize:      1234,
		GeneratedAt:   time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Checksum:      strings.Repeat("ab", 32),
		Metadata:      map[string]any{"template": "standard"},
	}

	path := filepath.Join(t.TempDir(), "receipt.json")
	if err := ExportResult(res, path); err != nil {
		t.Fatalf("ExportResult: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{res.CertificateID, res.Checksum, `"file_size_bytes": 1234`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}
