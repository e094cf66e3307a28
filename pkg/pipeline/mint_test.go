package pipeline

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mhartmer/certforge/pkg/errors"
	"github.com/mhartmer/certforge/pkg/model"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,50}$`)

func mintRecords() (model.PersonRecord, model.AchievementRecord) {
	return model.PersonRecord{
			Name:           "Ada Lovelace",
			ID:             "STU-100",
			CompletionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Email:          "ada@example.com",
		}, model.AchievementRecord{
			Name:        "Intro to Computing",
			Duration:    "10 hours",
			Instructor:  "A. Turing",
			Institution: "Example University",
		}
}

// Minting repeatedly for the same input must yield distinct, well-formed IDs.
func TestMintUnique(t *testing.T) {
	p, a := mintRecords()
	var m IDMinter

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := m.Mint(p, a)
		if !idPattern.MatchString(id) {
			t.Fatalf("ID %q does not match the certificate ID pattern", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID after %d mints: %s", i, id)
		}
		seen[id] = true
	}
}

func TestMintShape(t *testing.T) {
	p, a := mintRecords()
	var m IDMinter

	id := m.Mint(p, a)
	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != "CERT" {
		t.Fatalf("ID %q should have the form CERT-<hash>-<token>", id)
	}
	if len(parts[1]) != hashPrefixLen || len(parts[2]) != tokenLen {
		t.Errorf("ID %q has wrong segment lengths", id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("ID %q should be uppercase", id)
	}
}

// With clock and token injected the minted ID is fully deterministic.
func TestMintDeterministic(t *testing.T) {
	p, a := mintRecords()
	m := IDMinter{
		Now:   func() time.Time { return time.UnixMilli(1700000000000) },
		Token: func() string { return "AAAA1111" },
	}

	first := m.Mint(p, a)
	if second := m.Mint(p, a); second != first {
		t.Errorf("deterministic minter produced %q then %q", first, second)
	}
	if !strings.HasSuffix(first, "-AAAA1111") {
		t.Errorf("ID %q should end with the injected token", first)
	}

	// changing the record changes the hash prefix
	p.Name = "Grace Hopper"
	if m.Mint(p, a) == first {
		t.Error("different records should yield different hash prefixes")
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"minted shape", "CERT-ABCDEF12-AABBCCDD", false},
		{"caller supplied", "course_2024-batch_7", false},
		{"minimum length", "ABCDEFGHIJ", false},
		{"empty", "", true},
		{"too short", "CERT-12", true},
		{"too long", strings.Repeat("A", 51), true},
		{"forbidden characters", "CERT ABCDEF12!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("ValidateID(%q) should return a ValidationError, got %T", tt.id, err)
			}
		})
	}
}
