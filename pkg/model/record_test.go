package model

import (
	"testing"
	"time"
)

func TestPersonRoundTrip(t *testing.T) {
	p := PersonRecord{
		Name:           "Ada Lovelace",
		ID:             "STU-100",
		CompletionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Email:          "ada@example.com",
	}

	got, err := PersonFromMap(p.ToMap())
	if err != nil {
		t.Fatalf("PersonFromMap: %v", err)
	}
	if got != p {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestPersonFromMapBadDate(t *testing.T) {
	m := PersonRecord{Name: "x", ID: "y"}.ToMap()
	m["completion_date"] = "not-a-date"
	if _, err := PersonFromMap(m); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestAchievementRoundTrip(t *testing.T) {
	a := AchievementRecord{
		Name:        "Intro to Computing",
		Duration:    "10 hours",
		Instructor:  "A. Turing",
		Institution: "Example University",
		Description: "Foundations of computation.",
	}

	if got := AchievementFromMap(a.ToMap()); got != a {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, a)
	}
}
