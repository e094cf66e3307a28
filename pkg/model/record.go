// Package model defines the input records consumed by the generation
// pipeline and their validation rules.
//
// PersonRecord and AchievementRecord are owned by the caller and passed by
// reference for the duration of one generation call; the pipeline never
// retains them past the call. Both records support a symmetric structured
// round-trip (serialize to a key-value mapping, parse back to an equal
// record) so host applications can move them across process boundaries
// without depending on this package's JSON layout.
package model

import (
	"time"
)

// DateLayout is the wire format for completion dates in map round-trips.
const DateLayout = "2006-01-02"

// PersonRecord identifies the certificate recipient.
type PersonRecord struct {
	Name           string    `json:"name"`
	ID             string    `json:"id"`
	CompletionDate time.Time `json:"completion_date"`
	Email          string    `json:"email"`
}

// AchievementRecord describes the course or award being certified.
type AchievementRecord struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Instructor  string `json:"instructor"`
	Institution string `json:"institution"`
	Description string `json:"description,omitempty"`
}

// ToMap serializes the record as a flat key-value mapping.
func (p PersonRecord) ToMap() map[string]string {
	return map[string]string{
		"name":            p.Name,
		"id":              p.ID,
		"completion_date": p.CompletionDate.Format(DateLayout),
		"email":           p.Email,
	}
}

// PersonFromMap parses a mapping produced by [PersonRecord.ToMap].
// Round-tripping truncates the completion date to day precision.
func PersonFromMap(m map[string]string) (PersonRecord, error) {
	date, err := time.Parse(DateLayout, m["completion_date"])
	if err != nil {
		return PersonRecord{}, err
	}
	return PersonRecord{
		Name:           m["name"],
		ID:             m["id"],
		CompletionDate: date,
		Email:          m["email"],
	}, nil
}

// ToMap serializes the record as a flat key-value mapping.
func (a AchievementRecord) ToMap() map[string]string {
	return map[string]string{
		"name":        a.Name,
		"duration":    a.Duration,
		"instructor":  a.Instructor,
		"institution": a.Institution,
		"description": a.Description,
	}
}

// AchievementFromMap parses a mapping produced by [AchievementRecord.ToMap].
func AchievementFromMap(m map[string]string) AchievementRecord {
	return AchievementRecord{
		Name:        m["name"],
		Duration:    m["duration"],
		Instructor:  m["instructor"],
		Institution: m["institution"],
		Description: m["description"],
	}
}
