package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mhartmer/certforge/pkg/errors"
)

// Field length limits for record validation.
const (
	MinPersonNameLen      = 2
	MaxPersonNameLen      = 100
	MinAchievementNameLen = 3
	MaxAchievementNameLen = 200
	MinSignerLen          = 2
)

var (
	// personIDRegex matches external person identifiers.
	personIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	// emailRegex is intentionally minimal: a local part, one @, a domain
	// with at least one dot-separated TLD. Full RFC 5322 parsing is not the
	// pipeline's job.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidatePerson checks all structural rules for a person record and returns
// a ValidationError enumerating every violated field, or nil.
func ValidatePerson(p PersonRecord) error {
	fields := errors.FieldMap{}
	collectPerson(p, fields)
	return fields.Err("invalid person record")
}

// ValidateAchievement checks all structural rules for an achievement record
// and returns a ValidationError enumerating every violated field, or nil.
func ValidateAchievement(a AchievementRecord) error {
	fields := errors.FieldMap{}
	collectAchievement(a, fields)
	return fields.Err("invalid achievement record")
}

// ValidateRecords checks both records at once, merging the violations of
// both into a single field map so callers see every problem in one pass.
func ValidateRecords(p PersonRecord, a AchievementRecord) error {
	fields := errors.FieldMap{}
	collectPerson(p, fields)
	collectAchievement(a, fields)
	return fields.Err("invalid certificate records")
}

func collectPerson(p PersonRecord, fields errors.FieldMap) {
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		fields.Add("person.name", "must not be empty")
	case len(name) < MinPersonNameLen || len(name) > MaxPersonNameLen:
		fields.Add("person.name", fmt.Sprintf("length must be between %d and %d characters", MinPersonNameLen, MaxPersonNameLen))
	}

	if strings.TrimSpace(p.ID) == "" {
		fields.Add("person.id", "must not be empty")
	} else if !personIDRegex.MatchString(p.ID) {
		fields.Add("person.id", "may only contain letters, digits, underscores and hyphens")
	}

	if strings.TrimSpace(p.Email) == "" {
		fields.Add("person.email", "must not be empty")
	} else if !emailRegex.MatchString(p.Email) {
		fields.Add("person.email", "must look like local@domain.tld")
	}

	if p.CompletionDate.IsZero() {
		fields.Add("person.completion_date", "must be set")
	} else if p.CompletionDate.After(time.Now()) {
		fields.Add("person.completion_date", "must not be in the future")
	}
}

func collectAchievement(a AchievementRecord, fields errors.FieldMap) {
	name := strings.TrimSpace(a.Name)
	switch {
	case name == "":
		fields.Add("achievement.name", "must not be empty")
	case len(name) < MinAchievementNameLen || len(name) > MaxAchievementNameLen:
		fields.Add("achievement.name", fmt.Sprintf("length must be between %d and %d characters", MinAchievementNameLen, MaxAchievementNameLen))
	}

	if len(strings.TrimSpace(a.Instructor)) < MinSignerLen {
		fields.Add("achievement.instructor", "must be at least 2 characters")
	}
	if len(strings.TrimSpace(a.Institution)) < MinSignerLen {
		fields.Add("achievement.institution", "must be at least 2 characters")
	}
	if strings.TrimSpace(a.Duration) == "" {
		fields.Add("achievement.duration", "must not be empty")
	}
}
