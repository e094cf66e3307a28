package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhartmer/certforge/pkg/errors"
	"github.com/mhartmer/certforge/pkg/model"
)

// Certificate ID format limits.
const (
	MinIDLen = 10
	MaxIDLen = 50

	hashPrefixLen = 8
	tokenLen      = 8
)

// idRegex matches well-formed certificate identifiers.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// IDMinter derives certificate identifiers. The clock and token source are
// injectable so tests can assert exact IDs; the zero value uses real time
// and random tokens.
type IDMinter struct {
	// Now supplies the timestamp mixed into the hash prefix.
	// Defaults to time.Now.
	Now func() time.Time

	// Token supplies the random 8-character uppercase suffix that
	// guarantees uniqueness across calls with identical inputs in the
	// same millisecond. Defaults to a UUID-derived token.
	Token func() string
}

// Mint derives a certificate ID of the form CERT-<hashPrefix>-<token>.
//
// The hash prefix binds the ID to the record (person name and ID,
// achievement name, instructor, mint time in milliseconds) without being the
// sole uniqueness source; the random token is what makes two mints of the
// same record distinct.
func (m *IDMinter) Mint(p model.PersonRecord, a model.AchievementRecord) string {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	token := randomToken
	if m.Token != nil {
		token = m.Token
	}

	seed := strings.Join([]string{
		p.Name,
		p.ID,
		a.Name,
		a.Instructor,
		strconv.FormatInt(now().UnixMilli(), 10),
	}, "|")
	sum := sha256.Sum256([]byte(seed))
	prefix := strings.ToUpper(hex.EncodeToString(sum[:]))[:hashPrefixLen]

	return "CERT-" + prefix + "-" + token()
}

// randomToken returns 8 uppercase hex characters drawn from a random UUID.
func randomToken() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:tokenLen]
}

// ValidateID format-checks a certificate identifier, whether minted or
// caller-supplied. A violation is a ValidationError.
func ValidateID(id string) error {
	if id == "" {
		return errors.NewValidation("certificate ID must not be empty")
	}
	if len(id) < MinIDLen || len(id) > MaxIDLen {
		return errors.NewValidation("certificate ID length must be between 10 and 50 characters")
	}
	if !idRegex.MatchString(id) {
		return errors.NewValidation("certificate ID may only contain letters, digits, underscores and hyphens")
	}
	return nil
}
