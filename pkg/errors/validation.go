package errors

// ValidationError reports structural rule violations in input records or a
// certificate identifier. Fields maps each offending field name to a
// human-readable message describing the violated rule.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	return "validation failed: " + e.Message + " (" + joinFields(e.Fields) + ")"
}

// NewValidation creates a ValidationError for a single rule violation that is
// not tied to a record field (for example a malformed certificate ID).
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidation creates a ValidationError carrying a field→message map.
// The map is stored as-is; callers should not mutate it afterwards.
func NewFieldValidation(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// FieldMap accumulates per-field violations during record validation.
// Initialize with FieldMap{}; a nil FieldMap must not be written to.
type FieldMap map[string]string

// Add records a violation for field. A later Add for the same field appends
// to the existing message so no rule is silently dropped.
func (m FieldMap) Add(field, message string) {
	if prev, ok := m[field]; ok {
		m[field] = prev + "; " + message
		return
	}
	m[field] = message
}

// Err returns a ValidationError holding the accumulated violations, or nil
// when no violation was recorded.
func (m FieldMap) Err(message string) error {
	if len(m) == 0 {
		return nil
	}
	return NewFieldValidation(message, map[string]string(m))
}
