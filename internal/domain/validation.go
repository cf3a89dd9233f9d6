package domain

import (
	"fmt"
	"strings"
)

// Validation rules reported in FieldError.Rule.
const (
	RuleRequired       = "required"
	RuleEndBeforeStart = "end_before_start"
)

// FieldError is one violated rule on one draft field.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// MessageID identifies the translated message for this error, e.g. "name_required".
func (f FieldError) MessageID() string {
	return f.Field + "_" + f.Rule
}

// ValidationError carries every field error found in a draft.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
