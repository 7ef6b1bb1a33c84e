// Package validation provides input validation for wizard answers.
//
// All user input flows through these predicates before it reaches the
// renderer, whether it arrives interactively (wizard, TUI) or headlessly
// (answers file, `new` command flags). The predicates operate on the raw
// line as entered; values are never trimmed or normalized.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/models"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	urlPattern        = regexp.MustCompile(`^https?://.+`)
)

// Identifier accepts values that start with a letter followed by letters,
// digits, or underscores. Salesforce metadata API names follow this shape.
func Identifier(value string) error {
	if !identifierPattern.MatchString(value) {
		return fmt.Errorf("must start with a letter and contain only letters, digits, and underscores")
	}
	return nil
}

// URL accepts values starting with http:// or https:// followed by at least
// one character. No full URL parse: the value is substituted verbatim.
func URL(value string) error {
	if !urlPattern.MatchString(value) {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

// OptionalNamespace accepts the empty string or an identifier.
func OptionalNamespace(value string) error {
	if value == "" {
		return nil
	}
	if err := Identifier(value); err != nil {
		return fmt.Errorf("namespace %s", err)
	}
	return nil
}

// FieldError is a validation failure for one answer field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result collects field errors from validating a full answer set.
type Result struct {
	Errors []FieldError
}

// Valid reports whether validation passed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Error joins all field errors into one message.
func (r *Result) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Answers validates a complete answer set, as used by the headless paths
// where there is no re-prompt loop to recover field by field.
func Answers(a models.Answers) *Result {
	result := &Result{}

	if err := Identifier(a.Name); err != nil {
		result.add(models.TokenName, err.Error())
	}
	if err := URL(a.ServerURL); err != nil {
		result.add(models.TokenServerURL, err.Error())
	}
	if err := URL(a.AuthURL); err != nil {
		result.add(models.TokenAuthURL, err.Error())
	}
	if err := OptionalNamespace(a.Namespace); err != nil {
		result.add(models.TokenNamespace, err.Error())
	}

	return result
}
