package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field describes one input of a form: how to render it and the validator
// rule its trimmed value must satisfy.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"` // text | email | textarea
	Rule        string `json:"-"`
	Required    bool   `json:"required"`
	MaxLength   int    `json:"max_length"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Form is an ordered list of fields.
type Form struct {
	Fields []Field `json:"fields"`
}

// ContactForm is the public contact form.
var ContactForm = Form{Fields: []Field{
	{Name: "name", Label: "Your Name", Type: "text", Rule: "required,max=100", Required: true, MaxLength: 100},
	{Name: "email", Label: "Email Address", Type: "email", Rule: "required,email,max=254", Required: true, MaxLength: 254},
	{Name: "subject", Label: "Subject", Type: "text", Rule: "required,max=200", Required: true, MaxLength: 200},
	{Name: "message", Label: "Your Message", Type: "textarea", Rule: "required,max=5000", Required: true, MaxLength: 5000},
}}

// ValidationError maps field names to their error messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Has reports whether field has at least one error.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

var validate = validator.New()

// Clean trims every declared field of values and checks it against its rule.
// Unknown keys are dropped. On failure the returned error is a *ValidationError
// and the cleaned values are still returned for re-display.
func (f Form) Clean(values map[string]string) (map[string]string, error) {
	cleaned := make(map[string]string, len(f.Fields))
	verr := &ValidationError{Fields: map[string][]string{}}

	for _, field := range f.Fields {
		value := strings.TrimSpace(values[field.Name])
		cleaned[field.Name] = value

		if err := validate.Var(value, field.Rule); err != nil {
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				return cleaned, err
			}
			for _, fe := range errs {
				verr.Fields[field.Name] = append(verr.Fields[field.Name], fieldMessage(fe))
			}
		}
	}

	if len(verr.Fields) > 0 {
		return cleaned, verr
	}
	return cleaned, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}
