// Package forms holds the HTML form types and their field-scoped
// validation. Each Validate returns a map from field name to messages;
// an empty map means the form is valid and no state was mutated.
package forms

// Errors maps a form field to its validation messages. The pseudo
// field "__all__" carries non-field errors such as a failed login.
type Errors map[string][]string

// NonFieldErrors is the key under which form-wide errors are reported.
const NonFieldErrors = "__all__"

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

const requiredMessage = "This field is required."
