package forms

import "strings"

// LoginFailedMessage deliberately does not say which of the two
// credentials was wrong.
const LoginFailedMessage = "Please enter a correct username and password."

// LoginForm is the session login form.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Validate checks field presence. Credential verification happens in
// the handler, which reports failure through NonFieldErrors.
func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Username) == "" {
		errs.Add("username", requiredMessage)
	}
	if f.Password == "" {
		errs.Add("password", requiredMessage)
	}
	return errs
}
