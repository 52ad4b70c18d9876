package forms

import (
	"strings"

	"github.com/anonto42/microblog/internal/repositories"
	"github.com/anonto42/microblog/validators"
)

// commonPasswords are rejected outright. Mirrors the usual
// top-of-the-breach-list entries checked at registration.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"password123": {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwertyuiop": {},
	"asdfghjkl":  {},
	"iloveyou":   {},
	"sunshine":   {},
	"princess":   {},
	"football":   {},
	"baseball":   {},
	"superman":   {},
	"trustno1":   {},
	"welcome1":   {},
	"letmein1":   {},
	"dragon12":   {},
	"monkey12":   {},
	"abc12345":   {},
}

const minPasswordLength = 8

// SignupForm is the registration form. Password1 is the password,
// Password2 the confirmation.
type SignupForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

// Validate checks the form and returns field-scoped errors. Username
// and email uniqueness is checked against the account directory so a
// duplicate surfaces as a form error instead of a database failure.
func (f *SignupForm) Validate(users repositories.UserRepository) (Errors, error) {
	errs := Errors{}

	if strings.TrimSpace(f.Username) == "" {
		errs.Add("username", requiredMessage)
	} else if exists, err := users.UsernameExists(f.Username); err != nil {
		return nil, err
	} else if exists {
		errs.Add("username", "A user with that username already exists.")
	}

	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", requiredMessage)
	} else if validators.Var(f.Email, "email") != nil {
		errs.Add("email", "Enter a valid email address.")
	} else if exists, err := users.EmailExists(f.Email); err != nil {
		return nil, err
	} else if exists {
		errs.Add("email", "A user with that email address already exists.")
	}

	if f.Password1 == "" {
		errs.Add("password1", requiredMessage)
	}
	if f.Password2 == "" {
		errs.Add("password2", requiredMessage)
	}

	if f.Password1 != "" && f.Password2 != "" {
		if f.Password1 != f.Password2 {
			errs.Add("password2", "The two password fields did not match.")
		} else {
			f.validatePassword(errs)
		}
	}

	return errs, nil
}

// validatePassword runs the password strength checks on the confirmed
// password. Errors are reported on password2, after the match check.
func (f *SignupForm) validatePassword(errs Errors) {
	if len(f.Password2) < minPasswordLength {
		errs.Add("password2", "This password is too short. It must contain at least 8 characters.")
		return
	}
	if _, ok := commonPasswords[strings.ToLower(f.Password2)]; ok {
		errs.Add("password2", "This password is too common.")
	}
}
