package forms

import (
	"testing"

	"github.com/anonto42/microblog/internal/models"
	"github.com/stretchr/testify/require"
)

// stubUserDirectory fakes the account directory for form validation.
type stubUserDirectory struct {
	usernames map[string]bool
	emails    map[string]bool
}

func (s *stubUserDirectory) CreateUser(*models.User) error                  { return nil }
func (s *stubUserDirectory) GetUserByID(uint) (*models.User, error)         { return nil, nil }
func (s *stubUserDirectory) GetUserByUsername(string) (*models.User, error) { return nil, nil }
func (s *stubUserDirectory) GetUserByEmail(string) (*models.User, error)    { return nil, nil }

func (s *stubUserDirectory) UsernameExists(username string) (bool, error) {
	return s.usernames[username], nil
}

func (s *stubUserDirectory) EmailExists(email string) (bool, error) {
	return s.emails[email], nil
}

func emptyDirectory() *stubUserDirectory {
	return &stubUserDirectory{usernames: map[string]bool{}, emails: map[string]bool{}}
}

func TestSignupFormValid(t *testing.T) {
	form := SignupForm{
		Username:  "foo",
		Email:     "foo@example.com",
		Password1: "testpassword",
		Password2: "testpassword",
	}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestSignupFormRequiredFields(t *testing.T) {
	form := SignupForm{}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	for _, field := range []string{"username", "email", "password1", "password2"} {
		require.True(t, errs.Has(field), "expected error on %s", field)
		require.Contains(t, errs[field], "This field is required.")
	}
}

func TestSignupFormDuplicateUsername(t *testing.T) {
	dir := emptyDirectory()
	dir.usernames["foo1"] = true

	form := SignupForm{
		Username:  "foo1",
		Email:     "foo1@example.com",
		Password1: "testpassword1",
		Password2: "testpassword1",
	}
	errs, err := form.Validate(dir)
	require.NoError(t, err)
	require.Contains(t, errs["username"], "A user with that username already exists.")
}

func TestSignupFormPasswordMismatch(t *testing.T) {
	form := SignupForm{
		Username:  "foo",
		Email:     "foo@example.com",
		Password1: "test",
		Password2: "testpassword",
	}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	require.Contains(t, errs["password2"], "The two password fields did not match.")
}

func TestSignupFormShortPassword(t *testing.T) {
	form := SignupForm{
		Username:  "foo",
		Email:     "foo@example.com",
		Password1: "bjki",
		Password2: "bjki",
	}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	require.Contains(t, errs["password2"], "This password is too short. It must contain at least 8 characters.")
}

func TestSignupFormCommonPassword(t *testing.T) {
	form := SignupForm{
		Username:  "foo",
		Email:     "foo@example.com",
		Password1: "123456789",
		Password2: "123456789",
	}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	require.Contains(t, errs["password2"], "This password is too common.")
}

func TestSignupFormInvalidEmail(t *testing.T) {
	form := SignupForm{
		Username:  "foo",
		Email:     "not-an-email",
		Password1: "testpassword",
		Password2: "testpassword",
	}
	errs, err := form.Validate(emptyDirectory())
	require.NoError(t, err)
	require.Contains(t, errs["email"], "Enter a valid email address.")
}

func TestTweetFormEmptyContent(t *testing.T) {
	form := TweetForm{Title: "test", Content: ""}
	errs := form.Validate()
	require.Contains(t, errs["content"], "This field is required.")
	require.False(t, errs.Has("title"))
}

func TestLoginFormRequiredFields(t *testing.T) {
	form := LoginForm{}
	errs := form.Validate()
	require.True(t, errs.Has("username"))
	require.True(t, errs.Has("password"))
}
