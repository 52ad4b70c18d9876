package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/microblog/internal/forms"
	"github.com/anonto42/microblog/internal/middleware"
	"github.com/anonto42/microblog/internal/models"
	"github.com/anonto42/microblog/internal/repositories"
	"github.com/anonto42/microblog/pkg/metrics"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepository: userRepo}
}

// RegisterAuthRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/signup/", h.SignupPage)
	e.POST("/signup/", h.Signup)
	e.GET("/login/", h.LoginPage)
	e.POST("/login/", h.Login)
	e.GET("/logout/", h.Logout)
}

// SignupPage renders the registration form
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"Form":   &forms.SignupForm{},
		"Errors": forms.Errors{},
	})
}

// Signup registers a new account. Validation failures re-render the
// form with field-scoped messages and create no row.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form forms.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	errs, err := form.Validate(h.userRepository)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"Form":   &form,
			"Errors": errs,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password1), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.UserRegistrations.Inc()
	return c.Redirect(http.StatusFound, "/login/")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Form":   &forms.LoginForm{},
		"Errors": forms.Errors{},
	})
}

// Login authenticates the credentials and opens a session. A failed
// login reports one non-field error without saying which credential
// was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	errs := form.Validate()
	var user *models.User
	if len(errs) == 0 {
		var err error
		user, err = h.userRepository.GetUserByUsername(form.Username)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add(forms.NonFieldErrors, forms.LoginFailedMessage)
		case err != nil:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		case !user.IsActive,
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil:
			errs.Add(forms.NonFieldErrors, forms.LoginFailedMessage)
		}
	}

	if len(errs) > 0 {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"Form":   &form,
			"Errors": errs,
		})
	}

	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open session")
	}
	sess.Options.Path = "/"
	sess.Options.HttpOnly = true
	sess.Values["user_id"] = user.ID
	sess.Values["username"] = user.Username
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save session")
	}

	metrics.UserLogins.Inc()
	return c.Redirect(http.StatusFound, "/home/")
}

// Logout closes the session and redirects to the login page
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err == nil {
		delete(sess.Values, "user_id")
		delete(sess.Values, "username")
		sess.Options.MaxAge = -1
		_ = sess.Save(c.Request(), c.Response())
	}
	return c.Redirect(http.StatusFound, "/login/")
}

// Index renders the landing page for logged-in users
func (h *AuthHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Username": getUsernameFromContext(c),
	})
}
