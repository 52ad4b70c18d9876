package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/microblog/internal/models"
	"github.com/anonto42/microblog/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles the follow toggle and the follow list pages
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/follow/:id/", h.ToggleFollow)
	g.GET("/:username/following/", h.FollowingList)
	g.GET("/:username/followers/", h.FollowersList)
}

// ToggleFollow follows the target if not yet followed, unfollows
// otherwise, then redirects to the target's profile. Following
// yourself mutates nothing and surfaces a flash message on the
// redirect instead of failing the request.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	target, err := h.userRepository.GetUserByID(uint(targetID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	_, err = h.followRepository.ToggleFollow(getUserIDFromContext(c), target.ID)
	if errors.Is(err, repositories.ErrSelfFollow) {
		addFlash(c, "You cannot follow yourself.")
	} else if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/"+target.Username+"/")
}

// FollowingList renders the accounts a user follows
func (h *FollowHandler) FollowingList(c echo.Context) error {
	user, err := h.getUserByUsername(c)
	if err != nil {
		return err
	}

	following, err := h.followRepository.GetFollowing(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "following_list.html", echo.Map{
		"ProfileUser": user,
		"Users":       following,
	})
}

// FollowersList renders the accounts following a user
func (h *FollowHandler) FollowersList(c echo.Context) error {
	user, err := h.getUserByUsername(c)
	if err != nil {
		return err
	}

	followers, err := h.followRepository.GetFollowers(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "followers_list.html", echo.Map{
		"ProfileUser": user,
		"Users":       followers,
	})
}

func (h *FollowHandler) getUserByUsername(c echo.Context) (*models.User, error) {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return user, nil
}
