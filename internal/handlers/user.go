package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/microblog/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles the profile page
type UserHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	likeRepository   repositories.LikeRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
		likeRepository:   likeRepo,
	}
}

// RegisterProfileRoutes registers the profile page route. Must be
// registered after the static routes so the username parameter does
// not shadow them.
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/:username/", h.Profile)
}

// Profile renders a user's page: their posts newest first, follow
// statistics, and the viewer's relationship to them.
func (h *UserHandler) Profile(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByUserID(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followingCount, err := h.followRepository.GetFollowingCount(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followersCount, err := h.followRepository.GetFollowersCount(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	viewerFollowingIDs, err := h.followRepository.GetFollowingIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	likedIDs, err := h.likeRepository.GetLikedPostIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isFollowing := false
	for _, id := range viewerFollowingIDs {
		if id == target.ID {
			isFollowing = true
			break
		}
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"ProfileUser":    target,
		"Posts":          buildPostViews(posts, likedIDs),
		"FollowingCount": followingCount,
		"FollowersCount": followersCount,
		"IsFollowing":    isFollowing,
		"IsSelf":         viewerID == target.ID,
		"Messages":       popFlashes(c),
	})
}
