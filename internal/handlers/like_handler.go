package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/microblog/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles the XHR like/unlike requests
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/like/:id/", h.LikeTweet)
	g.POST("/unlike/:id/", h.UnlikeTweet)
}

// LikeTweet likes a post and returns the new count. Liking an
// already-liked post returns the same payload without error.
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	postID, err := h.resolvePostID(c)
	if err != nil {
		return err
	}

	count, err := h.likeRepository.LikePost(getUserIDFromContext(c), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post_pk":     postID,
		"likes_count": count,
		"liked":       true,
	})
}

// UnlikeTweet removes the viewer's like from a post. Unliking a
// never-liked post is a no-op, not an error.
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	postID, err := h.resolvePostID(c)
	if err != nil {
		return err
	}

	count, err := h.likeRepository.UnlikePost(getUserIDFromContext(c), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post_pk":     postID,
		"likes_count": count,
		"liked":       false,
	})
}

func (h *LikeHandler) resolvePostID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if _, err := h.postRepository.GetPostByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return uint(id), nil
}
