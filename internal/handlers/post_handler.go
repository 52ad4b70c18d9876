package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/microblog/internal/forms"
	"github.com/anonto42/microblog/internal/models"
	"github.com/anonto42/microblog/internal/repositories"
	"github.com/anonto42/microblog/pkg/metrics"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	likeRepository repositories.LikeRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		likeRepository: likeRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/home/", h.Home)
	g.GET("/tweet/", h.CreateTweetPage)
	g.POST("/tweet/", h.CreateTweet)
	g.GET("/detail/:id/", h.DetailTweet)
	g.GET("/detail/:id/delete/", h.DeleteTweetPage)
	g.POST("/detail/:id/delete/", h.DeleteTweet)
	g.DELETE("/detail/:id/delete/", h.DeleteTweet)
	g.GET("/favorite/", h.LikedTweets)
}

// PostView is a post annotated with the viewer's like state
type PostView struct {
	models.Post
	Liked bool
}

// buildPostViews marks each post with membership in the viewer's like
// set. The set is collected once per page, not per post.
func buildPostViews(posts []models.Post, likedIDs []uint) []PostView {
	likedSet := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{Post: p, Liked: likedSet[p.ID]}
	}
	return views
}

// Home renders the global feed, newest post first
func (h *PostHandler) Home(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	likedIDs, err := h.likeRepository.GetLikedPostIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Posts":    buildPostViews(posts, likedIDs),
		"Username": getUsernameFromContext(c),
		"Messages": popFlashes(c),
	})
}

// CreateTweetPage renders the post creation form
func (h *PostHandler) CreateTweetPage(c echo.Context) error {
	return c.Render(http.StatusOK, "tweet_create.html", echo.Map{
		"Form":   &forms.TweetForm{},
		"Errors": forms.Errors{},
	})
}

// CreateTweet creates a new post owned by the logged-in user
func (h *PostHandler) CreateTweet(c echo.Context) error {
	var form forms.TweetForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if errs := form.Validate(); len(errs) > 0 {
		return c.Render(http.StatusOK, "tweet_create.html", echo.Map{
			"Form":   &form,
			"Errors": errs,
		})
	}

	post := &models.Post{
		Title:   form.Title,
		Content: form.Content,
		UserID:  getUserIDFromContext(c),
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.PostsCreated.Inc()
	return c.Redirect(http.StatusFound, "/"+getUsernameFromContext(c)+"/")
}

// DetailTweet renders a single post page
func (h *PostHandler) DetailTweet(c echo.Context) error {
	post, err := h.getPost(c)
	if err != nil {
		return err
	}

	liked, err := h.likeRepository.HasUserLikedPost(getUserIDFromContext(c), post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "tweet_detail.html", echo.Map{
		"Post": PostView{Post: *post, Liked: liked},
	})
}

// DeleteTweetPage renders the deletion confirm page. Only the owner
// may see it.
func (h *PostHandler) DeleteTweetPage(c echo.Context) error {
	post, err := h.getOwnedPost(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "tweet_delete.html", echo.Map{"Post": post})
}

// DeleteTweet deletes a post. Requests from anyone but the owner are
// refused with a forbidden response regardless of authentication.
func (h *PostHandler) DeleteTweet(c echo.Context) error {
	post, err := h.getOwnedPost(c)
	if err != nil {
		return err
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/"+getUsernameFromContext(c)+"/")
}

// LikedTweets renders the viewer's liked posts, most recent like first
func (h *PostHandler) LikedTweets(c echo.Context) error {
	posts, err := h.postRepository.GetPostsLikedByUser(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{Post: p, Liked: true}
	}
	return c.Render(http.StatusOK, "tweet_like_list.html", echo.Map{
		"Posts": views,
	})
}

func (h *PostHandler) getPost(c echo.Context) (*models.Post, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return post, nil
}

func (h *PostHandler) getOwnedPost(c echo.Context) (*models.Post, error) {
	post, err := h.getPost(c)
	if err != nil {
		return nil, err
	}
	if post.UserID != getUserIDFromContext(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You do not own this post")
	}
	return post, nil
}
