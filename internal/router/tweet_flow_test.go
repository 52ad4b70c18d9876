package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/anonto42/microblog/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCreateTweetPage(t *testing.T) {
	e, _ := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")

	rec := doRequest(e, http.MethodGet, "/tweet/", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "New tweet")
}

func TestCreateTweetSuccess(t *testing.T) {
	e, db := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")

	form := url.Values{"title": {"test"}, "content": {"test"}}
	rec := doRequest(e, http.MethodPost, "/tweet/", form, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/foo/", rec.Header().Get(echo.HeaderLocation))

	post := postByTitle(t, db, "test")
	require.Equal(t, userByUsername(t, db, "foo").ID, post.UserID)
}

func TestCreateTweetEmptyContent(t *testing.T) {
	e, db := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")

	form := url.Values{"title": {"test"}, "content": {""}}
	rec := doRequest(e, http.MethodPost, "/tweet/", form, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "This field is required.")

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestHomeFeedNewestFirst(t *testing.T) {
	e, _ := newTestServer(t)
	foo1 := registerAndLogin(t, e, "foo1")
	foo2 := registerAndLogin(t, e, "foo2")

	createPost(t, e, foo1, "test1", "test1")
	createPost(t, e, foo2, "test2", "test2")

	rec := doRequest(e, http.MethodGet, "/home/", nil, foo1)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "test1")
	require.Contains(t, body, "test2")
	require.Contains(t, body, "foo2")
	require.Less(t, strings.Index(body, "test2"), strings.Index(body, "test1"),
		"newest post should render first")
}

func TestTweetDetail(t *testing.T) {
	e, db := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")
	createPost(t, e, cookies, "test", "hello world")
	post := postByTitle(t, db, "test")

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/detail/%d/", post.ID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "hello world")
}

func TestTweetDetailNotFound(t *testing.T) {
	e, _ := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")

	rec := doRequest(e, http.MethodGet, "/detail/999/", nil, cookies)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTweetByOwner(t *testing.T) {
	e, db := newTestServer(t)
	cookies := registerAndLogin(t, e, "foo")
	createPost(t, e, cookies, "test", "test")
	post := postByTitle(t, db, "test")

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/detail/%d/delete/", post.ID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test")

	rec = doRequest(e, http.MethodPost, fmt.Sprintf("/detail/%d/delete/", post.ID), nil, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/foo/", rec.Header().Get(echo.HeaderLocation))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteTweetByNonOwnerForbidden(t *testing.T) {
	e, db := newTestServer(t)
	foo1 := registerAndLogin(t, e, "foo1")
	foo2 := registerAndLogin(t, e, "foo2")

	createPost(t, e, foo1, "test", "test")
	post := postByTitle(t, db, "test")

	rec := doRequest(e, http.MethodPost, fmt.Sprintf("/detail/%d/delete/", post.ID), nil, foo2)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
