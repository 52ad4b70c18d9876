package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetAllPostsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)

	foo1 := createTestUser(t, db, "foo1")
	foo2 := createTestUser(t, db, "foo2")
	createTestPost(t, db, foo1, "test1")
	createTestPost(t, db, foo2, "test2")

	posts, err := repo.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "test2", posts[0].Title)
	require.Equal(t, "test1", posts[1].Title)
	require.Equal(t, "foo2", posts[0].User.Username)
}

func TestGetPostsByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)

	foo1 := createTestUser(t, db, "foo1")
	foo2 := createTestUser(t, db, "foo2")
	createTestPost(t, db, foo1, "mine1")
	createTestPost(t, db, foo2, "theirs")
	createTestPost(t, db, foo1, "mine2")

	posts, err := repo.GetPostsByUserID(foo1.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "mine2", posts[0].Title)
	require.Equal(t, "mine1", posts[1].Title)
}

func TestGetPostsLikedByUserOrderedByLikeTime(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	foo := createTestUser(t, db, "foo")
	post1 := createTestPost(t, db, foo, "test1")
	post2 := createTestPost(t, db, foo, "test2")
	createTestPost(t, db, foo, "test3")

	// Like the older post first: the liked feed must order by like
	// time, not post time.
	_, err := likeRepo.LikePost(foo.ID, post1.ID)
	require.NoError(t, err)
	_, err = likeRepo.LikePost(foo.ID, post2.ID)
	require.NoError(t, err)

	posts, err := postRepo.GetPostsLikedByUser(foo.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "test2", posts[0].Title)
	require.Equal(t, "test1", posts[1].Title)
}

func TestDeletePostRemovesLikeEdges(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	foo := createTestUser(t, db, "foo")
	post := createTestPost(t, db, foo, "test")

	_, err := likeRepo.LikePost(foo.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, postRepo.DeletePost(post.ID))

	_, err = postRepo.GetPostByID(post.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ids, err := likeRepo.GetLikedPostIDs(foo.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}
