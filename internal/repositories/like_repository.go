package repositories

import (
	"github.com/anonto42/microblog/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for reaction store operations
type LikeRepository interface {
	LikePost(userID, postID uint) (int64, error)
	UnlikePost(userID, postID uint) (int64, error)
	HasUserLikedPost(userID, postID uint) (bool, error)
	GetLikesCount(postID uint) (int64, error)
	GetLikedPostIDs(userID uint) ([]uint, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// LikePost creates the like edge if absent and returns the post's new
// like count. Liking an already-liked post is a no-op, never an error.
func (r *PostgresLikeRepository) LikePost(userID, postID uint) (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := models.Like{UserID: userID, PostID: postID}
		if err := tx.Where(models.Like{UserID: userID, PostID: postID}).FirstOrCreate(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	return count, err
}

// UnlikePost removes the like edge if present and returns the post's
// new like count. Unliking a never-liked post is a no-op.
func (r *PostgresLikeRepository) UnlikePost(userID, postID uint) (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	return count, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCount retrieves the count of likes for a specific post
func (r *PostgresLikeRepository) GetLikesCount(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedPostIDs retrieves the IDs of every post the user has liked.
// Collected once per page render so the like state of each post can be
// tested by membership instead of a query per post.
func (r *PostgresLikeRepository) GetLikedPostIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Pluck("post_id", &ids).Error
	return ids, err
}
