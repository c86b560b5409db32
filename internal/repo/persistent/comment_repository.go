package persistent

import (
	"context"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]entity.Comment, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	HasCommented(ctx context.Context, userID, postID uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m := ToCommentModel(comment)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return translate(err)
	}
	if err := db.Preload("User").First(m, m.ID).Error; err != nil {
		return translate(err)
	}
	*comment = *ToCommentEntity(m)
	return nil
}

// ListByPost returns comments newest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]entity.Comment, error) {
	var models []model.CommentModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, *ToCommentEntity(&models[i]))
	}
	return comments, nil
}

func (r *commentRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return countByPosts(r.db.WithContext(ctx), model.CommentModel{}.TableName(), postIDs)
}

func (r *commentRepository) HasCommented(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
