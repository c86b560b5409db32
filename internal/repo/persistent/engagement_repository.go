package persistent

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository interface {
	// Toggle flips the (user, post) row of kind and reports whether it is
	// now active.
	Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error)
	// Record creates the (user, post) row of kind if absent. Kinds that
	// touch on repeat refresh updated_at instead of doing nothing.
	Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) error
	Exists(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error)
	Count(ctx context.Context, kind entity.EngagementKind, postID uint) (int64, error)
	CountByPosts(ctx context.Context, kind entity.EngagementKind, postIDs []uint) (map[uint]int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Toggle deletes the row if present, otherwise inserts it. When the insert
// loses a race against a concurrent insert of the same pair the row is
// re-read: present means active, absent means it was removed again in the
// meantime and the toggle is retried once.
func (r *engagementRepository) Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error) {
	table := kind.Table()
	db := r.db.WithContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		result := db.Table(table).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.EngagementRow{})
		if result.Error != nil {
			return false, translate(result.Error)
		}
		if result.RowsAffected > 0 {
			return false, nil
		}

		row := model.EngagementRow{UserID: userID, PostID: postID}
		err := db.Table(table).Create(&row).Error
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, translate(err)
		}

		exists, err := r.Exists(ctx, kind, userID, postID)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}

	return false, fmt.Errorf("%s toggle for user %d on post %d kept racing", kind, userID, postID)
}

func (r *engagementRepository) Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}
	if kind.TouchOnRepeat() {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": r.db.NowFunc()}),
		}
	}

	row := model.EngagementRow{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).Table(kind.Table()).Clauses(onConflict).Create(&row).Error
	return translate(err)
}

func (r *engagementRepository) Exists(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(kind.Table()).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) Count(ctx context.Context, kind entity.EngagementKind, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(kind.Table()).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *engagementRepository) CountByPosts(ctx context.Context, kind entity.EngagementKind, postIDs []uint) (map[uint]int64, error) {
	return countByPosts(r.db.WithContext(ctx), kind.Table(), postIDs)
}

type postCount struct {
	PostID uint
	Total  int64
}

func countByPosts(db *gorm.DB, table string, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []postCount
	err := db.Table(table).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}
