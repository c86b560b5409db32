package persistent

import (
	"context"
	"strings"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id uint) (*entity.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, update entity.PostUpdate) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) ([]entity.Post, int64, error)
	Search(ctx context.Context, filter entity.SearchFilter, page entity.PageRequest) ([]entity.Post, int64, error)
	ListByRelation(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) ([]entity.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	m := ToPostModel(post)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return translate(err)
	}
	if err := db.Preload("Author").First(m, m.ID).Error; err != nil {
		return translate(err)
	}
	*post = *ToPostEntity(m)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	var m model.PostModel
	if err := r.db.WithContext(ctx).Preload("Author").First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) Update(ctx context.Context, id uint, update entity.PostUpdate) error {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Published != nil {
		fields["published"] = *update.Published
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.PostModel{ID: id}).Updates(fields)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete removes the post together with its engagement rows and comments.
// Dependents are deleted explicitly so the result does not rely on the
// store enforcing ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kind := range entity.EngagementKinds {
			if err := tx.Table(kind.Table()).Where("post_id = ?", id).Delete(&model.EngagementRow{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.PostModel{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepository) List(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) ([]entity.Post, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.PostModel{})
		if filter.Published != nil {
			q = q.Where("posts.published = ?", *filter.Published)
		}
		if filter.AuthorID != nil {
			q = q.Where("posts.author_id = ?", *filter.AuthorID)
		}
		return q
	}
	return r.paginate(base, newestFirst, page)
}

func (r *postRepository) Search(ctx context.Context, filter entity.SearchFilter, page entity.PageRequest) ([]entity.Post, int64, error) {
	pattern := likePattern(filter.Query)
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.PostModel{}).
			Joins("JOIN users ON users.id = posts.author_id").
			Where(
				"(LOWER(posts.title) LIKE ? ESCAPE '\\' OR LOWER(posts.content) LIKE ? ESCAPE '\\' OR "+
					"LOWER(users.username) LIKE ? ESCAPE '\\' OR LOWER(users.first_name) LIKE ? ESCAPE '\\' OR "+
					"LOWER(users.last_name) LIKE ? ESCAPE '\\')",
				pattern, pattern, pattern, pattern, pattern,
			)
		if filter.Published != nil {
			q = q.Where("posts.published = ?", *filter.Published)
		}
		if author := strings.TrimSpace(filter.Author); author != "" {
			q = q.Where("LOWER(users.username) LIKE ? ESCAPE '\\'", likePattern(author))
		}
		return q
	}

	order := clause.OrderByColumn{
		Column: clause.Column{Name: filter.SortBy.Column(), Raw: true},
		Desc:   filter.Order.Desc(),
	}
	return r.paginate(base, order, page)
}

func (r *postRepository) ListByRelation(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) ([]entity.Post, int64, error) {
	base := func() *gorm.DB {
		sub := r.db.WithContext(ctx).Table(relation.Table()).Select("post_id").Where("user_id = ?", userID)
		return r.db.WithContext(ctx).Model(&model.PostModel{}).Where("posts.id IN (?)", sub)
	}
	return r.paginate(base, newestFirst, page)
}

var newestFirst = clause.OrderByColumn{Column: clause.Column{Name: "posts.created_at", Raw: true}, Desc: true}

// paginate runs base twice, once to count and once to fetch the page, so
// the two queries never share builder state.
func (r *postRepository) paginate(base func() *gorm.DB, order clause.OrderByColumn, page entity.PageRequest) ([]entity.Post, int64, error) {
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entity.Post{}, 0, nil
	}

	var models []model.PostModel
	err := base().
		Preload("Author").
		Order(order).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "posts.id", Raw: true}, Desc: order.Desc}).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return toPostEntities(models), total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}
