package usecase

import (
	"context"
	"errors"
	"strings"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/sanitize"
)

type CreatePostInput struct {
	Title     string
	Content   string
	Published *bool
}

type SearchPostsInput struct {
	Query     string
	Published *bool
	Author    string
	SortBy    string
	Order     string
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uint, input CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, id, viewerID uint) (*entity.Post, error)
	ListPosts(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) (*entity.PostPage, error)
	SearchPosts(ctx context.Context, input SearchPostsInput, page entity.PageRequest) (*entity.PostPage, error)
	UpdatePost(ctx context.Context, id, callerID uint, update entity.PostUpdate) (*entity.Post, error)
	DeletePost(ctx context.Context, id, callerID uint) error
	ListUserPosts(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) (*entity.PostPage, error)
}

type postUseCase struct {
	postRepo       persistent.PostRepository
	userRepo       persistent.UserRepository
	engagementRepo persistent.EngagementRepository
	commentRepo    persistent.CommentRepository
	logger         *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	engagementRepo persistent.EngagementRepository,
	commentRepo persistent.CommentRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:       postRepo,
		userRepo:       userRepo,
		engagementRepo: engagementRepo,
		commentRepo:    commentRepo,
		logger:         logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID uint, input CreatePostInput) (*entity.Post, error) {
	title := sanitize.Text(input.Title)
	content := sanitize.Content(input.Content)
	if title == "" || content == "" {
		return nil, apperr.Validation("Invalid input", "title and content are required")
	}

	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("Author not found")
		}
		return nil, apperr.Internal("Failed to load author", err)
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, apperr.Internal("Failed to create post", err)
	}
	post.Counts = &entity.PostCounts{}

	uc.logger.Info("Post created: id=%d author=%d", post.ID, authorID)
	return post, nil
}

// GetPost returns the post with all engagement totals. viewerID 0 means
// an anonymous caller and leaves Viewer empty.
func (uc *postUseCase) GetPost(ctx context.Context, id, viewerID uint) (*entity.Post, error) {
	if id == 0 {
		return nil, apperr.Validation("Invalid post ID")
	}

	post, err := uc.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}

	posts := []entity.Post{*post}
	if err := uc.attachCounts(ctx, posts); err != nil {
		return nil, err
	}
	post = &posts[0]

	if viewerID != 0 {
		flags := &entity.ViewerFlags{}
		targets := map[entity.EngagementKind]*bool{
			entity.EngagementLike:  &flags.Liked,
			entity.EngagementSave:  &flags.Saved,
			entity.EngagementShare: &flags.Shared,
			entity.EngagementRead:  &flags.Read,
		}
		for kind, dst := range targets {
			if *dst, err = uc.engagementRepo.Exists(ctx, kind, viewerID, id); err != nil {
				return nil, apperr.Internal("Failed to load engagement status", err)
			}
		}
		if flags.Commented, err = uc.commentRepo.HasCommented(ctx, viewerID, id); err != nil {
			return nil, apperr.Internal("Failed to load comment status", err)
		}
		post.Viewer = flags
	}

	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) (*entity.PostPage, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}
	if filter.AuthorID != nil && *filter.AuthorID == 0 {
		return nil, apperr.Validation("Invalid author ID")
	}

	posts, total, err := uc.postRepo.List(ctx, filter, page)
	if err != nil {
		return nil, apperr.Internal("Failed to list posts", err)
	}
	return uc.buildPage(ctx, posts, total, page)
}

func (uc *postUseCase) SearchPosts(ctx context.Context, input SearchPostsInput, page entity.PageRequest) (*entity.PostPage, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, apperr.Validation("Search query is required")
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}

	sortBy, ok := entity.ParseSortField(input.SortBy)
	if !ok {
		return nil, apperr.Validation("Invalid sort field", "sortBy must be one of createdAt, updatedAt, title")
	}
	order, ok := entity.ParseSortOrder(input.Order)
	if !ok {
		return nil, apperr.Validation("Invalid sort order", "order must be asc or desc")
	}

	filter := entity.SearchFilter{
		Query:     query,
		Published: input.Published,
		Author:    strings.TrimSpace(input.Author),
		SortBy:    sortBy,
		Order:     order,
	}
	posts, total, err := uc.postRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, apperr.Internal("Failed to search posts", err)
	}
	return uc.buildPage(ctx, posts, total, page)
}

func (uc *postUseCase) UpdatePost(ctx context.Context, id, callerID uint, update entity.PostUpdate) (*entity.Post, error) {
	if update.Empty() {
		return nil, apperr.Validation("At least one field must be provided")
	}
	if update.Title != nil {
		title := sanitize.Text(*update.Title)
		if title == "" {
			return nil, apperr.Validation("Invalid input", "title must not be empty")
		}
		update.Title = &title
	}
	if update.Content != nil {
		content := sanitize.Content(*update.Content)
		if content == "" {
			return nil, apperr.Validation("Invalid input", "content must not be empty")
		}
		update.Content = &content
	}

	if _, err := uc.authorize(ctx, id, callerID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal("Failed to update post", err)
	}

	return uc.GetPost(ctx, id, callerID)
}

func (uc *postUseCase) DeletePost(ctx context.Context, id, callerID uint) error {
	if _, err := uc.authorize(ctx, id, callerID); err != nil {
		return err
	}

	if err := uc.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return apperr.NotFound("Post not found")
		}
		return apperr.Internal("Failed to delete post", err)
	}

	uc.logger.Info("Post deleted: id=%d by=%d", id, callerID)
	return nil
}

func (uc *postUseCase) ListUserPosts(ctx context.Context, userID uint, relation entity.UserRelation, page entity.PageRequest) (*entity.PostPage, error) {
	if userID == 0 {
		return nil, apperr.Validation("Invalid user ID")
	}
	if !relation.Valid() {
		return nil, apperr.Validation("Invalid relation")
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to load user", err)
	}

	posts, total, err := uc.postRepo.ListByRelation(ctx, userID, relation, page)
	if err != nil {
		return nil, apperr.Internal("Failed to list posts", err)
	}
	return uc.buildPage(ctx, posts, total, page)
}

// authorize loads the post and checks that callerID wrote it. A missing
// post is reported before ownership.
func (uc *postUseCase) authorize(ctx context.Context, id, callerID uint) (*entity.Post, error) {
	if id == 0 {
		return nil, apperr.Validation("Invalid post ID")
	}
	post, err := uc.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, apperr.Forbidden("You can only modify your own posts")
	}
	return post, nil
}

func (uc *postUseCase) loadPost(ctx context.Context, id uint) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal("Failed to load post", err)
	}
	return post, nil
}

func (uc *postUseCase) buildPage(ctx context.Context, posts []entity.Post, total int64, page entity.PageRequest) (*entity.PostPage, error) {
	if err := uc.attachCounts(ctx, posts); err != nil {
		return nil, err
	}
	return &entity.PostPage{
		Posts:      posts,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

func (uc *postUseCase) attachCounts(ctx context.Context, posts []entity.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		posts[i].Counts = &entity.PostCounts{}
	}

	targets := map[entity.EngagementKind]func(c *entity.PostCounts) *int64{
		entity.EngagementLike:  func(c *entity.PostCounts) *int64 { return &c.Likes },
		entity.EngagementSave:  func(c *entity.PostCounts) *int64 { return &c.Saves },
		entity.EngagementShare: func(c *entity.PostCounts) *int64 { return &c.Shares },
		entity.EngagementRead:  func(c *entity.PostCounts) *int64 { return &c.Reads },
	}
	for kind, field := range targets {
		counts, err := uc.engagementRepo.CountByPosts(ctx, kind, ids)
		if err != nil {
			return apperr.Internal("Failed to count engagements", err)
		}
		for i := range posts {
			*field(posts[i].Counts) = counts[posts[i].ID]
		}
	}

	comments, err := uc.commentRepo.CountByPosts(ctx, ids)
	if err != nil {
		return apperr.Internal("Failed to count comments", err)
	}
	for i := range posts {
		posts[i].Counts.Comments = comments[posts[i].ID]
	}
	return nil
}

func validatePage(page entity.PageRequest) error {
	if !page.Valid() {
		return apperr.Validation("Invalid pagination", "page must be >= 1 and in range, limit between 1 and 100")
	}
	return nil
}
