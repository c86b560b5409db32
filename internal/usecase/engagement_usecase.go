package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/sanitize"
)

type EngagementUseCase interface {
	// Toggle flips like or save for (userID, postID).
	Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error)
	// Record marks share or read once; repeats keep the state active.
	Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error)
	// Status never mutates. userID 0 reports active=false.
	Status(ctx context.Context, kind entity.EngagementKind, postID, userID uint) (*entity.EngagementResult, error)
	AddComment(ctx context.Context, userID, postID uint, content string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID, userID uint) (*entity.CommentList, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	commentRepo    persistent.CommentRepository
	postRepo       persistent.PostRepository
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		commentRepo:    commentRepo,
		postRepo:       postRepo,
		logger:         logger,
	}
}

func (uc *engagementUseCase) Toggle(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error) {
	if !kind.Valid() || kind.Mode() != entity.ModeToggle {
		return nil, apperr.Internal("Unsupported engagement", fmt.Errorf("%q cannot be toggled", kind))
	}
	if err := validateIDs(userID, postID); err != nil {
		return nil, err
	}
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	active, err := uc.engagementRepo.Toggle(ctx, kind, userID, postID)
	if errors.Is(err, persistent.ErrRecordNotFound) {
		return nil, apperr.NotFound("Post not found")
	}
	if err != nil {
		uc.logger.Error("Failed to toggle %s: user=%d post=%d: %v", kind, userID, postID, err)
		return nil, apperr.Internal(fmt.Sprintf("Failed to %s post", kind), err)
	}

	return uc.result(ctx, kind, postID, active)
}

func (uc *engagementUseCase) Record(ctx context.Context, kind entity.EngagementKind, userID, postID uint) (*entity.EngagementResult, error) {
	if !kind.Valid() || kind.Mode() != entity.ModeRecord {
		return nil, apperr.Internal("Unsupported engagement", fmt.Errorf("%q cannot be recorded", kind))
	}
	if err := validateIDs(userID, postID); err != nil {
		return nil, err
	}
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	err := uc.engagementRepo.Record(ctx, kind, userID, postID)
	if errors.Is(err, persistent.ErrRecordNotFound) {
		return nil, apperr.NotFound("Post not found")
	}
	if err != nil {
		uc.logger.Error("Failed to record %s: user=%d post=%d: %v", kind, userID, postID, err)
		return nil, apperr.Internal(fmt.Sprintf("Failed to %s post", kind), err)
	}

	return uc.result(ctx, kind, postID, true)
}

func (uc *engagementUseCase) Status(ctx context.Context, kind entity.EngagementKind, postID, userID uint) (*entity.EngagementResult, error) {
	if !kind.Valid() {
		return nil, apperr.Internal("Unsupported engagement", fmt.Errorf("unknown kind %q", kind))
	}
	if postID == 0 {
		return nil, apperr.Validation("Invalid post ID")
	}
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	active := false
	if userID != 0 {
		var err error
		if active, err = uc.engagementRepo.Exists(ctx, kind, userID, postID); err != nil {
			return nil, apperr.Internal("Failed to load engagement status", err)
		}
	}

	return uc.result(ctx, kind, postID, active)
}

func (uc *engagementUseCase) AddComment(ctx context.Context, userID, postID uint, content string) (*entity.Comment, error) {
	if err := validateIDs(userID, postID); err != nil {
		return nil, err
	}

	content = sanitize.Content(content)
	if content == "" {
		return nil, apperr.Validation("Comment content is required")
	}
	if utf8.RuneCountInString(content) > entity.MaxCommentLength {
		return nil, apperr.Validation("Comment is too long", fmt.Sprintf("content must be at most %d characters", entity.MaxCommentLength))
	}

	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{PostID: postID, UserID: userID, Content: content}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, persistent.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal("Failed to add comment", err)
	}
	return comment, nil
}

func (uc *engagementUseCase) ListComments(ctx context.Context, postID, userID uint) (*entity.CommentList, error) {
	if postID == 0 {
		return nil, apperr.Validation("Invalid post ID")
	}
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperr.Internal("Failed to list comments", err)
	}

	list := &entity.CommentList{Comments: comments, TotalCount: int64(len(comments))}
	if userID != 0 {
		for _, c := range comments {
			if c.UserID == userID {
				list.Commented = true
				break
			}
		}
	}
	return list, nil
}

func (uc *engagementUseCase) ensurePost(ctx context.Context, postID uint) error {
	exists, err := uc.postRepo.Exists(ctx, postID)
	if err != nil {
		return apperr.Internal("Failed to load post", err)
	}
	if !exists {
		return apperr.NotFound("Post not found")
	}
	return nil
}

func (uc *engagementUseCase) result(ctx context.Context, kind entity.EngagementKind, postID uint, active bool) (*entity.EngagementResult, error) {
	total, err := uc.engagementRepo.Count(ctx, kind, postID)
	if err != nil {
		return nil, apperr.Internal("Failed to count engagements", err)
	}
	return &entity.EngagementResult{Active: active, TotalCount: total}, nil
}

func validateIDs(userID, postID uint) error {
	if postID == 0 {
		return apperr.Validation("Invalid post ID")
	}
	if userID == 0 {
		return apperr.Validation("Invalid user ID")
	}
	return nil
}
