package persistent

import (
	"context"
	"fmt"
	"testing"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	post := &entity.Post{Title: "Hello", Content: "World", AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, post))

	assert.NotZero(t, post.ID)
	assert.False(t, post.Published)
	require.NotNil(t, post.Author)
	assert.Equal(t, "alice", post.Author.Username)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, author.ID, got.AuthorID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	exists, err := repo.Exists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostRepository_CreateWithUnknownAuthor(t *testing.T) {
	db := setupTestDB(t)

	err := NewPostRepository(db).Create(context.Background(), &entity.Post{Title: "t", Content: "c", AuthorID: 42})
	assert.Error(t, err)
}

func TestPostRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	post := createPost(t, db, author.ID, "Draft")

	title := "Final"
	published := true
	require.NoError(t, repo.Update(ctx, post.ID, entity.PostUpdate{Title: &title, Published: &published}))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "content of Draft", got.Content)
	assert.True(t, got.Published)

	err = repo.Update(ctx, 999, entity.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPostRepository_DeleteRemovesDependents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	engagements := NewEngagementRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	reader := createUser(t, db, "bob")
	post := createPost(t, db, author.ID, "Hello")
	other := createPost(t, db, author.ID, "Other")

	for _, kind := range entity.EngagementKinds {
		require.NoError(t, engagements.Record(ctx, kind, reader.ID, post.ID))
		require.NoError(t, engagements.Record(ctx, kind, reader.ID, other.ID))
	}
	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: post.ID, UserID: reader.ID, Content: "nice"}))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	for _, kind := range entity.EngagementKinds {
		n, err := engagements.Count(ctx, kind, post.ID)
		require.NoError(t, err)
		assert.Zero(t, n, kind)

		n, err = engagements.Count(ctx, kind, other.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n, kind)
	}
	commentCounts, err := comments.CountByPosts(ctx, []uint{post.ID})
	require.NoError(t, err)
	assert.Zero(t, commentCounts[post.ID])

	assert.ErrorIs(t, repo.Delete(ctx, post.ID), ErrRecordNotFound)
}

func TestPostRepository_UserDeletionKeepsAuthoredPosts(t *testing.T) {
	db := setupTestDB(t)
	engagements := NewEngagementRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	reader := createUser(t, db, "bob")
	post := createPost(t, db, author.ID, "Hello")

	_, err := engagements.Toggle(ctx, entity.EngagementLike, reader.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.UserModel{}, reader.ID).Error)

	n, err := engagements.Count(ctx, entity.EngagementLike, post.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Error(t, db.Delete(&model.UserModel{}, author.ID).Error)
	_, err = NewPostRepository(db).GetByID(ctx, post.ID)
	assert.NoError(t, err)
}

func TestPostRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	for i := 1; i <= 25; i++ {
		createPost(t, db, author.ID, fmt.Sprintf("Post %02d", i))
	}

	posts, total, err := repo.List(ctx, entity.PostFilter{}, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, posts, 10)
	assert.Equal(t, "Post 25", posts[0].Title)
	require.NotNil(t, posts[0].Author)

	posts, _, err = repo.List(ctx, entity.PostFilter{}, entity.PageRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, "Post 01", posts[4].Title)

	posts, total, err = repo.List(ctx, entity.PostFilter{}, entity.PageRequest{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Empty(t, posts)
}

func TestPostRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createPost(t, db, alice.ID, "a1")
	published := createPost(t, db, alice.ID, "a2")
	createPost(t, db, bob.ID, "b1")

	yes := true
	require.NoError(t, repo.Update(ctx, published.ID, entity.PostUpdate{Published: &yes}))

	posts, total, err := repo.List(ctx, entity.PostFilter{AuthorID: &alice.ID}, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, posts, 2)

	posts, total, err = repo.List(ctx, entity.PostFilter{Published: &yes}, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "a2", posts[0].Title)

	no := false
	_, total, err = repo.List(ctx, entity.PostFilter{Published: &no, AuthorID: &bob.ID}, entity.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestPostRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := "Grace"
	alice := createUser(t, db, "alice")
	grace := &entity.User{Email: "g@x.com", Username: "ghopper", PasswordHash: "h", FirstName: &first}
	require.NoError(t, NewUserRepository(db).Create(ctx, grace))

	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "Go Concurrency", Content: "channels", AuthorID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "Cooking", Content: "Pasta with GO-juice", AuthorID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "Compilers", Content: "COBOL", AuthorID: grace.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "100% done", Content: "x", AuthorID: grace.ID}))

	page := entity.PageRequest{Page: 1, Limit: 10}
	search := func(f entity.SearchFilter) []entity.Post {
		if f.SortBy == "" {
			f.SortBy = entity.SortCreatedAt
		}
		if f.Order == "" {
			f.Order = entity.OrderDesc
		}
		posts, total, err := repo.Search(ctx, f, page)
		require.NoError(t, err)
		assert.EqualValues(t, len(posts), total)
		return posts
	}

	assert.Len(t, search(entity.SearchFilter{Query: "go"}), 2)
	assert.Len(t, search(entity.SearchFilter{Query: "GRACE"}), 2)
	assert.Len(t, search(entity.SearchFilter{Query: "hopper"}), 2)
	assert.Len(t, search(entity.SearchFilter{Query: "nothing-matches"}), 0)
	assert.Len(t, search(entity.SearchFilter{Query: "o", Author: "ALI"}), 2)

	percent := search(entity.SearchFilter{Query: "100%"})
	require.Len(t, percent, 1)
	assert.Equal(t, "100% done", percent[0].Title)

	byTitle := search(entity.SearchFilter{Query: "o", SortBy: entity.SortTitle, Order: entity.OrderAsc})
	require.Len(t, byTitle, 4)
	assert.Equal(t, "100% done", byTitle[0].Title)
	assert.Equal(t, "Go Concurrency", byTitle[3].Title)
}

func TestPostRepository_ListByRelation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	engagements := NewEngagementRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")
	reader := createUser(t, db, "bob")
	p1 := createPost(t, db, author.ID, "p1")
	p2 := createPost(t, db, author.ID, "p2")
	createPost(t, db, author.ID, "p3")

	_, err := engagements.Toggle(ctx, entity.EngagementLike, reader.ID, p1.ID)
	require.NoError(t, err)
	_, err = engagements.Toggle(ctx, entity.EngagementLike, reader.ID, p2.ID)
	require.NoError(t, err)
	require.NoError(t, engagements.Record(ctx, entity.EngagementRead, reader.ID, p2.ID))
	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: p1.ID, UserID: reader.ID, Content: "one"}))
	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: p1.ID, UserID: reader.ID, Content: "two"}))

	page := entity.PageRequest{Page: 1, Limit: 10}

	liked, total, err := repo.ListByRelation(ctx, reader.ID, entity.RelationLiked, page)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, liked, 2)
	assert.Equal(t, "p2", liked[0].Title)

	read, total, err := repo.ListByRelation(ctx, reader.ID, entity.RelationRead, page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, p2.ID, read[0].ID)

	commented, total, err := repo.ListByRelation(ctx, reader.ID, entity.RelationCommented, page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, p1.ID, commented[0].ID)

	saved, total, err := repo.ListByRelation(ctx, reader.ID, entity.RelationSaved, page)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, saved)
}
