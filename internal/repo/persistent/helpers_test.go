package persistent

import (
	"context"
	"fmt"
	"testing"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"
	"blog-backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", "error", nil)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, title string) *entity.Post {
	t.Helper()

	post := &entity.Post{Title: title, Content: fmt.Sprintf("content of %s", title), AuthorID: authorID}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))
	return post
}
