package main

import (
	"context"
	"flag"
	"fmt"

	"blog-backend/internal/apperr"
	"blog-backend/internal/entity"
	"blog-backend/internal/model"
	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/password"
)

type seedUser struct {
	email    string
	username string
	first    string
}

var testUsers = []seedUser{
	{"alice@test.com", "alice", "Alice"},
	{"bob@test.com", "bob", "Bob"},
	{"charlie@test.com", "charlie", "Charlie"},
}

var testPosts = []struct {
	title   string
	content string
}{
	{"Getting started with Go", "<p>Packages, modules and the <b>go</b> tool.</p>"},
	{"Notes on PostgreSQL indexes", "<p>B-tree, GIN and when to use each.</p>"},
	{"Weekend hiking", "<p>Three trails worth the drive.</p>"},
}

func main() {
	var userPassword string
	flag.StringVar(&userPassword, "password", "password123", "password for every seeded user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New(logger.WithLevel(cfg.LogLevel))
	db, err := database.NewDB(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			panic(err)
		}
	}

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, password.NewHasher(cfg.BcryptCost), jwt.NewService(cfg.JWTSecret), nil, log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, engagementRepo, commentRepo, log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, commentRepo, postRepo, log)

	ctx := context.Background()
	userIDs := make([]uint, 0, len(testUsers))
	for _, u := range testUsers {
		first := u.first
		result, err := authUseCase.Register(ctx, usecase.RegisterInput{
			Email:     u.email,
			Username:  u.username,
			Password:  userPassword,
			FirstName: &first,
		})
		if apperr.Is(err, apperr.KindConflict) {
			existing, err := authUseCase.Login(ctx, u.email, userPassword)
			if err != nil {
				log.Warn("Skipping %s: %v", u.email, err)
				continue
			}
			result = existing
		} else if err != nil {
			panic(err)
		}
		userIDs = append(userIDs, result.User.ID)
	}
	if len(userIDs) == 0 {
		log.Warn("No users available, nothing to seed")
		return
	}

	published := true
	for i, p := range testPosts {
		authorID := userIDs[i%len(userIDs)]
		post, err := postUseCase.CreatePost(ctx, authorID, usecase.CreatePostInput{
			Title:     p.title,
			Content:   p.content,
			Published: &published,
		})
		if err != nil {
			panic(err)
		}

		for _, uid := range userIDs {
			if uid == authorID {
				continue
			}
			if _, err := engagementUseCase.Toggle(ctx, entity.EngagementLike, uid, post.ID); err != nil {
				panic(err)
			}
			if _, err := engagementUseCase.Record(ctx, entity.EngagementRead, uid, post.ID); err != nil {
				panic(err)
			}
			if _, err := engagementUseCase.AddComment(ctx, uid, post.ID, "Nice write-up!"); err != nil {
				panic(err)
			}
		}
		log.Info("Seeded post %d: %s", post.ID, post.Title)
	}

	log.Info("Database seeded successfully!")
}
