package app

import (
	"net/http"
	"time"

	httpctl "blog-backend/internal/controller/http"
	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/config"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/middleware"
	"blog-backend/pkg/password"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Deps is everything the router needs. Redis and Avatars may be nil.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      *gorm.DB
	JWT     *jwt.Service
	Redis   *redis.Client
	Avatars usecase.AvatarStorage
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config

	userRepo := persistent.NewUserRepository(deps.DB)
	postRepo := persistent.NewPostRepository(deps.DB)
	engagementRepo := persistent.NewEngagementRepository(deps.DB)
	commentRepo := persistent.NewCommentRepository(deps.DB)

	authUseCase := usecase.NewAuthUseCase(userRepo, password.NewHasher(cfg.BcryptCost), deps.JWT, deps.Avatars, deps.Logger)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, engagementRepo, commentRepo, deps.Logger)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, commentRepo, postRepo, deps.Logger)

	respond := httpctl.NewResponder(deps.Logger, cfg.IsProduction())
	authHandler := httpctl.NewAuthHandler(authUseCase, respond)
	postHandler := httpctl.NewPostHandler(postUseCase, respond)
	engagementHandler := httpctl.NewEngagementHandler(engagementUseCase, respond)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger.Zap()),
		middleware.Recovery(deps.Logger.Zap()),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.AuthMiddleware(deps.JWT)
	optionalAuth := middleware.OptionalAuthMiddleware(deps.JWT)
	postLimit := middleware.RateLimitMiddleware(postLimiter(deps), "create_post")

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", requireAuth, authHandler.GetProfile)
			auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
			auth.POST("/avatar", requireAuth, authHandler.UploadAvatar)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.GET("/search", postHandler.SearchPosts)
			posts.GET("/:id", optionalAuth, postHandler.GetPost)
			posts.POST("", requireAuth, postLimit, postHandler.CreatePost)
			posts.PUT("/:id", requireAuth, postHandler.UpdatePost)
			posts.DELETE("/:id", requireAuth, postHandler.DeletePost)

			posts.POST("/like", requireAuth, engagementHandler.LikePost)
			posts.POST("/save", requireAuth, engagementHandler.SavePost)
			posts.POST("/share", requireAuth, engagementHandler.SharePost)
			posts.POST("/read", requireAuth, engagementHandler.ReadPost)
			posts.POST("/comment", requireAuth, engagementHandler.AddComment)

			posts.GET("/:id/like-status", optionalAuth, engagementHandler.GetLikeStatus)
			posts.GET("/:id/save-status", optionalAuth, engagementHandler.GetSaveStatus)
			posts.GET("/:id/share-status", optionalAuth, engagementHandler.GetShareStatus)
			posts.GET("/:id/read", optionalAuth, engagementHandler.GetReadStatus)
			posts.GET("/:id/comments", optionalAuth, engagementHandler.GetComments)
		}

		users := api.Group("/users/:userId", requireAuth)
		{
			users.GET("/liked-posts", postHandler.GetLikedPosts)
			users.GET("/saved-posts", postHandler.GetSavedPosts)
			users.GET("/shared-posts", postHandler.GetSharedPosts)
			users.GET("/commented-posts", postHandler.GetCommentedPosts)
			users.GET("/read-posts", postHandler.GetReadPosts)
		}
	}

	return r
}

// postLimiter shares the post quota across instances through Redis when
// it is configured and falls back to an in-process limiter otherwise.
func postLimiter(deps Deps) middleware.Limiter {
	perMinute := deps.Config.PostRateLimitPerMinute
	if deps.Redis != nil {
		return middleware.NewRedisLimiter(deps.Redis, perMinute, time.Minute)
	}
	return middleware.NewMemoryLimiter(perMinute, time.Minute)
}
