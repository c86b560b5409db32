package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/internal/model"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	db, err := database.NewDB(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			// the rate limiter falls back to process memory
			log.Warn("Failed to connect to redis: %v (continuing without redis)", err)
			redisClient = nil
		}
	}

	var s3Client *s3.Client
	if cfg.S3Enabled() {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Warn("Failed to create S3 client: %v (avatar uploads disabled)", err)
			s3Client = nil
		}
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret, jwt.WithExpiry(cfg.JWTExpiresIn)),
	}, nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	opts := []logger.Option{logger.WithLevel(cfg.LogLevel)}
	if cfg.LogPath != "" {
		opts = append(opts, logger.WithFile(cfg.LogPath, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress))
	}
	return logger.New(opts...)
}

func (a *App) Run() error {
	deps := Deps{
		Config: a.cfg,
		Logger: a.log,
		DB:     a.db,
		JWT:    a.jwtService,
		Redis:  a.redisClient,
	}
	// a nil *s3.Client must not become a non-nil interface
	if a.s3Client != nil {
		deps.Avatars = a.s3Client
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Blog API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Blog API exited")
	_ = a.log.Sync()
	return shutdownErr
}

var _ usecase.AvatarStorage = (*s3.Client)(nil)
