package router

import (
	"inkwell/config"
	"inkwell/internal/handler"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	configRepo := repository.NewConfigRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	bookRepo := repository.NewBookRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	socialRepo := repository.NewSocialLinkRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo, log)
	siteSvc := service.NewSiteService(userRepo, siteRepo, blogRepo, bookRepo, socialRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, log)
	configHandler := handler.NewConfigHandler(configRepo, log)
	ratingHandler := handler.NewRatingHandler(ratingRepo, log)
	authorHandler := handler.NewAuthorHandler(siteSvc, log)
	blogHandler := handler.NewBlogHandler(blogRepo, log)
	bookHandler := handler.NewBookHandler(bookRepo, log)
	siteHandler := handler.NewSiteHandler(siteRepo, log)
	socialHandler := handler.NewSocialLinkHandler(socialRepo, log)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/register", authHandler.Register)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.PUT("/properties", authMw, authHandler.UpdateProperties)

		api.GET("/config", configHandler.Get)
		api.PUT("/config", authMw, configHandler.Update)

		api.POST("/rate", ratingHandler.Submit)
		api.GET("/ratings/:blog_id", ratingHandler.Get)

		api.GET("/author/:slug", authorHandler.GetSite)

		api.POST("/blogs", authMw, blogHandler.Create)
		api.PUT("/blogs/:id", authMw, blogHandler.Update)
		api.POST("/books", authMw, bookHandler.Create)
		api.PUT("/books/:id", authMw, bookHandler.Update)
		api.PUT("/site", authMw, siteHandler.Upsert)
		api.POST("/social-links", authMw, socialHandler.Create)
		api.PUT("/social-links/:id", authMw, socialHandler.Update)
		api.POST("/upload", authMw, uploadHandler.UploadImage)
	}

	return r
}
