package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timmy/memeshare/internal/api/handler"
	"github.com/timmy/memeshare/internal/api/middleware"
	"github.com/timmy/memeshare/internal/config"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/service"
)

// Services bundles the services exposed over HTTP.
type Services struct {
	Templates    *service.TemplateService
	Explore      *service.ExploreService
	Uploads      *service.UploadService
	Interactions *service.InteractionService
	Leaderboard  *service.LeaderboardService
	Profiles     *service.ProfileService
	Captions     *service.CaptionService
	ImageHost    string
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(svc *Services, cfg *config.Config, log *logger.Logger) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler(cfg.Store.Driver, svc.ImageHost)
	templateHandler := handler.NewTemplateHandler(svc.Templates)
	memeHandler := handler.NewMemeHandler(svc.Explore, svc.Uploads, cfg.Server.MaxUploadMB)
	interactionHandler := handler.NewInteractionHandler(svc.Interactions)
	leaderboardHandler := handler.NewLeaderboardHandler(svc.Leaderboard)
	profileHandler := handler.NewProfileHandler(svc.Profiles)
	captionHandler := handler.NewCaptionHandler(svc.Captions)

	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	{
		// Templates
		v1.GET("/templates", templateHandler.ListTemplates)
		v1.GET("/templates/:id", templateHandler.GetTemplate)

		// Uploaded memes
		v1.GET("/memes", memeHandler.ListMemes)
		v1.POST("/memes", memeHandler.UploadMeme)
		v1.GET("/memes/:id", memeHandler.GetMeme)

		// Interactions
		v1.GET("/memes/:id/interactions", interactionHandler.GetInteractions)
		v1.POST("/memes/:id/like", interactionHandler.Like)
		v1.POST("/memes/:id/comments", interactionHandler.AddComment)

		v1.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		// Profile
		v1.GET("/profile", profileHandler.GetProfile)
		v1.PUT("/profile", profileHandler.UpdateProfile)

		v1.POST("/captions", captionHandler.GenerateCaption)
	}

	return r
}
