package router

import (
	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/container"
	pginfra "github.com/abdelrhman445/learn-video-vercel/internal/infrastructure/postgres"
	handlers "github.com/abdelrhman445/learn-video-vercel/internal/interface/http"
	"github.com/abdelrhman445/learn-video-vercel/internal/router/modules"
)

// InitModules constructs the repositories, services and handlers from the
// container singletons and registers every feature module.
// Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	videoRepo := pginfra.NewVideoRepository(pool)
	activityRepo := pginfra.NewActivityRepository(pool)

	recorder := application.NewRecorder(activityRepo, container.GetRabbitPub(), logger)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), recorder, logger)
	catalogSvc := application.NewCatalogService(videoRepo, recorder, container.GetYouTube(), logger, container.GetES(), cfg.ESVideosIndex)
	adminSvc := application.NewAdminService(userRepo, videoRepo, activityRepo, recorder, container.GetRedis(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	videoHandler := handlers.NewVideoHandler(catalogSvc, logger)
	adminHandler := handlers.NewAdminHandler(catalogSvc, adminSvc, logger)

	r.Add(modules.NewRootModule())
	r.Add(modules.NewAuthModule(authHandler, authSvc))
	r.Add(modules.NewVideoModule(videoHandler, authSvc))
	r.Add(modules.NewAdminModule(adminHandler, authSvc))
}
