package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/snapvault/snapvault-backend/config"
	httpapi "github.com/snapvault/snapvault-backend/internal/api/http"
	apimw "github.com/snapvault/snapvault-backend/internal/api/http/middleware"
	"github.com/snapvault/snapvault-backend/internal/auth"
	authmw "github.com/snapvault/snapvault-backend/internal/auth/middleware"
	editshttp "github.com/snapvault/snapvault-backend/internal/edits/http"
	editsrepo "github.com/snapvault/snapvault-backend/internal/edits/repository"
	"github.com/snapvault/snapvault-backend/internal/events"
	projectshttp "github.com/snapvault/snapvault-backend/internal/projects/http"
	projectsrepo "github.com/snapvault/snapvault-backend/internal/projects/repository"
	shotshttp "github.com/snapvault/snapvault-backend/internal/screenshots/http"
	shotsrepo "github.com/snapvault/snapvault-backend/internal/screenshots/repository"
	"github.com/snapvault/snapvault-backend/internal/uploads"
	"github.com/snapvault/snapvault-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Cfg         *config.Config
	DB          *sql.DB
	AuthClient  *fbauth.Client // required when Cfg.Auth.Mode == "firebase"
	Publisher   *events.Publisher
	Presigner   *uploads.Presigner // nil keeps uploads mounted but disabled
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.Cfg.HTTP.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-Id", "X-User-Id", "X-User-Email", "X-User-Name"},
	}))
	r.Use(apimw.RequestIDMiddleware())
	r.Use(apimw.RateLimitMiddleware(dep.Cfg.HTTP.RateLimitRPS, dep.Cfg.HTTP.RateLimitBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	userRepo := users.NewRepo(dep.DB)
	projectRepo := projectsrepo.NewProjectRepository(dep.DB)
	screenshotRepo := shotsrepo.NewScreenshotRepository(dep.DB)
	editRepo := editsrepo.NewEditRepository(dep.DB)

	if dep.Cfg.Auth.Mode == "firebase" {
		api.Use(authmw.VerifyFirebaseToken(dep.AuthClient))
	}
	api.Use(auth.WithUser(userRepo))

	projectshttp.New(projectRepo).Register(api.Group("/projects"))

	screenshotsGroup := api.Group("/screenshots")
	shotshttp.New(screenshotRepo).Register(screenshotsGroup)
	editshttp.New(editRepo, dep.Publisher).Register(screenshotsGroup)

	uploads.NewHandler(dep.Presigner).Register(api.Group("/uploads"))

	return r
}
