package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/snapvault/snapvault-backend/config"
	"github.com/snapvault/snapvault-backend/internal/auth"
	"github.com/snapvault/snapvault-backend/internal/bootstrap"
	"github.com/snapvault/snapvault-backend/internal/events"
	"github.com/snapvault/snapvault-backend/internal/storage/postgres"
	"github.com/snapvault/snapvault-backend/internal/uploads"
)

const serviceName = "snapvault-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	var authClient *fbauth.Client
	if cfg.Auth.Mode == "firebase" {
		authClient, err = auth.InitializeFirebase(&cfg.Auth)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	}

	redisClient := events.NewClient(&cfg.Redis)
	if redisClient == nil {
		log.Println("REDIS_ADDR not set, edit events disabled")
	}
	publisher := events.NewPublisher(redisClient)

	var presigner *uploads.Presigner
	if cfg.Uploads.Bucket != "" {
		presigner, err = uploads.NewPresigner(context.Background(), &cfg.Uploads)
		if err != nil {
			log.Fatalf("uploads: %v", err)
		}
	} else {
		log.Println("UPLOADS_BUCKET not set, presigned uploads disabled")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Cfg:         cfg,
		DB:          db,
		AuthClient:  authClient,
		Publisher:   publisher,
		Presigner:   presigner,
	})

	log.Printf("%s v%s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
