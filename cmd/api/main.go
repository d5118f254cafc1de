package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"asset-hub-api-server/config"
	"asset-hub-api-server/internal/api/routes"
	"asset-hub-api-server/internal/auth"
	"asset-hub-api-server/internal/database"
	"asset-hub-api-server/internal/s3"
	"asset-hub-api-server/internal/socket"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load config")
	}

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT secret is required (set JWT_SECRET)")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	jwtExpiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		jwtExpiration = auth.DefaultExpiration
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Storage handle: created once, passed down, closed on shutdown.
	client, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer database.Disconnect(client)
	log.Info().Msg("Connected to MongoDB")

	db := client.Database(cfg.Mongo.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}
	if err := database.SeedPackages(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed packages")
	}

	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure S3 uploader")
		}
	} else {
		log.Warn().Msg("S3 not configured; logo uploads disabled")
	}

	wsHub := socket.NewHub()

	router := routes.SetupRouter(db, uploader, wsHub, jwtExpiration)

	log.Info().Str("port", cfg.Server.Port).Msg("Starting API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to run server")
	}
}
