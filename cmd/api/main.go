package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/nareguabarber/naregua-api/internal/config"
	dbpkg "github.com/nareguabarber/naregua-api/internal/db"
	"github.com/nareguabarber/naregua-api/internal/logger"
	"github.com/nareguabarber/naregua-api/internal/middleware"
	"github.com/nareguabarber/naregua-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	dbpkg.Seed(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, db, cfg, log, redisClient)
	defer dispatcher.Close()

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
