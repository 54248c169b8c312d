package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/cache"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/config"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/db"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/logger"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	log := logger.Get()
	defer log.Sync()

	database := db.NewDB(cfg)
	availabilityCache := cache.New(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	routes.RegisterRoutes(r, database, cfg, availabilityCache)

	log.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.AppEnv),
		zap.Bool("availability_cache", availabilityCache.Enabled()))

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
