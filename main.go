package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	config "github.com/phillip/pet-adopt-nest-go/config"
	routes "github.com/phillip/pet-adopt-nest-go/routes"
	utils "github.com/phillip/pet-adopt-nest-go/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("no .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Log.WithError(err).Fatal("could not load configuration")
	}
	utils.InitLogger(cfg.LogLevel)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "pet adopt nest is running")
	})

	routes.SetupRoutes(r, cfg)

	utils.Log.Infof("pet adopt nest is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Log.WithError(err).Fatal("server stopped")
	}
}
