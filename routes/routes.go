package routes

import (
	"log/slog"
	"net/http"

	"github.com/Devanshi-Mehta/FitFuel/config"
	"github.com/Devanshi-Mehta/FitFuel/controllers"
	"github.com/Devanshi-Mehta/FitFuel/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(logger), middlewares.Metrics())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", controllers.ShowForm)
	r.POST("/calculate", controllers.Calculate)
	r.POST("/api/calculate", controllers.CalculateJSON)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
