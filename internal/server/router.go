package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and all API routes registered.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/dataset", h.GetDataset)
		api.POST("/simulate", h.Simulate)
		api.POST("/charts/portfolio", h.PortfolioChart)
		api.POST("/charts/price", h.PriceChart)
	}

	return r
}
