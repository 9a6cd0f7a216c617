package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes with permissive CORS (any origin may call
// the API, preflights answer 200) and explicit 405s for wrong methods.
func NewRouter(h *LinkHandler, health gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept"},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.GET("/health", health)

	api := router.Group("/api")
	{
		api.POST("/create", h.CreateLink)
		api.GET("/get", h.GetLink)
		api.POST("/increment", h.IncrementClicks)
		api.GET("/list", h.ListLinks)
		api.DELETE("/delete", h.DeleteLink)
	}

	return router
}
