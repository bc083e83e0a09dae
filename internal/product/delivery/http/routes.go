package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	products := rg.Group("/products")
	{
		products.POST("/ask", h.Ask)
	}
}
