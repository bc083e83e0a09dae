package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.Book)
		appointments.GET("/slots", h.Slots)
	}
}
