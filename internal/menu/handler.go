package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /home
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Home())
}

// GET /menu
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

// GET /menu/:category
func (h *Handler) Get(c *gin.Context) {
	category, ok := h.service.Category(c.Param("category"))
	if !ok && category.ID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu is empty"})
		return
	}

	c.JSON(http.StatusOK, category)
}
