package order

import (
	"errors"
	"net/http"

	"burgerhouse/internal/middleware"
	"burgerhouse/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	msgSubmitFailed = "השליחה נכשלה. נסו שוב."
	msgServerError  = "שגיאת שרת"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /orders
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), middleware.SessionID(c), req)
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	default:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgSubmitFailed})
		return
	}

	resp := gin.H{
		"message":    "order submitted",
		"submission": sub,
	}
	if sub.Status != nil {
		resp["status_label"] = sub.Status.Label()
	}
	c.JSON(http.StatusCreated, resp)
}

// --------------------------------------------------
// GET /orders/status?phone=
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context(), c.Query("phone"))
	if err != nil {
		if errors.Is(err, ErrMissingPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"label":  status.Label(),
	})
}
