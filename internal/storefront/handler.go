package storefront

import (
	"errors"
	"net/http"
	"strconv"

	"burgerhouse/internal/middleware"
	"burgerhouse/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addItemRequest struct {
	Key string `json:"key" binding:"required"`
}

type toggleRequest struct {
	Included *bool `json:"included" binding:"required"`
}

type quantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, ErrUnknownItem), errors.Is(err, ErrBuilderClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNeedsBuilder):
		c.JSON(http.StatusConflict, gin.H{"error": "use builder"})
	case errors.Is(err, ErrUnknownOption),
		errors.Is(err, ErrInvalidDelta),
		errors.Is(err, ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.service.Cart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), middleware.SessionID(c), req.Key)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// --------------------------------------------------
// DELETE /cart/items/:index
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	view, err := h.service.RemoveItem(c.Request.Context(), middleware.SessionID(c), index)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	view, err := h.service.ClearCart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /builder/burger
// --------------------------------------------------
func (h *Handler) OpenBurger(c *gin.Context) {
	view, err := h.service.OpenBurger(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /builder/burger
func (h *Handler) GetBurger(c *gin.Context) {
	view, err := h.service.Burger(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /builder/burger/options/:id
func (h *Handler) ToggleOption(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "included is required"})
		return
	}

	view, err := h.service.ToggleOption(
		c.Request.Context(),
		middleware.SessionID(c),
		c.Param("id"),
		*req.Included,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /builder/burger/quantities/:id
func (h *Handler) ChangeQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	view, err := h.service.ChangeQuantity(
		c.Request.Context(),
		middleware.SessionID(c),
		c.Param("id"),
		req.Delta,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /builder/burger/confirm
func (h *Handler) ConfirmBurger(c *gin.Context) {
	view, err := h.service.ConfirmBurger(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// DELETE /builder/burger
func (h *Handler) CancelBurger(c *gin.Context) {
	if err := h.service.CancelBurger(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
