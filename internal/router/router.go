package router

import (
	"net/http"
	"time"

	"burgerhouse/internal/menu"
	"burgerhouse/internal/metrics"
	"burgerhouse/internal/middleware"
	"burgerhouse/internal/order"
	"burgerhouse/internal/session"
	"burgerhouse/internal/storefront"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the services the API exposes.
type Deps struct {
	Logger      *zap.Logger
	Metrics     *metrics.ServerMetrics
	CORSOrigins []string

	Sessions   *session.Service
	Menu       *menu.Service
	Storefront *storefront.Service
	Orders     *order.Service
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(d.Logger),
		d.Metrics.Middleware(),
		cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ───────────────────────── PUBLIC ─────────────────────────
	menuHandler := menu.NewHandler(d.Menu)
	sessionHandler := session.NewHandler(d.Sessions)
	orderHandler := order.NewHandler(d.Orders)

	r.GET("/home", menuHandler.Home)
	r.GET("/menu", menuHandler.List)
	r.GET("/menu/:category", menuHandler.Get)

	r.POST("/sessions", sessionHandler.Start)
	r.GET("/orders/status", orderHandler.Status)

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	shop := storefront.NewHandler(d.Storefront)

	authed := r.Group("")
	authed.Use(middleware.RequireSession(d.Sessions.Tokens()))
	{
		authed.GET("/cart", shop.GetCart)
		authed.POST("/cart/items", shop.AddItem)
		authed.DELETE("/cart/items/:index", shop.RemoveItem)
		authed.DELETE("/cart", shop.ClearCart)

		burger := authed.Group("/builder/burger")
		burger.POST("", shop.OpenBurger)
		burger.GET("", shop.GetBurger)
		burger.DELETE("", shop.CancelBurger)
		burger.PUT("/options/:id", shop.ToggleOption)
		burger.POST("/quantities/:id", shop.ChangeQuantity)
		burger.POST("/confirm", shop.ConfirmBurger)

		authed.POST("/orders", orderHandler.Submit)
	}

	return r
}
