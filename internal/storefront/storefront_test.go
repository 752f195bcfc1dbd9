package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burgerhouse/internal/builder"
	"burgerhouse/internal/menu"
	"burgerhouse/internal/middleware"
	"burgerhouse/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	sources []string
}

func (f *fakeRecorder) CartItemAdded(source string) {
	f.sources = append(f.sources, source)
}

func newTestService(t *testing.T) (*Service, *fakeRecorder, string) {
	t.Helper()
	sessions := session.NewService(session.NewInMemoryRepository(), session.NewTokens("test-secret", time.Hour))
	rec := &fakeRecorder{}
	svc := NewService(sessions, menu.NewService(menu.Catalog, nil), rec)

	sess, _, err := sessions.Start(context.Background())
	require.NoError(t, err)
	return svc, rec, sess.ID
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func TestAddItem_DrinkAndSide(t *testing.T) {
	svc, rec, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, id, "d2")
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, id, "mix-meal")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "קולה", view.Items[0].Item)
	assert.Equal(t, builder.MixMeal.Name, view.Items[1].Item)
	assert.Equal(t, "28.00", view.Items[1].Price)
	assert.Equal(t, "38.00", view.Total)
	assert.Equal(t, []string{"menu", "side"}, rec.sources)
}

func TestAddItem_Rejections(t *testing.T) {
	svc, rec, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, id, "m-burger")
	assert.ErrorIs(t, err, ErrNeedsBuilder)

	_, err = svc.AddItem(ctx, id, "nope")
	assert.ErrorIs(t, err, ErrUnknownItem)

	view, err := svc.Cart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, "0.00", view.Total)
	assert.Empty(t, rec.sources)
}

func TestRemoveItem(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	for _, key := range []string{"d1", "d2", "d3"} {
		_, err := svc.AddItem(ctx, id, key)
		require.NoError(t, err)
	}

	view, err := svc.RemoveItem(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "מים מינרליים", view.Items[0].Item)
	assert.Equal(t, "מיץ תפוזים", view.Items[1].Item)
	assert.Equal(t, 1, view.Items[1].Index)
	assert.Equal(t, "19.00", view.Total)

	for _, bad := range []int{-1, 2, 10} {
		_, err := svc.RemoveItem(ctx, id, bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	view, err = svc.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)
}

// --------------------------------------------------
// Builder
// --------------------------------------------------

func TestBurgerFlow(t *testing.T) {
	svc, rec, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.Burger(ctx, id)
	assert.ErrorIs(t, err, ErrBuilderClosed)

	view, err := svc.OpenBurger(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "65.00", view.Price)
	assert.Equal(t, "בורגר (1× קציצה)", view.Title)

	view, err = svc.ChangeQuantity(ctx, id, "patty", 1)
	require.NoError(t, err)
	assert.Equal(t, "77.00", view.Price)

	view, err = svc.ToggleOption(ctx, id, "cheese", true)
	require.NoError(t, err)
	assert.Equal(t, "84.00", view.Price)
	assert.Equal(t, "בורגר (2× קציצה, גבינה)", view.Title)

	cartView, err := svc.ConfirmBurger(ctx, id)
	require.NoError(t, err)
	require.Len(t, cartView.Items, 1)
	assert.Equal(t, "בורגר (2× קציצה, גבינה)", cartView.Items[0].Item)
	assert.Equal(t, "84.00", cartView.Total)
	assert.Equal(t, []string{"burger"}, rec.sources)

	_, err = svc.Burger(ctx, id)
	assert.ErrorIs(t, err, ErrBuilderClosed)
}

func TestBurger_PattyFloor(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.OpenBurger(ctx, id)
	require.NoError(t, err)

	view, err := svc.ChangeQuantity(ctx, id, "patty", -1)
	require.NoError(t, err)
	assert.Equal(t, "65.00", view.Price)
	for _, o := range view.Options {
		if o.ID == "patty" {
			assert.Equal(t, 1, o.Quantity)
		}
	}
}

func TestBurger_InvalidInput(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleOption(ctx, id, "cheese", true)
	assert.ErrorIs(t, err, ErrBuilderClosed)

	_, err = svc.OpenBurger(ctx, id)
	require.NoError(t, err)

	for _, opt := range []string{"patty", "bun-bottom", "bacon"} {
		_, err := svc.ToggleOption(ctx, id, opt, true)
		assert.ErrorIs(t, err, ErrUnknownOption, opt)
	}

	_, err = svc.ChangeQuantity(ctx, id, "cheese", 1)
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = svc.ChangeQuantity(ctx, id, "patty", 3)
	assert.ErrorIs(t, err, ErrInvalidDelta)

	view, err := svc.Burger(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "65.00", view.Price)
}

func TestCancelBurger(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	_, err := svc.OpenBurger(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.CancelBurger(ctx, id))

	_, err = svc.Burger(ctx, id)
	assert.ErrorIs(t, err, ErrBuilderClosed)

	view, err := svc.Cart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

// --------------------------------------------------
// Handlers
// --------------------------------------------------

func setupStorefrontTestRouter(svc *Service, sessionID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(svc)
	g := r.Group("/", func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, sessionID)
		c.Next()
	})

	g.GET("/cart", h.GetCart)
	g.POST("/cart/items", h.AddItem)
	g.DELETE("/cart/items/:index", h.RemoveItem)
	g.DELETE("/cart", h.ClearCart)

	g.POST("/builder/burger", h.OpenBurger)
	g.GET("/builder/burger", h.GetBurger)
	g.PUT("/builder/burger/options/:id", h.ToggleOption)
	g.POST("/builder/burger/quantities/:id", h.ChangeQuantity)
	g.POST("/builder/burger/confirm", h.ConfirmBurger)
	g.DELETE("/builder/burger", h.CancelBurger)

	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartHandlers(t *testing.T) {
	svc, _, id := newTestService(t)
	r := setupStorefrontTestRouter(svc, id)

	w := do(r, http.MethodPost, "/cart/items", `{"key":"d4"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/cart/items", `{"key":"m-burger"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/cart/items", `{"key":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var view CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "14.00", view.Total)

	w = do(r, http.MethodDelete, "/cart/items/3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/cart/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/cart/items/0", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuilderHandlers(t *testing.T) {
	svc, _, id := newTestService(t)
	r := setupStorefrontTestRouter(svc, id)

	w := do(r, http.MethodGet, "/builder/burger", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/builder/burger", "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/builder/burger/quantities/patty", `{"delta":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/builder/burger/options/cheese", `{"included":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view builder.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "84.00", view.Price)

	w = do(r, http.MethodPut, "/builder/burger/options/patty", `{"included":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/builder/burger/options/cheese", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/builder/burger/quantities/patty", `{"delta":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/builder/burger/confirm", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var cartView CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartView))
	assert.Equal(t, "84.00", cartView.Total)

	w = do(r, http.MethodPost, "/builder/burger", "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(r, http.MethodDelete, "/builder/burger", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandlers_UnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := setupStorefrontTestRouter(svc, "missing")

	w := do(r, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/builder/burger", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBurgerView_ResolvesAssets(t *testing.T) {
	sessions := session.NewService(session.NewInMemoryRepository(), session.NewTokens("test-secret", time.Hour))
	resolve := func(p string) string { return "https://cdn.example" + p }
	svc := NewService(sessions, menu.NewService(menu.Catalog, resolve), &fakeRecorder{})

	sess, _, err := sessions.Start(context.Background())
	require.NoError(t, err)

	view, err := svc.OpenBurger(context.Background(), sess.ID)
	require.NoError(t, err)

	require.Len(t, view.Preload, len(builder.Burger.Options))
	assert.Equal(t, "https://cdn.example/burger/bun-bottom.png", view.Preload[0])
	assert.Equal(t, "https://cdn.example/burger/bun-bottom.png", view.Options[0].Image)
}
