package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"burgerhouse/internal/events"
	"burgerhouse/internal/menu"
	"burgerhouse/internal/metrics"
	"burgerhouse/internal/order"
	"burgerhouse/internal/session"
	"burgerhouse/internal/storefront"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeOrderService stands in for the remote order backend.
func fakeOrderService(t *testing.T, got *[]map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/submit-order", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		*got = append(*got, body)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/order-status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"found": true, "status": "pending"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, orderURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := metrics.NewServerMetrics()
	sessions := session.NewService(session.NewInMemoryRepository(), session.NewTokens("test-secret", time.Hour))
	menuService := menu.NewService(menu.Catalog, nil)

	return NewRouter(Deps{
		Logger:      zap.NewNop(),
		Metrics:     m,
		CORSOrigins: []string{"http://localhost:3000"},
		Sessions:    sessions,
		Menu:        menuService,
		Storefront:  storefront.NewService(sessions, menuService, m),
		Orders: order.NewService(
			sessions,
			order.NewRemoteClient(orderURL, 2*time.Second),
			events.NopPublisher{},
			m,
			zap.NewNop(),
		),
	})
}

func call(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	w := call(r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCartRequiresSession(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	w := call(r, http.MethodGet, "/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(r, http.MethodGet, "/cart", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuRoutes(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:0")

	w := call(r, http.MethodGet, "/menu/drinks", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "קולה")

	w = call(r, http.MethodGet, "/menu/unknown", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"meals"`)

	w = call(r, http.MethodGet, "/home", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuPricesAreNumbers(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	r := newTestRouter(t, "http://127.0.0.1:0")

	w := call(r, http.MethodGet, "/menu/drinks", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var category struct {
		Items []struct {
			Key   string      `json:"key"`
			Price json.Number `json:"price"`
		} `json:"items"`
	}
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&category))
	require.NotEmpty(t, category.Items)
	assert.Equal(t, "d1", category.Items[0].Key)
	assert.Equal(t, json.Number("7"), category.Items[0].Price)

	token := startSession(t, r)
	w = call(r, http.MethodPost, "/builder/burger", token, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"unit_price":12`)
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := call(r, http.MethodPost, "/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.NotEmpty(t, started.Token)
	return started.Token
}

func TestOrderingFlow(t *testing.T) {
	var submitted []map[string]any
	srv := fakeOrderService(t, &submitted)
	r := newTestRouter(t, srv.URL)

	w := call(r, http.MethodPost, "/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	token := started.Token
	require.NotEmpty(t, token)

	// burger with an extra patty and cheese
	require.Equal(t, http.StatusCreated, call(r, http.MethodPost, "/builder/burger", token, "").Code)
	require.Equal(t, http.StatusOK, call(r, http.MethodPost, "/builder/burger/quantities/patty", token, `{"delta":1}`).Code)
	require.Equal(t, http.StatusOK, call(r, http.MethodPut, "/builder/burger/options/cheese", token, `{"included":true}`).Code)
	require.Equal(t, http.StatusCreated, call(r, http.MethodPost, "/builder/burger/confirm", token, "").Code)

	require.Equal(t, http.StatusCreated, call(r, http.MethodPost, "/cart/items", token, `{"key":"mix-meal"}`).Code)

	w = call(r, http.MethodGet, "/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cartView storefront.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartView))
	assert.Equal(t, "112.00", cartView.Total)

	w = call(r, http.MethodPost, "/orders", token, `{"name":"נועה","phone":"0501234567","table":"4"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "בהכנה")

	require.Len(t, submitted, 1)
	assert.Equal(t, "112.00", submitted[0]["total"])
	items, ok := submitted[0]["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)

	w = call(r, http.MethodGet, "/cart", token, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartView))
	assert.Equal(t, "0.00", cartView.Total)

	w = call(r, http.MethodGet, "/orders/status?phone=0501234567", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = call(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "burgerhouse_orders_submitted_total"))
}
