package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market-api/config"
	"farm-market-api/handlers"
	"farm-market-api/routes"
	"farm-market-api/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{
		Port:         "0",
		GinMode:      gin.TestMode,
		JWTSecret:    []byte("test-secret"),
		TokenTTL:     time.Hour,
		PaymentDelay: 0, // no point waiting in tests
	}

	st, err := store.New(log)
	require.NoError(t, err)

	h := handlers.New(st, cfg, log)
	r := gin.New()
	routes.SetupRoutes(r, h, cfg.JWTSecret)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "role": role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterValidation(t *testing.T) {
	r := newTestServer(t)

	// password mismatch is caught before any dispatch
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Jane", "email": "jane@example.com",
		"password": "secret1", "confirm_password": "secret2",
		"role": "customer",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate email is rejected here, not in the store
	w = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Impostor", "email": "farmer@greenvalley.com",
		"password": "secret1", "confirm_password": "secret1",
		"role": "farmer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// unknown role
	w = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Root", "email": "root@example.com",
		"password": "secret1", "confirm_password": "secret1",
		"role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// success
	w = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Jane", "email": "jane@example.com",
		"password": "secret1", "confirm_password": "secret1",
		"role": "customer", "address": "1 Main St", "phone": "555-0001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
}

func TestLoginMatchesEmailAndRole(t *testing.T) {
	r := newTestServer(t)

	token := login(t, r, "farmer@greenvalley.com", "farmer")
	w := do(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// same email, wrong role
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "farmer@greenvalley.com", "role": "driver",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGuards(t *testing.T) {
	r := newTestServer(t)

	// unauthenticated
	w := do(t, r, http.MethodGet, "/api/customer/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong role
	farmerToken := login(t, r, "farmer@greenvalley.com", "farmer")
	w = do(t, r, http.MethodGet, "/api/customer/cart", farmerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	customerToken := login(t, r, "customer@example.com", "customer")
	w = do(t, r, http.MethodGet, "/api/farmer/orders", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCartStockCeiling(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r, "customer@example.com", "customer")

	// tomatoes have stock 50
	w := do(t, r, http.MethodPost, "/api/customer/cart", token, gin.H{"product_id": "1", "quantity": 60})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/customer/cart", token, gin.H{"product_id": "1", "quantity": 30})
	assert.Equal(t, http.StatusOK, w.Code)

	// 30 already in the cart, 30 more would exceed stock
	w = do(t, r, http.MethodPost, "/api/customer/cart", token, gin.H{"product_id": "1", "quantity": 30})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWishlistIdempotentOverHTTP(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r, "customer@example.com", "customer")

	w := do(t, r, http.MethodPost, "/api/customer/wishlist", token, gin.H{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/customer/wishlist", token, gin.H{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = do(t, r, http.MethodDelete, "/api/customer/wishlist/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	r := newTestServer(t)

	customerToken := login(t, r, "customer@example.com", "customer")

	// items from two farmers
	w := do(t, r, http.MethodPost, "/api/customer/cart", customerToken, gin.H{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/customer/cart", customerToken, gin.H{"product_id": "3", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	// checkout splits the cart into one order per farmer
	w = do(t, r, http.MethodPost, "/api/customer/checkout", customerToken, gin.H{
		"address": "42 Orchard Lane", "phone": "555-0126", "payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.EqualValues(t, 2, body["count"])

	ordersRaw := body["orders"].([]any)
	var farmer1Order string
	for _, o := range ordersRaw {
		om := o.(map[string]any)
		if om["farmer_id"] == "farmer1" {
			farmer1Order = om["id"].(string)
		}
	}
	require.NotEmpty(t, farmer1Order)

	// cart is empty after checkout
	w = do(t, r, http.MethodGet, "/api/customer/cart", customerToken, nil)
	assert.EqualValues(t, 0, decode(t, w)["count"])

	// farmer accepts, then starts preparing
	farmerToken := login(t, r, "farmer@greenvalley.com", "farmer")
	w = do(t, r, http.MethodPut, "/api/farmer/orders/"+farmer1Order+"/status", farmerToken, gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// skipping ahead is rejected by the state machine
	w = do(t, r, http.MethodPut, "/api/farmer/orders/"+farmer1Order+"/status", farmerToken, gin.H{"status": "out_for_delivery"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPut, "/api/farmer/orders/"+farmer1Order+"/status", farmerToken, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code)

	// driver sees exactly one available delivery and takes it
	driverToken := login(t, r, "driver@farmily.com", "driver")
	w = do(t, r, http.MethodGet, "/api/driver/orders/available", driverToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = do(t, r, http.MethodPut, "/api/driver/orders/"+farmer1Order+"/pickup", driverToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a second pickup conflicts
	w = do(t, r, http.MethodPut, "/api/driver/orders/"+farmer1Order+"/pickup", driverToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/api/driver/orders/"+farmer1Order+"/deliver", driverToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// customer sees the delivered order with its driver
	w = do(t, r, http.MethodGet, "/api/customer/orders/"+farmer1Order, customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, "delivered", order["status"])
	assert.Equal(t, "driver1", order["driver_id"])

	// the other farmer's order is still pending
	w = do(t, r, http.MethodGet, "/api/customer/orders", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	statuses := map[string]bool{}
	for _, o := range decode(t, w)["orders"].([]any) {
		statuses[o.(map[string]any)["status"].(string)] = true
	}
	assert.True(t, statuses["pending"])
	assert.True(t, statuses["delivered"])
}

func TestFarmerProductOwnership(t *testing.T) {
	r := newTestServer(t)

	// farmer2 cannot edit or delete farmer1's product
	token := login(t, r, "rancher@mountainview.com", "farmer")
	w := do(t, r, http.MethodPut, "/api/farmer/products/1", token, gin.H{
		"name": "Hijacked", "category": "produce", "price": "1.00", "unit": "per kg", "stock": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = do(t, r, http.MethodDelete, "/api/farmer/products/1", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// creating and deleting an own product works
	w = do(t, r, http.MethodPost, "/api/farmer/products", token, gin.H{
		"name": "Raw Honey", "category": "produce", "price": "59.99", "unit": "per jar", "stock": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product := decode(t, w)["product"].(map[string]any)
	id := product["id"].(string)
	assert.Equal(t, "Mountain View Ranch", product["farmer_name"])

	w = do(t, r, http.MethodDelete, "/api/farmer/products/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewsletterAndPromo(t *testing.T) {
	r := newTestServer(t)

	w := do(t, r, http.MethodGet, "/api/ui", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["show_newsletter"])

	w = do(t, r, http.MethodPost, "/api/newsletter/subscribe", "", gin.H{"email": "demo@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/ui", "", nil)
	assert.Equal(t, false, decode(t, w)["show_newsletter"])

	w = do(t, r, http.MethodGet, "/api/promo", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	offer := decode(t, w)["offer"].(map[string]any)
	assert.NotEmpty(t, offer["title"])
}
