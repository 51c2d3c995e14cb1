package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrykkrzal/skirent/internal/auth"
	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/seed"
	"github.com/patrykkrzal/skirent/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init("test-secret", 168))

	st := store.NewMemoryStore()
	require.NoError(t, seed.Run(context.Background(), st))

	return NewRouter(st, []string{"http://localhost:5173"}), st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
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

func loginToken(t *testing.T, r *gin.Engine, login string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"login":    login,
		"password": "password",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEquipmentSeeded(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/equipment", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 10)
}

func TestCreateEquipmentRequiresStaff(t *testing.T) {
	r, _ := newTestRouter(t)

	body := gin.H{"type": "Skis", "size": "Medium", "price": 130}

	w := doJSON(t, r, http.MethodPost, "/api/equipment", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := loginToken(t, r, "pawel")
	w = doJSON(t, r, http.MethodPost, "/api/equipment", body, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	staffToken := loginToken(t, r, "ewa@example.com")
	w = doJSON(t, r, http.MethodPost, "/api/equipment", body, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Skis", created["type"])
	assert.Equal(t, "Medium", created["size"])
	assert.Equal(t, true, created["is_in_warehouse"])
	assert.Equal(t, false, created["is_reserved"])
}

func TestCreateEquipmentValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	staffToken := loginToken(t, r, "jan@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/equipment", gin.H{
		"type": "Sledge", "size": "XXL", "price": -10,
	}, staffToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "type")
	assert.Contains(t, resp.Fields, "size")
	assert.Contains(t, resp.Fields, "price")
}

// Walks the full seeded rental cycle: return the open seeded order, place a
// fresh one on the same skis, hit the double-booking conflict, return again.
func TestSeededOrderLifecycle(t *testing.T) {
	r, st := newTestRouter(t)
	ctx := context.Background()

	pawel, err := st.Users().ByLogin(ctx, "pawel")
	require.NoError(t, err)

	typ := models.TypeSkis
	size := models.SizeSmall
	skis, err := st.Equipment().List(ctx, store.EquipmentFilter{Type: &typ, Size: &size})
	require.NoError(t, err)
	require.Len(t, skis, 1)
	skisSmall := skis[0]

	orders, err := st.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	seededOrder := orders[0]

	// Skis Small is on loan through the seeded order, so a new order conflicts.
	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"user_id": pawel.ID, "equipment_ids": []uint{skisSmall.ID},
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/return", seededOrder.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Now the same item books cleanly at the seeded price.
	w = doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"user_id": pawel.ID, "equipment_ids": []uint{skisSmall.ID},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID          uint    `json:"id"`
		Price       float64 `json:"price"`
		RentedItems string  `json:"rented_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 120.0, created.Price)
	assert.Equal(t, "Skis Small", created.RentedItems)

	e, err := st.Equipment().ByID(ctx, skisSmall.ID)
	require.NoError(t, err)
	assert.True(t, e.IsReserved)
	assert.False(t, e.IsInWarehouse)

	// Double-booking before return is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"user_id": pawel.ID, "equipment_ids": []uint{skisSmall.ID},
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/return", created.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var returned struct {
		WasReturned bool `json:"was_returned"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &returned))
	assert.True(t, returned.WasReturned)

	e, err = st.Equipment().ByID(ctx, skisSmall.ID)
	require.NoError(t, err)
	assert.False(t, e.IsReserved)
	assert.True(t, e.IsInWarehouse)

	// Returning the same order again reports not found.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/return", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReturnUnknownOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/9999/return", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterWorker(t *testing.T) {
	r, _ := newTestRouter(t)
	staffToken := loginToken(t, r, "jan@example.com")

	body := gin.H{
		"first_name":   "Tomasz",
		"last_name":    "Lis",
		"email":        "tomasz@example.com",
		"phone_number": "555666777",
		"address":      "ul. Polna 2",
		"work_start":   "09:00",
		"work_end":     "17:00",
		"working_days": "Mon-Fri",
		"job_title":    "Technician",
		"password":     "password123",
	}

	w := doJSON(t, r, http.MethodPost, "/api/workers", body, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Same email again conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/workers", body, staffToken)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterWorkerBindingFieldKeys(t *testing.T) {
	r, _ := newTestRouter(t)
	staffToken := loginToken(t, r, "jan@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/workers", gin.H{
		"last_name": "Lis",
	}, staffToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Binding failures report the json field names, same as domain
	// validation errors.
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "first_name")
	assert.Contains(t, resp.Fields, "work_start")
	assert.Contains(t, resp.Fields, "work_end")
	assert.NotContains(t, resp.Fields, "firstname")
}

func TestWarehouseReport(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/warehouse", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		EquipmentName string `json:"equipment_name"`
		Quantity      int    `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, "Skis", rows[0].EquipmentName)
	assert.Equal(t, 3, rows[0].Quantity)
}
