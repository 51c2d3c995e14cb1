package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/types"
)

type OrderHandler struct {
	svc *rental.Service
}

func NewOrderHandler(svc *rental.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type CreateOrderRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	EquipmentIDs []uint `json:"equipment_ids" binding:"required"`
}

// POST /api/orders
func (h *OrderHandler) Create(ctx *gin.Context) {
	var body CreateOrderRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBindingError(ctx, err)
		return
	}

	order, err := h.svc.PlaceOrder(ctx.Request.Context(), body.UserID, body.EquipmentIDs, time.Now())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewOrderResponse(order))
}

// POST /api/orders/:id/return
func (h *OrderHandler) Return(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.svc.ReturnOrder(ctx.Request.Context(), uint(id))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrderResponse(order))
}

// GET /api/orders
func (h *OrderHandler) List(ctx *gin.Context) {
	orders, err := h.svc.ListOrders(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.OrderResponse, 0, len(orders))

	for i := range orders {
		response = append(response, types.NewOrderResponse(&orders[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), uint(id))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrderResponse(order))
}
