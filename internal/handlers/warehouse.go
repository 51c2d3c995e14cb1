package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/types"
)

type WarehouseHandler struct {
	svc *rental.Service
}

func NewWarehouseHandler(svc *rental.Service) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

// GET /api/warehouse lists the stock reporting aggregates.
func (h *WarehouseHandler) List(ctx *gin.Context) {
	rows, err := h.svc.ListWarehouse(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.WarehouseResponse, 0, len(rows))

	for i := range rows {
		response = append(response, types.NewWarehouseResponse(&rows[i]))
	}

	ctx.JSON(http.StatusOK, response)
}
