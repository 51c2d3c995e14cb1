package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/store"
	"github.com/patrykkrzal/skirent/internal/types"
)

type EquipmentHandler struct {
	svc *rental.Service
}

func NewEquipmentHandler(svc *rental.Service) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

type CreateEquipmentRequest struct {
	Type  string  `json:"type" binding:"required"`
	Size  string  `json:"size" binding:"required"`
	Price float64 `json:"price"`
}

// GET /api/equipment?type=&size=&available=
func (h *EquipmentHandler) List(ctx *gin.Context) {
	var filter store.EquipmentFilter

	if raw := ctx.Query("type"); raw != "" {
		t := models.EquipmentType(raw)
		filter.Type = &t
	}

	if raw := ctx.Query("size"); raw != "" {
		s := models.EquipmentSize(raw)
		filter.Size = &s
	}

	if raw := ctx.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "available must be a boolean"})
			return
		}
		filter.Available = &available
	}

	equipment, err := h.svc.ListEquipment(ctx.Request.Context(), filter)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.EquipmentResponse, 0, len(equipment))

	for i := range equipment {
		response = append(response, types.NewEquipmentResponse(&equipment[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// POST /api/equipment
func (h *EquipmentHandler) Create(ctx *gin.Context) {
	var body CreateEquipmentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBindingError(ctx, err)
		return
	}

	equipment, err := h.svc.AddEquipment(
		ctx.Request.Context(),
		models.EquipmentType(body.Type),
		models.EquipmentSize(body.Size),
		body.Price,
	)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEquipmentResponse(equipment))
}

// DELETE /api/equipment/:id
func (h *EquipmentHandler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment id"})
		return
	}

	if err := h.svc.DeleteEquipment(ctx.Request.Context(), uint(id)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
