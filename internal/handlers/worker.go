package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/types"
)

type WorkerHandler struct {
	accounts *rental.AccountService
}

func NewWorkerHandler(accounts *rental.AccountService) *WorkerHandler {
	return &WorkerHandler{accounts: accounts}
}

type CreateWorkerRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=50"`
	LastName     string `json:"last_name" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email,max=50"`
	PhoneNumber  string `json:"phone_number" binding:"required,max=9"`
	Address      string `json:"address" binding:"max=255"`
	WorkStart    string `json:"work_start" binding:"required"`
	WorkEnd      string `json:"work_end" binding:"required"`
	WorkingDays  string `json:"working_days" binding:"max=255"`
	JobTitle     string `json:"job_title" binding:"required,max=30"`
	Password     string `json:"password" binding:"required,min=8"`
	RentalInfoID uint   `json:"rental_info_id"`
}

// POST /api/workers creates the staff account and the worker record.
func (h *WorkerHandler) Create(ctx *gin.Context) {
	var body CreateWorkerRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBindingError(ctx, err)
		return
	}

	worker, err := h.accounts.RegisterWorker(ctx.Request.Context(), rental.RegisterWorkerInput{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		PhoneNumber:  body.PhoneNumber,
		Address:      body.Address,
		WorkStart:    body.WorkStart,
		WorkEnd:      body.WorkEnd,
		WorkingDays:  body.WorkingDays,
		JobTitle:     body.JobTitle,
		Password:     body.Password,
		RentalInfoID: body.RentalInfoID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewWorkerResponse(worker))
}

// GET /api/workers
func (h *WorkerHandler) List(ctx *gin.Context) {
	workers, err := h.accounts.ListWorkers(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.WorkerResponse, 0, len(workers))

	for i := range workers {
		response = append(response, types.NewWorkerResponse(&workers[i]))
	}

	ctx.JSON(http.StatusOK, response)
}
