package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrykkrzal/skirent/internal/middleware"
	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/types"
)

type AuthHandler struct {
	accounts *rental.AccountService
}

func NewAuthHandler(accounts *rental.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type RegisterUserRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Login       string `json:"login" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=9"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginUserRequest struct {
	Login    string `json:"login" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBindingError(ctx, err)
		return
	}

	user, err := h.accounts.RegisterUser(ctx.Request.Context(), rental.RegisterUserInput{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Login:       body.Login,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Password:    body.Password,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

// POST /api/auth/login
func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBindingError(ctx, err)
		return
	}

	token, user, err := h.accounts.Login(ctx.Request.Context(), body.Login, body.Password)

	if err != nil {
		if errors.Is(err, rental.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": currentUser})
}
