package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/patrykkrzal/skirent/internal/handlers"
	"github.com/patrykkrzal/skirent/internal/middleware"
	"github.com/patrykkrzal/skirent/internal/rental"
	"github.com/patrykkrzal/skirent/internal/store"
)

func NewRouter(st store.Store, allowedOrigins []string) *gin.Engine {
	svc := rental.NewService(st)
	accounts := rental.NewAccountService(st)

	equipmentHandler := handlers.NewEquipmentHandler(svc)
	orderHandler := handlers.NewOrderHandler(svc)
	workerHandler := handlers.NewWorkerHandler(accounts)
	authHandler := handlers.NewAuthHandler(accounts)
	warehouseHandler := handlers.NewWarehouseHandler(svc)

	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.AuthMiddleware(st.Users())
	staffOnly := middleware.RequireStaff()

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", equipmentHandler.List)
			equipment.POST("", authRequired, staffOnly, equipmentHandler.Create)
			equipment.DELETE("/:id", authRequired, staffOnly, equipmentHandler.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("/:id/return", orderHandler.Return)
		}

		workers := api.Group("/workers")
		{
			workers.POST("", authRequired, staffOnly, workerHandler.Create)
			workers.GET("", authRequired, staffOnly, workerHandler.List)
		}

		api.GET("/warehouse", warehouseHandler.List)
	}

	return r
}
