package handler

import (
	"paywallet/internal/adapter/http/middleware"
	"paywallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	WalletSvc      ports.WalletService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)
	vendingHandler := NewVendingHandler(deps.WalletSvc)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", walletHandler.GetBalance)
		wallet.POST("/fund", walletHandler.FundWallet)
		wallet.GET("/fund/verify", walletHandler.VerifyPayment)
		wallet.PUT("/pin", walletHandler.SetPin)
		wallet.GET("/banks", walletHandler.ListBanks)
		wallet.GET("/banks/resolve", walletHandler.ResolveAccount)
		wallet.POST("/withdraw", walletHandler.Withdraw)
		wallet.GET("/transactions", walletHandler.ListTransactions)
	}

	vending := v1.Group("/vending", jwtAuth)
	{
		vending.GET("/data/services", vendingHandler.DataServices)
		vending.GET("/data/plans", vendingHandler.DataPlans)
		vending.GET("/airtime/services", vendingHandler.AirtimeServices)
		vending.POST("/data", vendingHandler.BuyData)
		vending.POST("/airtime", vendingHandler.BuyAirtime)
	}

	return r
}
