package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealhub.backend/internal/interfaces/http/handlers"
	"dealhub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	merchantHandler *handlers.MerchantHandler
	adminHandler    *handlers.AdminHandler
	waitlistHandler *handlers.WaitlistHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Session-ID, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "dealhub-backend",
			"version": "0.1.0",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Waitlist routes (public)
		waitlist := v1.Group("/waitlist")
		{
			waitlist.POST("", d.waitlistHandler.Join)
		}

		// Merchant routes (protected)
		merchants := v1.Group("/merchants")
		merchants.Use(d.authMiddleware)
		{
			merchants.GET("/status", d.merchantHandler.GetStatus)
			merchants.POST("/resubmit", d.merchantHandler.Resubmit)
			merchants.PUT("/profile", d.merchantHandler.UpdateProfile)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin(), middleware.IdempotencyMiddleware())
		{
			admin.GET("/merchants", d.adminHandler.ListMerchants)
			admin.POST("/merchants/:id/approve", d.adminHandler.ApproveMerchant)
			admin.POST("/merchants/:id/reject", d.adminHandler.RejectMerchant)
			admin.POST("/merchants/:id/reset-password", d.adminHandler.ResetPassword)
			admin.GET("/merchants/:id/credential", d.adminHandler.GetMerchantCredential)
			admin.GET("/credentials", d.adminHandler.ListCredentials)
			admin.POST("/accounts", d.adminHandler.CreateAccount)
		}
	}
}
