package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"masked-aadhaar.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	registrationHandler *handlers.RegistrationHandler
	authHandler         *handlers.AuthHandler
	cardHandler         *handlers.CardHandler
	livenessHandler     *handlers.LivenessHandler
	adminHandler        *handlers.AdminHandler
}

// registerRoutes wires the flat route surface. Everything is public; the
// admin endpoints are demo tooling and carry no auth.
func registerRoutes(r *gin.Engine, d routeDeps) {
	// Registration and OTP lifecycle
	r.POST("/register", d.registrationHandler.Register)
	r.POST("/verify-otp", d.registrationHandler.VerifyOTP)
	r.POST("/resend-otp", d.registrationHandler.ResendOTP)
	r.POST("/check-otp", d.registrationHandler.CheckOTP)
	r.POST("/delete-otp", d.registrationHandler.DeleteOTP)

	// Auth
	r.POST("/login", d.authHandler.Login)

	// Card generation and downloads
	r.GET("/generate-aadhaar-card/:email", d.cardHandler.Generate)
	r.GET("/download-pdf/:email", d.cardHandler.DownloadPDF)
	r.GET("/download-image/:email", d.cardHandler.DownloadImage)

	// Liveness probes
	r.GET("/captcha", d.livenessHandler.NewCaptcha)
	r.POST("/verify-voice", d.livenessHandler.VerifyVoice)
	r.POST("/verify-captcha", d.livenessHandler.VerifyCaptcha)
	r.GET("/liveness-checks", d.livenessHandler.ListChecks)

	// Diagnostics
	r.GET("/show-users", d.adminHandler.ShowUsers)
	r.GET("/show-otps", d.adminHandler.ShowOTPs)
	r.GET("/user-info", d.adminHandler.UserInfo)
	r.GET("/otp-count", d.adminHandler.OTPCount)
	r.GET("/active-users", d.adminHandler.ActiveUsers)
	r.POST("/reset-database", d.adminHandler.ResetDatabase)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}
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
			"service": "masked-aadhaar-backend",
			"version": "0.1.0",
		})
	})
}
