package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"terminal-link.backend/internal/interfaces/http/handlers"
	"terminal-link.backend/internal/interfaces/http/middleware"
)

const serviceVersion = "0.1.0"

type routeDeps struct {
	configHandler       *handlers.ConfigHandler
	saleHandler         *handlers.SaleHandler
	deploymentHandler   *handlers.DeploymentHandler
	verificationHandler *handlers.VerificationHandler
}

func registerHealthRoute(r *gin.Engine) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "terminal-link-backend",
			"version": serviceVersion,
		})
	}
	r.GET("/", health)
	r.GET("/health", health)
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Cloud-facing internal API
	internal := r.Group("/internal")
	{
		internal.POST("/config", d.configHandler.RegisterConfig)
		internal.POST("/check-void", d.saleHandler.CheckVoid)
		internal.POST("/sale", middleware.IdempotencyMiddleware(), d.saleHandler.RegisterSale)
		internal.POST("/deploy", d.deploymentHandler.RegisterDeployment)

		otp := internal.Group("/otp")
		{
			otp.POST("/send", d.verificationHandler.SendOTP)
			otp.POST("/verify", d.verificationHandler.ForceVerify)
		}
	}

	// Terminal-facing API
	v1 := r.Group("/v1")
	{
		v1.POST("/sale-request", d.saleHandler.SaleRequest)

		terminal := v1.Group("/terminal")
		{
			terminal.GET("/:mid/:tid/integrated-mode-config", d.configHandler.GetConfig)
			terminal.GET("/:mid/:tid/allow-void", d.saleHandler.AllowVoid)
		}

		// The upstream route was /{terminalSNo}/deploy; a root-level path
		// parameter cannot coexist with the /internal and /verification
		// groups in gin's router, so deploys live under /v1/deploy.
		deploy := v1.Group("/deploy")
		{
			deploy.POST("/:terminalSNo", d.deploymentHandler.RegisterBySerial)
			deploy.GET("/:terminalSNo", d.deploymentHandler.FetchDeployment)
		}
	}

	verification := r.Group("/verification")
	{
		verification.POST("/:workflowId/dispatch", d.verificationHandler.Dispatch)
		verification.POST("/:workflowId/verify", d.verificationHandler.Verify)
	}
}
