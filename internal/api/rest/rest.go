package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-token-gate/internal/api/middleware"
)

// SetupRoutes registers the v1 routes.
// Profile reads are public, owner unlink is authorized by the profile secret
// header, machine callers use API keys and operators may also use JWTs.
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	router.GET("/health", handler.HealthCheck)

	machine := auth.Require(middleware.SchemeAPIKey)
	operator := auth.Require(middleware.SchemeBearer, middleware.SchemeAPIKey)

	v1 := router.Group("/api/v1")

	v1.GET("/profiles/:handle", handler.GetProfile)
	v1.GET("/profiles/:handle/trend", handler.GetProfileTrend)
	v1.DELETE("/profiles/:handle/wallets/:address", handler.UnlinkWallet)

	v1.POST("/links", machine, handler.LinkWallet)
	v1.POST("/profiles/:handle/secret", machine, handler.RotateProfileSecret)
	v1.POST("/webhooks/clients", machine, handler.CreateWebhookClient)

	runs := v1.Group("/runs", operator)
	runs.POST("", handler.TriggerRun)
	runs.GET("", handler.ListRuns)
	runs.GET("/:id", handler.GetRun)
	runs.GET("/:id/snapshots", handler.GetRunSnapshots)

	v1.GET("/pools", operator, handler.ListPools)
	v1.PUT("/pools", operator, handler.UpsertPool)
	v1.GET("/settings", operator, handler.GetSettings)
	v1.PUT("/settings", operator, handler.UpdateSettings)
}
