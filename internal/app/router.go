// internal/app/router.go
package app

import (
	demoHandler "crmdemo-service/internal/handlers/demo"
	wsHandler "crmdemo-service/internal/handlers/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	DemoHandler *demoHandler.DemoHandler
	WSHandler   *wsHandler.WebSocketHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)
	api.GET("/ws/stats", h.WSHandler.GetStats)

	// ==================== Demo Lifecycle ====================
	demo := api.Group("/demo")
	{
		demo.POST("/start", h.DemoHandler.StartDemo)
		demo.POST("/stop", h.DemoHandler.StopDemo)
		demo.POST("/reset", h.DemoHandler.ResetDemo)
		demo.GET("/status", h.DemoHandler.DemoStatus)
	}

	// ==================== Dashboard ====================
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/kpis", h.DemoHandler.GetKPIs)
		dashboard.GET("/activities", h.DemoHandler.GetRecentActivities)
		dashboard.GET("/performance", h.DemoHandler.GetPerformanceData)
		dashboard.GET("/channels", h.DemoHandler.GetChannelPerformance)
	}

	// ==================== Conversations ====================
	conversations := api.Group("/conversations")
	{
		conversations.GET("", h.DemoHandler.ListConversations)
		conversations.GET("/:id", h.DemoHandler.GetConversation)
		conversations.POST("/:id/messages", h.DemoHandler.SendMessage)
	}

	// ==================== Pipeline ====================
	pipeline := api.Group("/pipeline")
	{
		pipeline.GET("/deals", h.DemoHandler.GetPipelineDeals)
		pipeline.PUT("/deals/:id/move", h.DemoHandler.MoveDeal)
	}

	// ==================== Contacts ====================
	contacts := api.Group("/contacts")
	{
		contacts.GET("", h.DemoHandler.ListContacts)
		contacts.POST("", h.DemoHandler.CreateContact)
		contacts.DELETE("/:id", h.DemoHandler.DeleteContact)
	}

	// ==================== Automation ====================
	automation := api.Group("/automation")
	{
		automation.GET("/status", h.DemoHandler.GetAutomationStatus)
		automation.GET("/flows", h.DemoHandler.GetAutomationFlows)
		automation.POST("/start", h.DemoHandler.StartAutomation)
		automation.POST("/stop", h.DemoHandler.StopAutomation)
	}
}
