// internal/handlers/demo/demo_handler.go
package demo

import (
	"net/http"

	demodomain "crmdemo-service/internal/domain/demo"
	"crmdemo-service/internal/pkg/response"
	"crmdemo-service/internal/service/demomode"
	"crmdemo-service/internal/service/mockapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DemoHandler struct {
	controller *demomode.Controller
	facade     *mockapi.Facade
	logger     *zap.Logger
}

func NewDemoHandler(controller *demomode.Controller, facade *mockapi.Facade, logger *zap.Logger) *DemoHandler {
	return &DemoHandler{
		controller: controller,
		facade:     facade,
		logger:     logger,
	}
}

// ========== Demo lifecycle ==========

func (h *DemoHandler) StartDemo(c *gin.Context) {
	if err := h.controller.Start(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to start demo mode", err)
		return
	}
	response.Success(c, http.StatusOK, "demo mode started", gin.H{"running": true})
}

func (h *DemoHandler) StopDemo(c *gin.Context) {
	if err := h.controller.Stop(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to stop demo mode", err)
		return
	}
	response.Success(c, http.StatusOK, "demo mode stopped", gin.H{"running": false})
}

func (h *DemoHandler) ResetDemo(c *gin.Context) {
	if err := h.controller.Reset(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to reset demo data", err)
		return
	}
	response.Success(c, http.StatusOK, "demo data reset", gin.H{"running": h.controller.Running()})
}

func (h *DemoHandler) DemoStatus(c *gin.Context) {
	active, err := h.controller.Active(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read demo status", err)
		return
	}
	response.Success(c, http.StatusOK, "demo status", gin.H{
		"active":  active,
		"running": h.controller.Running(),
	})
}

// ========== Dashboard ==========

func (h *DemoHandler) GetKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetKPIs(c.Request.Context()))
}

func (h *DemoHandler) GetRecentActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetRecentActivities(c.Request.Context()))
}

func (h *DemoHandler) GetPerformanceData(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetPerformanceData(c.Request.Context()))
}

func (h *DemoHandler) GetChannelPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetChannelPerformance(c.Request.Context()))
}

// ========== Conversations ==========

func (h *DemoHandler) ListConversations(c *gin.Context) {
	var filters demodomain.ConversationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid conversation filters", err)
		return
	}
	c.JSON(http.StatusOK, h.facade.GetConversations(c.Request.Context(), filters))
}

func (h *DemoHandler) GetConversation(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetConversationByID(c.Request.Context(), c.Param("id")))
}

func (h *DemoHandler) SendMessage(c *gin.Context) {
	var req demodomain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid message payload", err)
		return
	}
	c.JSON(http.StatusOK, h.facade.SendMessage(c.Request.Context(), c.Param("id"), req))
}

// ========== Pipeline ==========

func (h *DemoHandler) GetPipelineDeals(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetPipelineDeals(c.Request.Context()))
}

func (h *DemoHandler) MoveDeal(c *gin.Context) {
	var req demodomain.MoveDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid move payload", err)
		return
	}
	if !req.StageID.IsValid() {
		response.ValidationError(c, "unknown pipeline stage", nil)
		return
	}
	c.JSON(http.StatusOK, h.facade.MoveDeal(c.Request.Context(), c.Param("id"), req.StageID))
}

// ========== Contacts ==========

func (h *DemoHandler) ListContacts(c *gin.Context) {
	var filters demodomain.ContactFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid contact filters", err)
		return
	}
	c.JSON(http.StatusOK, h.facade.GetContacts(c.Request.Context(), filters))
}

func (h *DemoHandler) CreateContact(c *gin.Context) {
	var req demodomain.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid contact payload", err)
		return
	}
	c.JSON(http.StatusCreated, h.facade.CreateContact(c.Request.Context(), req))
}

func (h *DemoHandler) DeleteContact(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.DeleteContact(c.Request.Context(), c.Param("id")))
}

// ========== Automation ==========

func (h *DemoHandler) GetAutomationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetAutomationStatus(c.Request.Context()))
}

func (h *DemoHandler) GetAutomationFlows(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetAutomationFlows(c.Request.Context()))
}

func (h *DemoHandler) StartAutomation(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.StartAutomation(c.Request.Context()))
}

func (h *DemoHandler) StopAutomation(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.StopAutomation(c.Request.Context()))
}
