package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/interfaces/http/response"
	"terminal-link.backend/internal/usecases"
)

// ConfigService is the usecase surface the config handler depends on
type ConfigService interface {
	RegisterConfig(ctx context.Context, input usecases.ConfigInput) (*entities.TerminalConfig, error)
	GetConfig(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error)
}

// ConfigHandler handles terminal config endpoints
type ConfigHandler struct {
	service ConfigService
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(service ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

type registerConfigRequest struct {
	Mid                       string `json:"mid" binding:"required"`
	Tid                       string `json:"tid" binding:"required"`
	IntegrationMode           string `json:"integrationMode"`
	IntegratedModeDisplayName string `json:"integratedModeDisplayName"`
	IntegrationMappingType    string `json:"integrationMappingType"`
}

// RegisterConfig upserts the config for a terminal
// POST /internal/config
func (h *ConfigHandler) RegisterConfig(c *gin.Context) {
	var req registerConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	cfg, err := h.service.RegisterConfig(c.Request.Context(), usecases.ConfigInput{
		MerchantID:                req.Mid,
		TerminalID:                req.Tid,
		IntegrationMode:           req.IntegrationMode,
		IntegratedModeDisplayName: req.IntegratedModeDisplayName,
		IntegrationMappingType:    req.IntegrationMappingType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg)
}

// GetConfig looks up the config for a terminal; an unknown pair yields an
// empty object, not an error
// GET /v1/terminal/:mid/:tid/integrated-mode-config
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context(), c.Param("mid"), c.Param("tid"))
	if err == domainerrors.ErrNotFound {
		response.Success(c, http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg)
}
