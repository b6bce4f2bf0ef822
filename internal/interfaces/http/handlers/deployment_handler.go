package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/interfaces/http/response"
	"terminal-link.backend/internal/usecases"
)

// DeploymentService is the usecase surface the deployment handler depends on
type DeploymentService interface {
	RegisterDeployment(ctx context.Context, input usecases.DeploymentInput) (*entities.Deployment, error)
	FetchDeployment(ctx context.Context, identifier string) (*entities.Deployment, error)
}

// DeploymentHandler handles terminal deployment endpoints
type DeploymentHandler struct {
	service DeploymentService
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(service DeploymentService) *DeploymentHandler {
	return &DeploymentHandler{service: service}
}

type registerDeploymentRequest struct {
	SimNo       string `json:"simNo"`
	MerchantID  string `json:"merchantId"`
	TerminalID  string `json:"terminalId"`
	PosDeviceID string `json:"posDeviceId"`
	AppID       string `json:"appId"`
	Status      string `json:"status"`
}

// RegisterDeployment upserts the deployment for a terminal
// POST /internal/deploy
func (h *DeploymentHandler) RegisterDeployment(c *gin.Context) {
	var req registerDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	h.register(c, req)
}

// RegisterBySerial upserts the deployment for the terminal named in the path;
// an empty body is fine
// POST /v1/deploy/:terminalSNo
func (h *DeploymentHandler) RegisterBySerial(c *gin.Context) {
	var req registerDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	req.TerminalID = c.Param("terminalSNo")

	h.register(c, req)
}

// FetchDeployment looks up the deployment by terminal serial, merchant ID or
// SIM number
// GET /v1/deploy/:terminalSNo
func (h *DeploymentHandler) FetchDeployment(c *gin.Context) {
	dep, err := h.service.FetchDeployment(c.Request.Context(), c.Param("terminalSNo"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dep)
}

func (h *DeploymentHandler) register(c *gin.Context, req registerDeploymentRequest) {
	dep, err := h.service.RegisterDeployment(c.Request.Context(), usecases.DeploymentInput{
		SimNo:       req.SimNo,
		MerchantID:  req.MerchantID,
		TerminalID:  req.TerminalID,
		PosDeviceID: req.PosDeviceID,
		AppID:       req.AppID,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dep)
}
