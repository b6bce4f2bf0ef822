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

// VerificationService is the usecase surface the verification handler depends
// on
type VerificationService interface {
	SendOTP(ctx context.Context, input usecases.OTPSendInput) (*entities.Verification, error)
	Dispatch(ctx context.Context, workflowID string) (*entities.Verification, error)
	Verify(ctx context.Context, workflowID, submittedCode string) error
	ForceVerify(ctx context.Context, workflowID string) error
}

// VerificationHandler handles OTP issuance and verification endpoints
type VerificationHandler struct {
	service VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(service VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

type sendOTPRequest struct {
	WorkflowID string `json:"workflowId" binding:"required"`
	AppID      string `json:"appId"`
	SimNo      string `json:"simNo"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
}

type verifyOTPRequest struct {
	VerificationCode string `json:"verificationCode"`
}

type forceVerifyRequest struct {
	WorkflowID string `json:"workflowId" binding:"required"`
}

// SendOTP issues a code for the workflow
// POST /internal/otp/send
func (h *VerificationHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.service.SendOTP(c.Request.Context(), usecases.OTPSendInput{
		WorkflowID: req.WorkflowID,
		AppID:      req.AppID,
		SimNo:      req.SimNo,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"otpSent": true})
}

// Dispatch returns the current code for the workflow, issuing one if needed
// POST /verification/:workflowId/dispatch
func (h *VerificationHandler) Dispatch(c *gin.Context) {
	v, err := h.service.Dispatch(c.Request.Context(), c.Param("workflowId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"otp": v.OTP, "status": "SENT"})
}

// Verify checks the submitted code against the issued one
// POST /verification/:workflowId/verify
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req verifyOTPRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Verify(c.Request.Context(), c.Param("workflowId"), req.VerificationCode); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ForceVerify marks the workflow verified without a code check
// POST /internal/otp/verify
func (h *VerificationHandler) ForceVerify(c *gin.Context) {
	var req forceVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.service.ForceVerify(c.Request.Context(), req.WorkflowID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verified": true})
}
