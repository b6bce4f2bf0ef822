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

// SaleService is the usecase surface the sale handler depends on
type SaleService interface {
	CheckVoid(merchantID, terminalID, invoiceNumber string) usecases.VoidCheckResult
	RegisterSale(ctx context.Context, input usecases.SaleInput) (*entities.SaleResponse, error)
	FetchLatestSale(ctx context.Context, merchantID, terminalID string) (*entities.SaleResponse, error)
}

// SaleHandler handles sale registration, lookup and the void check
type SaleHandler struct {
	service SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type registerSaleRequest struct {
	MerchantID                    string      `json:"merchantId"`
	TerminalID                    string      `json:"terminalId"`
	PosDeviceID                   string      `json:"posDeviceId"`
	ShortOrderID                  string      `json:"shortOrderId"`
	Amount                        interface{} `json:"amount"`
	AllowedInstruments            []string    `json:"allowedInstruments"`
	AutoAccept                    *bool       `json:"autoAccept"`
	AutoAcceptWindowExpirySeconds int         `json:"autoAcceptWindowExpirySeconds"`
	PregeneratedDQRTransactionID  string      `json:"pregeneratedDQRTransactionId"`
	PregeneratedCardTransactionID string      `json:"pregeneratedCardTransactionId"`
	InvoiceNumber                 string      `json:"invoiceNumber"`
}

type checkVoidRequest struct {
	Mid           string `json:"mid"`
	Tid           string `json:"tid"`
	InvoiceNumber string `json:"invoiceNumber"`
}

type saleLookupRequest struct {
	MerchantID string `json:"merchantId"`
	TerminalID string `json:"terminalId"`
}

// RegisterSale registers a sale as the open pending one for the terminal pair
// POST /internal/sale
func (h *SaleHandler) RegisterSale(c *gin.Context) {
	var req registerSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.service.RegisterSale(c.Request.Context(), usecases.SaleInput{
		MerchantID:                    req.MerchantID,
		TerminalID:                    req.TerminalID,
		PosDeviceID:                   req.PosDeviceID,
		ShortOrderID:                  req.ShortOrderID,
		Amount:                        req.Amount,
		AllowedInstruments:            req.AllowedInstruments,
		AutoAccept:                    req.AutoAccept,
		AutoAcceptWindowExpirySeconds: req.AutoAcceptWindowExpirySeconds,
		PregeneratedDQRTransactionID:  req.PregeneratedDQRTransactionID,
		PregeneratedCardTransactionID: req.PregeneratedCardTransactionID,
		InvoiceNumber:                 req.InvoiceNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SaleRequest returns the latest sale for the pair, tolerating swapped
// identifiers
// POST /v1/sale-request
func (h *SaleHandler) SaleRequest(c *gin.Context) {
	var req saleLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest("merchantId and terminalId are required"))
		return
	}

	result, err := h.service.FetchLatestSale(c.Request.Context(), req.MerchantID, req.TerminalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CheckVoid decides whether a void is allowed
// POST /internal/check-void
func (h *SaleHandler) CheckVoid(c *gin.Context) {
	var req checkVoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	response.Success(c, http.StatusOK, h.service.CheckVoid(req.Mid, req.Tid, req.InvoiceNumber))
}

// AllowVoid is the terminal-facing void check
// GET /v1/terminal/:mid/:tid/allow-void?invoiceNumber=
func (h *SaleHandler) AllowVoid(c *gin.Context) {
	result := h.service.CheckVoid(c.Param("mid"), c.Param("tid"), c.Query("invoiceNumber"))
	response.Success(c, http.StatusOK, gin.H{"allow": result.Allow})
}
