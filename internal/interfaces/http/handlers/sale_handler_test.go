package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/usecases"
)

type saleServiceStub struct {
	checkVoidFn func(merchantID, terminalID, invoiceNumber string) usecases.VoidCheckResult
	registerFn  func(ctx context.Context, input usecases.SaleInput) (*entities.SaleResponse, error)
	fetchFn     func(ctx context.Context, merchantID, terminalID string) (*entities.SaleResponse, error)
}

func (s *saleServiceStub) CheckVoid(merchantID, terminalID, invoiceNumber string) usecases.VoidCheckResult {
	if s.checkVoidFn != nil {
		return s.checkVoidFn(merchantID, terminalID, invoiceNumber)
	}
	return usecases.VoidCheckResult{
		MerchantID: merchantID,
		TerminalID: terminalID,
		Allow:      invoiceNumber != "0000",
	}
}

func (s *saleServiceStub) RegisterSale(ctx context.Context, input usecases.SaleInput) (*entities.SaleResponse, error) {
	return s.registerFn(ctx, input)
}

func (s *saleServiceStub) FetchLatestSale(ctx context.Context, merchantID, terminalID string) (*entities.SaleResponse, error) {
	return s.fetchFn(ctx, merchantID, terminalID)
}

func newSaleRouter(stub *saleServiceStub) *gin.Engine {
	h := NewSaleHandler(stub)
	r := gin.New()
	r.POST("/internal/sale", h.RegisterSale)
	r.POST("/internal/check-void", h.CheckVoid)
	r.POST("/v1/sale-request", h.SaleRequest)
	r.GET("/v1/terminal/:mid/:tid/allow-void", h.AllowVoid)
	return r
}

func TestRegisterSaleHandler(t *testing.T) {
	var received usecases.SaleInput
	stub := &saleServiceStub{
		registerFn: func(_ context.Context, input usecases.SaleInput) (*entities.SaleResponse, error) {
			received = input
			return entities.NewSaleResponse(&entities.Sale{
				MerchantID:    input.MerchantID,
				TerminalID:    input.TerminalID,
				TransactionID: "TXN_1",
				Status:        entities.SaleStatusPending,
			}), nil
		},
	}
	r := newSaleRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/internal/sale", gin.H{
		"merchantId": "MID1",
		"terminalId": "TID1",
		"amount":     "150.5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "150.5", received.Amount, "amount passes through untyped")

	body := decodeBody(t, w)
	assert.Equal(t, "SUCCESS", body["code"])
	assert.Equal(t, "Sale Processed Successfully", body["message"])
	assert.Equal(t, "TXN_1", body["transactionId"])
	assert.NotNil(t, body["data"])
}

func TestRegisterSaleHandlerStoreError(t *testing.T) {
	stub := &saleServiceStub{
		registerFn: func(_ context.Context, _ usecases.SaleInput) (*entities.SaleResponse, error) {
			return nil, assert.AnError
		},
	}
	r := newSaleRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/internal/sale", gin.H{"merchantId": "MID1", "terminalId": "TID1"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "FAILED", decodeBody(t, w)["code"])
}

func TestSaleRequestHandler(t *testing.T) {
	stub := &saleServiceStub{
		fetchFn: func(_ context.Context, merchantID, terminalID string) (*entities.SaleResponse, error) {
			return entities.NewSaleResponse(&entities.Sale{
				MerchantID:    merchantID,
				TerminalID:    terminalID,
				TransactionID: "TXN_LATEST",
			}), nil
		},
	}
	r := newSaleRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/v1/sale-request", gin.H{"merchantId": "MID1", "terminalId": "TID1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TXN_LATEST", decodeBody(t, w)["transactionId"])
}

func TestSaleRequestHandlerValidation(t *testing.T) {
	stub := &saleServiceStub{
		fetchFn: func(_ context.Context, merchantID, terminalID string) (*entities.SaleResponse, error) {
			return nil, domainerrors.BadRequest("merchantId and terminalId are required")
		},
	}
	r := newSaleRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/v1/sale-request", gin.H{"merchantId": "MID1"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "FAILED", body["code"])
	assert.Equal(t, "merchantId and terminalId are required", body["message"])
}

func TestSaleRequestHandlerNotFound(t *testing.T) {
	stub := &saleServiceStub{
		fetchFn: func(_ context.Context, _, _ string) (*entities.SaleResponse, error) {
			return nil, domainerrors.NotFound("No sale found for this terminal")
		},
	}
	r := newSaleRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/v1/sale-request", gin.H{"merchantId": "MID1", "terminalId": "TID1"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No sale found for this terminal", decodeBody(t, w)["message"])
}

func TestCheckVoidHandler(t *testing.T) {
	r := newSaleRouter(&saleServiceStub{})

	w := performRequest(t, r, http.MethodPost, "/internal/check-void", gin.H{
		"mid":           "MID1",
		"tid":           "TID1",
		"invoiceNumber": "0001",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "MID1", body["merchantId"])
	assert.Equal(t, "TID1", body["terminalId"])
	assert.Equal(t, true, body["allow"])
}

func TestCheckVoidHandlerDeniedInvoice(t *testing.T) {
	r := newSaleRouter(&saleServiceStub{})

	w := performRequest(t, r, http.MethodPost, "/internal/check-void", gin.H{
		"mid":           "MID1",
		"tid":           "TID1",
		"invoiceNumber": "0000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["allow"])
}

func TestAllowVoidHandler(t *testing.T) {
	r := newSaleRouter(&saleServiceStub{})

	w := performRequest(t, r, http.MethodGet, "/v1/terminal/MID1/TID1/allow-void?invoiceNumber=0000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"allow": false}, decodeBody(t, w))

	w = performRequest(t, r, http.MethodGet, "/v1/terminal/MID1/TID1/allow-void?invoiceNumber=42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"allow": true}, decodeBody(t, w))
}
