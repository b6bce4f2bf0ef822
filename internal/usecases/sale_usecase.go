package usecases

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/domain/repositories"
)

// voidDeniedInvoice is the reserved sentinel invoice number for which void is
// always denied.
const voidDeniedInvoice = "0000"

// SaleUsecase handles sale registration, lookup and the void check
type SaleUsecase struct {
	saleRepo repositories.SaleRepository
}

// NewSaleUsecase creates a new sale usecase
func NewSaleUsecase(saleRepo repositories.SaleRepository) *SaleUsecase {
	return &SaleUsecase{saleRepo: saleRepo}
}

// SaleInput represents input for sale registration. Amount is kept untyped
// because terminals send it either as a number or a string.
type SaleInput struct {
	MerchantID                    string
	TerminalID                    string
	PosDeviceID                   string
	ShortOrderID                  string
	Amount                        interface{}
	AllowedInstruments            []string
	AutoAccept                    *bool
	AutoAcceptWindowExpirySeconds int
	PregeneratedDQRTransactionID  string
	PregeneratedCardTransactionID string
	InvoiceNumber                 string
}

// VoidCheckResult is the outcome of the void check
type VoidCheckResult struct {
	MerchantID string `json:"merchantId"`
	TerminalID string `json:"terminalId"`
	Allow      bool   `json:"allow"`
}

// CheckVoid decides whether a void is allowed. Pure rule, no persistence:
// only the reserved invoice number "0000" is denied.
func (u *SaleUsecase) CheckVoid(merchantID, terminalID, invoiceNumber string) VoidCheckResult {
	return VoidCheckResult{
		MerchantID: merchantID,
		TerminalID: terminalID,
		Allow:      invoiceNumber != voidDeniedInvoice,
	}
}

// RegisterSale registers a sale as the open PENDING one for the pair.
// Transaction identifiers and timestamps are regenerated on every call.
func (u *SaleUsecase) RegisterSale(ctx context.Context, input SaleInput) (*entities.SaleResponse, error) {
	now := time.Now()
	autoAccept := true
	if input.AutoAccept != nil {
		autoAccept = *input.AutoAccept
	}

	sale := &entities.Sale{
		MerchantID:                    input.MerchantID,
		TerminalID:                    input.TerminalID,
		PosDeviceID:                   input.PosDeviceID,
		ShortOrderID:                  input.ShortOrderID,
		Amount:                        CoerceAmount(input.Amount),
		AllowedInstruments:            input.AllowedInstruments,
		AutoAccept:                    autoAccept,
		AutoAcceptWindowExpirySeconds: input.AutoAcceptWindowExpirySeconds,
		PregeneratedDQRTransactionID:  input.PregeneratedDQRTransactionID,
		PregeneratedCardTransactionID: input.PregeneratedCardTransactionID,
		TransactionID:                 "TXN_" + strconv.FormatInt(now.UnixMilli(), 10),
		CreatedAt:                     now.UTC().Format(time.RFC3339),
		CreationTimestamp:             now.UnixMilli(),
		Status:                        entities.SaleStatusPending,
		InvoiceNumber:                 input.InvoiceNumber,
	}

	persisted, err := u.saleRepo.UpsertPending(ctx, sale)
	if err != nil {
		return nil, err
	}
	return entities.NewSaleResponse(persisted), nil
}

// FetchLatestSale returns the newest sale for the pair in either order.
// Both identifiers are required; validation failures never touch the store.
func (u *SaleUsecase) FetchLatestSale(ctx context.Context, merchantID, terminalID string) (*entities.SaleResponse, error) {
	if merchantID == "" || terminalID == "" {
		return nil, domainerrors.BadRequest("merchantId and terminalId are required")
	}

	sale, err := u.saleRepo.GetLatestByPair(ctx, merchantID, terminalID)
	if err == domainerrors.ErrNotFound {
		return nil, domainerrors.NotFound("No sale found for this terminal")
	}
	if err != nil {
		return nil, err
	}
	return entities.NewSaleResponse(sale), nil
}

// CoerceAmount converts whatever the terminal sent into a float. Missing or
// non-numeric input yields 0 rather than an error.
func CoerceAmount(v interface{}) float64 {
	switch a := v.(type) {
	case nil:
		return 0
	case float64:
		return a
	case int:
		return float64(a)
	case json.Number:
		f, err := a.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
