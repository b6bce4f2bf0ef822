package entities

import "github.com/google/uuid"

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusPending SaleStatus = "PENDING"
	SaleStatusSuccess SaleStatus = "SUCCESS"
)

// Sale represents a sale registration awaiting consumption by a terminal
type Sale struct {
	ID                            uuid.UUID  `json:"id"`
	MerchantID                    string     `json:"merchantId"`
	TerminalID                    string     `json:"terminalId"`
	PosDeviceID                   string     `json:"posDeviceId"`
	ShortOrderID                  string     `json:"shortOrderId"`
	Amount                        float64    `json:"amount"`
	AllowedInstruments            []string   `json:"allowedInstruments"`
	AutoAccept                    bool       `json:"autoAccept"`
	AutoAcceptWindowExpirySeconds int        `json:"autoAcceptWindowExpirySeconds"`
	PregeneratedDQRTransactionID  string     `json:"pregeneratedDQRTransactionId"`
	PregeneratedCardTransactionID string     `json:"pregeneratedCardTransactionId"`
	TransactionID                 string     `json:"transactionId"`
	CreatedAt                     string     `json:"createdAt"`
	CreationTimestamp             int64      `json:"creationTimestamp"`
	Status                        SaleStatus `json:"status"`
	InvoiceNumber                 string     `json:"invoiceNumber,omitempty"`
}

// SaleResponse is the envelope returned by the sale endpoints
type SaleResponse struct {
	Code                          string   `json:"code"`
	Message                       string   `json:"message"`
	MerchantID                    string   `json:"merchantId"`
	TerminalID                    string   `json:"terminalId"`
	PosDeviceID                   string   `json:"posDeviceId"`
	ShortOrderID                  string   `json:"shortOrderId"`
	Amount                        float64  `json:"amount"`
	AllowedInstruments            []string `json:"allowedInstruments"`
	AutoAccept                    bool     `json:"autoAccept"`
	AutoAcceptWindowExpirySeconds int      `json:"autoAcceptWindowExpirySeconds"`
	PregeneratedDQRTransactionID  string   `json:"pregeneratedDQRTransactionId"`
	PregeneratedCardTransactionID string   `json:"pregeneratedCardTransactionId"`
	TransactionID                 string   `json:"transactionId"`
	CreationTimestamp             int64    `json:"creationTimestamp"`
	CreatedAt                     string   `json:"createdAt"`
	Data                          *Sale    `json:"data"`
}

// NewSaleResponse wraps a persisted sale in the response envelope
func NewSaleResponse(sale *Sale) *SaleResponse {
	instruments := sale.AllowedInstruments
	if instruments == nil {
		instruments = []string{}
	}
	return &SaleResponse{
		Code:                          "SUCCESS",
		Message:                       "Sale Processed Successfully",
		MerchantID:                    sale.MerchantID,
		TerminalID:                    sale.TerminalID,
		PosDeviceID:                   sale.PosDeviceID,
		ShortOrderID:                  sale.ShortOrderID,
		Amount:                        sale.Amount,
		AllowedInstruments:            instruments,
		AutoAccept:                    sale.AutoAccept,
		AutoAcceptWindowExpirySeconds: sale.AutoAcceptWindowExpirySeconds,
		PregeneratedDQRTransactionID:  sale.PregeneratedDQRTransactionID,
		PregeneratedCardTransactionID: sale.PregeneratedCardTransactionID,
		TransactionID:                 sale.TransactionID,
		CreationTimestamp:             sale.CreationTimestamp,
		CreatedAt:                     sale.CreatedAt,
		Data:                          sale,
	}
}
