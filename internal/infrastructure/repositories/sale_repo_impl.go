package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/infrastructure/models"
)

// SaleRepositoryImpl implements SaleRepository
type SaleRepositoryImpl struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepositoryImpl {
	return &SaleRepositoryImpl{db: db}
}

// UpsertPending replaces the open PENDING sale for the canonical pair, or
// inserts a new one. The write is a single INSERT targeting the partial
// unique index on open PENDING sales (idx_sales_pending_pair), so two racing
// registrations cannot both insert: the loser's INSERT turns into an update
// of the winner's row.
func (r *SaleRepositoryImpl) UpsertPending(ctx context.Context, sale *entities.Sale) (*entities.Sale, error) {
	pairKey := entities.PairKey(sale.MerchantID, sale.TerminalID)

	m := r.toModel(sale, pairKey)
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pair_key"}},
		// Must be spelled out literally so the planner matches it against the
		// partial index predicate; a bound parameter would not be inferred.
		TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("status = 'PENDING'")}},
		DoUpdates: clause.AssignmentColumns([]string{
			"merchant_id", "terminal_id", "pos_device_id", "short_order_id",
			"amount", "allowed_instruments", "auto_accept",
			"auto_accept_window_expiry_seconds",
			"pregenerated_dqr_transaction_id", "pregenerated_card_transaction_id",
			"transaction_id", "created_at_iso", "creation_timestamp",
			"invoice_number", "updated_at",
		}),
	}).Create(&m).Error
	if err != nil {
		return nil, err
	}

	// Re-read by transaction id: on the update path the winner's row now
	// carries ours, so this finds the surviving row either way.
	var stored models.Sale
	if err := r.db.WithContext(ctx).
		Where("pair_key = ? AND transaction_id = ?", pairKey, m.TransactionID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&stored), nil
}

// GetLatestByPair returns the newest sale matching the pair in either order,
// regardless of status.
func (r *SaleRepositoryImpl) GetLatestByPair(ctx context.Context, merchantID, terminalID string) (*entities.Sale, error) {
	pairKey := entities.PairKey(merchantID, terminalID)

	var m models.Sale
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", pairKey).
		Order("creation_timestamp DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *SaleRepositoryImpl) toModel(sale *entities.Sale, pairKey string) models.Sale {
	instruments, _ := json.Marshal(sale.AllowedInstruments)
	return models.Sale{
		MerchantID:                    sale.MerchantID,
		TerminalID:                    sale.TerminalID,
		PairKey:                       pairKey,
		PosDeviceID:                   sale.PosDeviceID,
		ShortOrderID:                  sale.ShortOrderID,
		Amount:                        sale.Amount,
		AllowedInstruments:            string(instruments),
		AutoAccept:                    sale.AutoAccept,
		AutoAcceptWindowExpirySeconds: sale.AutoAcceptWindowExpirySeconds,
		PregeneratedDQRTransactionID:  sale.PregeneratedDQRTransactionID,
		PregeneratedCardTransactionID: sale.PregeneratedCardTransactionID,
		TransactionID:                 sale.TransactionID,
		CreatedAtISO:                  sale.CreatedAt,
		CreationTimestamp:             sale.CreationTimestamp,
		Status:                        string(sale.Status),
		InvoiceNumber:                 sale.InvoiceNumber,
		UpdatedAt:                     time.Now(),
	}
}

func (r *SaleRepositoryImpl) toEntity(m *models.Sale) *entities.Sale {
	var instruments []string
	if m.AllowedInstruments != "" {
		_ = json.Unmarshal([]byte(m.AllowedInstruments), &instruments)
	}
	return &entities.Sale{
		ID:                            m.ID,
		MerchantID:                    m.MerchantID,
		TerminalID:                    m.TerminalID,
		PosDeviceID:                   m.PosDeviceID,
		ShortOrderID:                  m.ShortOrderID,
		Amount:                        m.Amount,
		AllowedInstruments:            instruments,
		AutoAccept:                    m.AutoAccept,
		AutoAcceptWindowExpirySeconds: m.AutoAcceptWindowExpirySeconds,
		PregeneratedDQRTransactionID:  m.PregeneratedDQRTransactionID,
		PregeneratedCardTransactionID: m.PregeneratedCardTransactionID,
		TransactionID:                 m.TransactionID,
		CreatedAt:                     m.CreatedAtISO,
		CreationTimestamp:             m.CreationTimestamp,
		Status:                        entities.SaleStatus(m.Status),
		InvoiceNumber:                 m.InvoiceNumber,
	}
}
