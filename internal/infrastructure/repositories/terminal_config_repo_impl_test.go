package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
)

func TestTerminalConfigRepository_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	createTerminalConfigTable(t, db)
	repo := NewTerminalConfigRepository(db)

	_, err := repo.Get(context.Background(), "MID1", "TID1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestTerminalConfigRepository_UpsertCreatesThenGets(t *testing.T) {
	db := newTestDB(t)
	createTerminalConfigTable(t, db)
	repo := NewTerminalConfigRepository(db)

	cfg := &entities.TerminalConfig{
		MerchantID:                "MID1",
		TerminalID:                "TID1",
		IntegrationMode:           entities.DefaultIntegrationMode,
		IntegratedModeDisplayName: entities.DefaultIntegrationDisplay,
		IntegrationMappingType:    entities.DefaultIntegrationMapping,
		Timestamp:                 "2026-01-01T00:00:00Z",
	}
	require.NoError(t, repo.Upsert(context.Background(), cfg))

	got, err := repo.Get(context.Background(), "MID1", "TID1")
	require.NoError(t, err)
	assert.Equal(t, "STANDALONE", got.IntegrationMode)
	assert.Equal(t, "ONE_TO_ONE", got.IntegrationMappingType)
	assert.Equal(t, "2026-01-01T00:00:00Z", got.Timestamp)
}

func TestTerminalConfigRepository_UpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	createTerminalConfigTable(t, db)
	repo := NewTerminalConfigRepository(db)
	ctx := context.Background()

	first := &entities.TerminalConfig{
		MerchantID:                "MID1",
		TerminalID:                "TID1",
		IntegrationMode:           "STANDALONE",
		IntegratedModeDisplayName: "STANDALONE",
		IntegrationMappingType:    "ONE_TO_ONE",
		Timestamp:                 "2026-01-01T00:00:00Z",
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entities.TerminalConfig{
		MerchantID:                "MID1",
		TerminalID:                "TID1",
		IntegrationMode:           "INTEGRATED",
		IntegratedModeDisplayName: "Integrated Mode",
		IntegrationMappingType:    "ONE_TO_MANY",
		Timestamp:                 "2026-02-01T00:00:00Z",
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, "MID1", "TID1")
	require.NoError(t, err)
	assert.Equal(t, "INTEGRATED", got.IntegrationMode)
	assert.Equal(t, "Integrated Mode", got.IntegratedModeDisplayName)
	assert.Equal(t, "ONE_TO_MANY", got.IntegrationMappingType)
	assert.Equal(t, "2026-02-01T00:00:00Z", got.Timestamp)

	var count int64
	require.NoError(t, db.Table("terminal_configs").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTerminalConfigRepository_GetIsExactMatch(t *testing.T) {
	db := newTestDB(t)
	createTerminalConfigTable(t, db)
	repo := NewTerminalConfigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.TerminalConfig{
		MerchantID:      "MID1",
		TerminalID:      "TID1",
		IntegrationMode: "STANDALONE",
	}))

	// Config lookup does not tolerate swapped identifiers.
	_, err := repo.Get(ctx, "TID1", "MID1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
