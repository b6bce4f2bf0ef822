package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
)

type configRepoStub struct {
	getFn    func(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error)
	upsertFn func(ctx context.Context, cfg *entities.TerminalConfig) error
}

func (s *configRepoStub) Get(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error) {
	return s.getFn(ctx, merchantID, terminalID)
}

func (s *configRepoStub) Upsert(ctx context.Context, cfg *entities.TerminalConfig) error {
	return s.upsertFn(ctx, cfg)
}

func TestRegisterConfigAppliesDefaults(t *testing.T) {
	var persisted *entities.TerminalConfig
	repo := &configRepoStub{
		upsertFn: func(_ context.Context, cfg *entities.TerminalConfig) error {
			persisted = cfg
			return nil
		},
	}
	u := NewConfigUsecase(repo)

	got, err := u.RegisterConfig(context.Background(), ConfigInput{MerchantID: "MID1", TerminalID: "TID1"})
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, "STANDALONE", got.IntegrationMode)
	assert.Equal(t, "STANDALONE", got.IntegratedModeDisplayName)
	assert.Equal(t, "ONE_TO_ONE", got.IntegrationMappingType)
	assert.NotEmpty(t, got.Timestamp)
}

func TestRegisterConfigKeepsSuppliedValues(t *testing.T) {
	repo := &configRepoStub{
		upsertFn: func(_ context.Context, _ *entities.TerminalConfig) error { return nil },
	}
	u := NewConfigUsecase(repo)

	got, err := u.RegisterConfig(context.Background(), ConfigInput{
		MerchantID:                "MID1",
		TerminalID:                "TID1",
		IntegrationMode:           "INTEGRATED",
		IntegratedModeDisplayName: "Integrated Mode",
		IntegrationMappingType:    "ONE_TO_MANY",
	})
	require.NoError(t, err)
	assert.Equal(t, "INTEGRATED", got.IntegrationMode)
	assert.Equal(t, "Integrated Mode", got.IntegratedModeDisplayName)
	assert.Equal(t, "ONE_TO_MANY", got.IntegrationMappingType)
}

func TestGetConfigPassesThroughNotFound(t *testing.T) {
	repo := &configRepoStub{
		getFn: func(_ context.Context, _, _ string) (*entities.TerminalConfig, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	u := NewConfigUsecase(repo)

	_, err := u.GetConfig(context.Background(), "MID1", "TID1")
	assert.Equal(t, domainerrors.ErrNotFound, err)
}
