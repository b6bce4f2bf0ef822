package usecases

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/domain/repositories"
)

// DeploymentUsecase handles terminal deployment registration and lookup
type DeploymentUsecase struct {
	deploymentRepo repositories.DeploymentRepository
}

// NewDeploymentUsecase creates a new deployment usecase
func NewDeploymentUsecase(deploymentRepo repositories.DeploymentRepository) *DeploymentUsecase {
	return &DeploymentUsecase{deploymentRepo: deploymentRepo}
}

// DeploymentInput represents input for deployment registration
type DeploymentInput struct {
	SimNo       string
	MerchantID  string
	TerminalID  string
	PosDeviceID string
	AppID       string
	Status      string
}

// RegisterDeployment upserts the deployment for the terminal. The candidate
// workflow ID and application number passed down are only applied when the
// terminal is seen for the first time.
func (u *DeploymentUsecase) RegisterDeployment(ctx context.Context, input DeploymentInput) (*entities.Deployment, error) {
	if input.TerminalID == "" {
		return nil, domainerrors.BadRequest("terminalId is required")
	}

	status := input.Status
	if status == "" {
		status = entities.DeploymentStatusDeployed
	}

	dep := &entities.Deployment{
		SimNo:             input.SimNo,
		MerchantID:        input.MerchantID,
		TerminalID:        input.TerminalID,
		PosDeviceID:       input.PosDeviceID,
		AppID:             input.AppID,
		Status:            status,
		WorkflowID:        newWorkflowID(),
		ApplicationNumber: newApplicationNumber(),
	}
	return u.deploymentRepo.Upsert(ctx, dep)
}

// FetchDeployment looks up a deployment by terminal ID, merchant ID or SIM
// number
func (u *DeploymentUsecase) FetchDeployment(ctx context.Context, identifier string) (*entities.Deployment, error) {
	dep, err := u.deploymentRepo.GetByIdentifier(ctx, identifier)
	if err == domainerrors.ErrNotFound {
		return nil, domainerrors.NotFound("No deployment found for this terminal, register it first")
	}
	if err != nil {
		return nil, err
	}
	return dep, nil
}

func newWorkflowID() string {
	return "WF-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func newApplicationNumber() string {
	return "APP-" + strconv.Itoa(rand.Intn(1000))
}
