package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/usecases"
)

type deploymentServiceStub struct {
	registerFn func(ctx context.Context, input usecases.DeploymentInput) (*entities.Deployment, error)
	fetchFn    func(ctx context.Context, identifier string) (*entities.Deployment, error)
}

func (s *deploymentServiceStub) RegisterDeployment(ctx context.Context, input usecases.DeploymentInput) (*entities.Deployment, error) {
	return s.registerFn(ctx, input)
}

func (s *deploymentServiceStub) FetchDeployment(ctx context.Context, identifier string) (*entities.Deployment, error) {
	return s.fetchFn(ctx, identifier)
}

func newDeploymentRouter(stub *deploymentServiceStub) *gin.Engine {
	h := NewDeploymentHandler(stub)
	r := gin.New()
	r.POST("/internal/deploy", h.RegisterDeployment)
	r.POST("/v1/deploy/:terminalSNo", h.RegisterBySerial)
	r.GET("/v1/deploy/:terminalSNo", h.FetchDeployment)
	return r
}

func TestRegisterDeploymentHandler(t *testing.T) {
	stub := &deploymentServiceStub{
		registerFn: func(_ context.Context, input usecases.DeploymentInput) (*entities.Deployment, error) {
			return &entities.Deployment{
				TerminalID:        input.TerminalID,
				Status:            "DEPLOYED",
				WorkflowID:        "WF-1",
				ApplicationNumber: "APP-1",
			}, nil
		},
	}
	r := newDeploymentRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/internal/deploy", gin.H{"terminalId": "TID1", "simNo": "SIM1"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "TID1", body["terminalId"])
	assert.Equal(t, "WF-1", body["workflowId"])
	assert.Equal(t, "APP-1", body["applicationNumber"])
}

func TestRegisterDeploymentHandlerMissingTerminal(t *testing.T) {
	stub := &deploymentServiceStub{
		registerFn: func(_ context.Context, input usecases.DeploymentInput) (*entities.Deployment, error) {
			return nil, domainerrors.BadRequest("terminalId is required")
		},
	}
	r := newDeploymentRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/internal/deploy", gin.H{"simNo": "SIM1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "terminalId is required", decodeBody(t, w)["message"])
}

func TestRegisterBySerialHandler(t *testing.T) {
	var received usecases.DeploymentInput
	stub := &deploymentServiceStub{
		registerFn: func(_ context.Context, input usecases.DeploymentInput) (*entities.Deployment, error) {
			received = input
			return &entities.Deployment{TerminalID: input.TerminalID, Status: "DEPLOYED"}, nil
		},
	}
	r := newDeploymentRouter(stub)

	w := performRequest(t, r, http.MethodPost, "/v1/deploy/SN123", gin.H{"simNo": "SIM1", "terminalId": "IGNORED"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SN123", received.TerminalID, "path serial overrides the body terminalId")
	assert.Equal(t, "SIM1", received.SimNo)
}

func TestRegisterBySerialHandlerEmptyBody(t *testing.T) {
	stub := &deploymentServiceStub{
		registerFn: func(_ context.Context, input usecases.DeploymentInput) (*entities.Deployment, error) {
			return &entities.Deployment{TerminalID: input.TerminalID, Status: "DEPLOYED"}, nil
		},
	}
	h := NewDeploymentHandler(stub)
	r := gin.New()
	r.POST("/v1/deploy/:terminalSNo", h.RegisterBySerial)

	// No body at all must not fail binding.
	req := httptest.NewRequest(http.MethodPost, "/v1/deploy/SN123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SN123", decodeBody(t, w)["terminalId"])
}

func TestFetchDeploymentHandler(t *testing.T) {
	stub := &deploymentServiceStub{
		fetchFn: func(_ context.Context, identifier string) (*entities.Deployment, error) {
			return &entities.Deployment{TerminalID: identifier, Status: "DEPLOYED", WorkflowID: "WF-1"}, nil
		},
	}
	r := newDeploymentRouter(stub)

	w := performRequest(t, r, http.MethodGet, "/v1/deploy/SN123", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SN123", decodeBody(t, w)["terminalId"])
}

func TestFetchDeploymentHandlerNotFound(t *testing.T) {
	stub := &deploymentServiceStub{
		fetchFn: func(_ context.Context, _ string) (*entities.Deployment, error) {
			return nil, domainerrors.NotFound("No deployment found for this terminal, register it first")
		},
	}
	r := newDeploymentRouter(stub)

	w := performRequest(t, r, http.MethodGet, "/v1/deploy/SN404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "FAILED", body["code"])
	assert.Equal(t, "No deployment found for this terminal, register it first", body["message"])
}
