package entities

import "github.com/google/uuid"

// DeploymentStatusDeployed is the status assigned on registration
const DeploymentStatusDeployed = "DEPLOYED"

// Deployment represents the active deployment of a physical terminal.
// WorkflowID and ApplicationNumber are generated once on insert and never
// change on later updates.
type Deployment struct {
	ID                uuid.UUID `json:"id"`
	SimNo             string    `json:"simNo"`
	MerchantID        string    `json:"merchantId"`
	TerminalID        string    `json:"terminalId"`
	PosDeviceID       string    `json:"posDeviceId"`
	AppID             string    `json:"appId"`
	Status            string    `json:"status"`
	WorkflowID        string    `json:"workflowId"`
	ApplicationNumber string    `json:"applicationNumber"`
}
