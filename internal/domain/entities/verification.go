package entities

import "github.com/volatiletech/null/v8"

// Verification correlates an OTP issuance with its later verification.
// State machine per workflow: NONE (no record) -> ISSUED -> VERIFIED.
type Verification struct {
	WorkflowID string      `json:"workflowId"`
	AppID      string      `json:"appId,omitempty"`
	OTP        string      `json:"otp"`
	IsVerified bool        `json:"isVerified"`
	SimNo      string      `json:"simNo,omitempty"`
	Latitude   null.String `json:"latitude,omitempty"`
	Longitude  null.String `json:"longitude,omitempty"`
}
