package usecases

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/volatiletech/null/v8"
	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/domain/repositories"
)

const defaultOTPDigits = 6

// VerificationUsecase drives the OTP state machine per workflow:
// NONE -> ISSUED (send/dispatch) -> VERIFIED (verify).
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	otpDigits        int
}

// NewVerificationUsecase creates a new verification usecase. digits controls
// the generated code length; values below 4 fall back to the default.
func NewVerificationUsecase(verificationRepo repositories.VerificationRepository, digits int) *VerificationUsecase {
	if digits < 4 {
		digits = defaultOTPDigits
	}
	return &VerificationUsecase{verificationRepo: verificationRepo, otpDigits: digits}
}

// OTPSendInput represents input for OTP issuance
type OTPSendInput struct {
	WorkflowID string
	AppID      string
	SimNo      string
	Latitude   string
	Longitude  string
}

// SendOTP issues a fresh code for the workflow (NONE/ISSUED -> ISSUED). The
// code is never transmitted anywhere; it is observable only via Dispatch.
func (u *VerificationUsecase) SendOTP(ctx context.Context, input OTPSendInput) (*entities.Verification, error) {
	if input.WorkflowID == "" {
		return nil, domainerrors.BadRequest("workflowId is required")
	}

	v := &entities.Verification{
		WorkflowID: input.WorkflowID,
		AppID:      input.AppID,
		OTP:        u.generateCode(),
		IsVerified: false,
		SimNo:      input.SimNo,
		Latitude:   null.NewString(input.Latitude, input.Latitude != ""),
		Longitude:  null.NewString(input.Longitude, input.Longitude != ""),
	}
	if err := u.verificationRepo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Dispatch returns the current code for the workflow. A missing record is
// auto-issued instead of failing, so verification can proceed even when send
// was skipped.
func (u *VerificationUsecase) Dispatch(ctx context.Context, workflowID string) (*entities.Verification, error) {
	if workflowID == "" {
		return nil, domainerrors.BadRequest("workflowId is required")
	}

	v, err := u.verificationRepo.GetByWorkflowID(ctx, workflowID)
	if err == domainerrors.ErrNotFound {
		return u.SendOTP(ctx, OTPSendInput{WorkflowID: workflowID})
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Verify checks the submitted code and transitions ISSUED -> VERIFIED on a
// match. Re-verifying with the same correct code succeeds again; the state
// never leaves VERIFIED.
func (u *VerificationUsecase) Verify(ctx context.Context, workflowID, submittedCode string) error {
	v, err := u.verificationRepo.GetByWorkflowID(ctx, workflowID)
	if err == domainerrors.ErrNotFound {
		return domainerrors.BadRequestCode(domainerrors.CodeInvalidWorkflowID, "unknown workflow")
	}
	if err != nil {
		return err
	}

	if submittedCode == "" || submittedCode != v.OTP {
		return domainerrors.BadRequestCode(domainerrors.CodeInvalidOTP, "incorrect verification code")
	}
	return u.verificationRepo.MarkVerified(ctx, workflowID)
}

// ForceVerify marks the workflow verified without checking a code. A missing
// record is not an error; the loose internal endpoint reports success either
// way.
func (u *VerificationUsecase) ForceVerify(ctx context.Context, workflowID string) error {
	err := u.verificationRepo.MarkVerified(ctx, workflowID)
	if err == domainerrors.ErrNotFound {
		return nil
	}
	return err
}

func (u *VerificationUsecase) generateCode() string {
	limit := int(math.Pow10(u.otpDigits))
	return fmt.Sprintf("%0*d", u.otpDigits, rand.Intn(limit))
}
