package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
)

// credentialValidationService rejects request-wide problems before the
// wrapped service sees them. Per-item rules are left to the batch processor,
// where they become line failures.
type credentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

// NewCredentialValidationService returns a wrapper limiting batches to
// maxItems credentials (maxItems <= 0 means unbounded).
func NewCredentialValidationService(maxItems int) CredentialServiceWrapper {
	return &credentialValidationService{
		validator: validators.NewRequestValidator(maxItems),
	}
}

func (v *credentialValidationService) BatchAdd(ctx context.Context, request models.BatchAddRequest) (models.BatchAddResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.BatchAddResult{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.BatchAdd(ctx, request)
}

func (v *credentialValidationService) Add(ctx context.Context, request models.AddCredentialRequest) (models.AddCredentialResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AddCredentialResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.Add(ctx, request)
}

func (v *credentialValidationService) ListCredentials(ctx context.Context) (models.CredentialsStatusResponse, error) {
	return v.inner.ListCredentials(ctx)
}

func (v *credentialValidationService) SetPriority(ctx context.Context, id int64, request models.SetPriorityRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: credential id must be positive", ErrInvalidRequest)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.SetPriority(ctx, id, request)
}

func (v *credentialValidationService) SetDisabled(ctx context.Context, id int64, request models.SetDisabledRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: credential id must be positive", ErrInvalidRequest)
	}

	return v.inner.SetDisabled(ctx, id, request)
}

func (v *credentialValidationService) DeleteDisabled(ctx context.Context) (models.BatchDeleteDisabledResponse, error) {
	return v.inner.DeleteDisabled(ctx)
}

func (v *credentialValidationService) Wrap(wrapped CredentialService) CredentialService {
	v.inner = wrapped
	return v
}
