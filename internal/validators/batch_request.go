package validators

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to scope request validation.
const (
	// FieldItems targets the credential list of a batch (non-empty, bounded).
	FieldItems = "items"
	// FieldPriority targets the uniform batch priority or a single priority update.
	FieldPriority = "priority"
	// FieldRegion targets the optional batch region.
	FieldRegion = "region"
)

var priorityUpperBound = fmt.Sprintf("lte=%d", models.MaxPriority)

var (
	structValidate *validator.Validate
	once           sync.Once
)

// getValidator returns the process-wide go-playground validator.
func getValidator() *validator.Validate {
	once.Do(func() {
		structValidate = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidate
}

// RequestValidator implements [Validator] for request-wide rules of the
// admin API: BatchAddRequest, AddCredentialRequest and SetPriorityRequest.
type RequestValidator struct {
	validate *validator.Validate

	// maxItems bounds a batch; zero disables the bound.
	maxItems int
}

// NewRequestValidator constructs a RequestValidator that rejects batches with
// more than maxItems credentials. maxItems <= 0 means unbounded.
func NewRequestValidator(maxItems int) Validator {
	return &RequestValidator{
		validate: getValidator(),
		maxItems: maxItems,
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// are accepted.
//
// Returns ErrUnsupportedType if obj is not a supported request.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BatchAddRequest:
		return v.validateBatchAddRequest(ctx, value, fields...)
	case *models.BatchAddRequest:
		return v.validateBatchAddRequest(ctx, *value, fields...)
	case models.SetPriorityRequest:
		return v.validateSetPriorityRequest(ctx, value)
	case *models.SetPriorityRequest:
		return v.validateSetPriorityRequest(ctx, *value)
	case models.AddCredentialRequest:
		return v.validateAddCredentialRequest(ctx, value)
	case *models.AddCredentialRequest:
		return v.validateAddCredentialRequest(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

// validateBatchAddRequest checks the batch-level rules.
//
// Default validated fields: Items, Priority, Region.
func (v *RequestValidator) validateBatchAddRequest(ctx context.Context, request models.BatchAddRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldPriority, FieldRegion}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			if err := v.validate.VarCtx(ctx, request.Items, "required,min=1"); err != nil {
				return ErrEmptyBatch
			}
			if v.maxItems > 0 && len(request.Items) > v.maxItems {
				return fmt.Errorf("%w: got %d, at most %d allowed", ErrBatchTooLarge, len(request.Items), v.maxItems)
			}
		case FieldPriority:
			if err := v.validatePriority(ctx, request.Priority); err != nil {
				return err
			}
		case FieldRegion:
			if err := v.validateRegion(ctx, request.Region); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSetPriorityRequest(ctx context.Context, request models.SetPriorityRequest) error {
	return v.validatePriority(ctx, request.Priority)
}

// validateAddCredentialRequest checks the request-wide part of a single add.
// The credential itself is left to the item validator.
func (v *RequestValidator) validateAddCredentialRequest(ctx context.Context, request models.AddCredentialRequest) error {
	if err := v.validatePriority(ctx, request.Priority); err != nil {
		return err
	}
	return v.validateRegion(ctx, request.Region)
}

func (v *RequestValidator) validatePriority(ctx context.Context, priority int) error {
	if err := v.validate.VarCtx(ctx, priority, "gte=0"); err != nil {
		return ErrNegativePriority
	}
	if err := v.validate.VarCtx(ctx, priority, priorityUpperBound); err != nil {
		return ErrPriorityTooLarge
	}
	return nil
}

func (v *RequestValidator) validateRegion(ctx context.Context, region string) error {
	if err := v.validate.VarCtx(ctx, strings.TrimSpace(region), "omitempty,max=64,printascii"); err != nil {
		return ErrInvalidRegion
	}
	return nil
}
