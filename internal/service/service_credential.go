// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-pool/internal/crypto"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/store"
	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
)

// credentialService is the concrete implementation of CredentialService.
// Secrets are sealed before they reach the repository, and refresh tokens
// are identified by their fingerprint.
type credentialService struct {
	repository    store.CredentialRepository
	sealer        crypto.SecretSealer
	itemValidator validators.ItemValidator

	logger *logger.Logger
}

// NewCredentialService constructs the unvalidated CredentialService. Callers
// should wrap it with [NewCredentialValidationService].
func NewCredentialService(repository store.CredentialRepository, sealer crypto.SecretSealer, itemValidator validators.ItemValidator, logger *logger.Logger) CredentialService {
	return &credentialService{
		repository:    repository,
		sealer:        sealer,
		itemValidator: itemValidator,
		logger:        logger,
	}
}

// BatchAdd processes the items one by one, in input order. Each item is
// validated, sealed and stored on its own; whatever happens to one line never
// stops the next. Nothing is retried.
func (s *credentialService) BatchAdd(ctx context.Context, request models.BatchAddRequest) (models.BatchAddResult, error) {
	log := logger.FromContext(ctx)

	outcomes := make([]models.ItemOutcome, 0, len(request.Items))
	for i, raw := range request.Items {
		outcome := s.processItem(ctx, i, raw, request.Priority, request.Region)

		event := log.Debug().Int("line", outcome.Line).Bool("success", outcome.Success)
		if outcome.Success {
			event.Int64("credentialId", *outcome.CredentialID).Msg("credential added")
		} else {
			event.Str("reason", outcome.Error).Msg("credential rejected")
		}

		outcomes = append(outcomes, outcome)
	}

	result := Aggregate(outcomes)
	log.Info().
		Int("total", result.Total).
		Int("successCount", result.SuccessCount).
		Int("failedCount", result.FailedCount).
		Msg("batch processed")

	return result, nil
}

func (s *credentialService) processItem(ctx context.Context, index int, raw models.RawCredentialItem, priority int, region string) models.ItemOutcome {
	line := index + 1

	item, err := s.itemValidator.ValidateItem(index, raw)
	if err != nil {
		return models.NewFailureOutcome(line, err.Error())
	}

	// a cancelled request still yields an outcome for every remaining line
	if ctx.Err() != nil {
		return models.NewFailureOutcome(line, ReasonStoreUnavailable)
	}

	credential, err := s.sealItem(item, priority, region)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("line", line).Msg("error sealing credential")
		return models.NewFailureOutcome(line, ReasonSaveFailed)
	}

	id, err := s.repository.Create(ctx, credential)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("line", line).Msg("error saving credential")
		return models.NewFailureOutcome(line, persistenceFailureReason(err))
	}

	return models.NewSuccessOutcome(line, id)
}

func (s *credentialService) sealItem(item models.CredentialItem, priority int, region string) (models.Credential, error) {
	sealedToken, err := s.sealer.Seal(item.RefreshToken)
	if err != nil {
		return models.Credential{}, fmt.Errorf("seal refresh token: %w", err)
	}

	var sealedSecret string
	if item.ClientSecret != "" {
		if sealedSecret, err = s.sealer.Seal(item.ClientSecret); err != nil {
			return models.Credential{}, fmt.Errorf("seal client secret: %w", err)
		}
	}

	return models.Credential{
		Provider:     item.Provider,
		RefreshToken: sealedToken,
		ClientID:     item.ClientID,
		ClientSecret: sealedSecret,
		Fingerprint:  s.sealer.Fingerprint(item.RefreshToken),
		Priority:     priority,
		Region:       region,
	}, nil
}

// Add runs one credential through the same validation and sealing as a
// batch line. An invalid item yields ErrInvalidDataProvided; store errors are
// returned wrapped so the transport can tell a duplicate from an outage.
func (s *credentialService) Add(ctx context.Context, request models.AddCredentialRequest) (models.AddCredentialResponse, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemValidator.ValidateItem(0, request.Item())
	if err != nil {
		return models.AddCredentialResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	credential, err := s.sealItem(item, request.Priority, strings.TrimSpace(request.Region))
	if err != nil {
		log.Err(err).Msg("error sealing credential")
		return models.AddCredentialResponse{}, err
	}

	id, err := s.repository.Create(ctx, credential)
	if err != nil {
		log.Err(err).Msg("error saving credential")
		return models.AddCredentialResponse{}, fmt.Errorf("add credential: %w", err)
	}

	log.Info().Int64("credentialId", id).Str("provider", item.Provider.String()).Msg("credential added")

	return models.AddCredentialResponse{
		Success:      true,
		Message:      fmt.Sprintf("credential %d added", id),
		CredentialID: id,
	}, nil
}

func persistenceFailureReason(err error) string {
	switch {
	case errors.Is(err, store.ErrCredentialAlreadyExists):
		return ReasonDuplicateCredential
	case errors.Is(err, store.ErrStoreUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return ReasonStoreUnavailable
	default:
		return ReasonSaveFailed
	}
}

// ListCredentials returns the public view of every stored credential.
func (s *credentialService) ListCredentials(ctx context.Context) (models.CredentialsStatusResponse, error) {
	credentials, err := s.repository.List(ctx)
	if err != nil {
		return models.CredentialsStatusResponse{}, fmt.Errorf("list credentials: %w", err)
	}

	response := models.CredentialsStatusResponse{
		Total:       len(credentials),
		Credentials: make([]models.CredentialStatusItem, 0, len(credentials)),
	}
	for _, c := range credentials {
		if !c.Disabled {
			response.Available++
		}
		response.Credentials = append(response.Credentials, c.StatusItem())
	}

	return response, nil
}

func (s *credentialService) SetPriority(ctx context.Context, id int64, request models.SetPriorityRequest) error {
	if err := s.repository.SetPriority(ctx, id, request.Priority); err != nil {
		return fmt.Errorf("set priority of credential %d: %w", id, err)
	}
	return nil
}

func (s *credentialService) SetDisabled(ctx context.Context, id int64, request models.SetDisabledRequest) error {
	if err := s.repository.SetDisabled(ctx, id, request.Disabled); err != nil {
		return fmt.Errorf("set disabled of credential %d: %w", id, err)
	}
	return nil
}

func (s *credentialService) DeleteDisabled(ctx context.Context) (models.BatchDeleteDisabledResponse, error) {
	ids, err := s.repository.DeleteDisabled(ctx)
	if err != nil {
		return models.BatchDeleteDisabledResponse{}, fmt.Errorf("delete disabled credentials: %w", err)
	}

	logger.FromContext(ctx).Info().Ints64("ids", ids).Msg("disabled credentials deleted")

	return models.BatchDeleteDisabledResponse{
		DeletedCount: len(ids),
		DeletedIDs:   ids,
	}, nil
}
