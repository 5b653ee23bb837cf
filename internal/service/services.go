package service

import (
	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/crypto"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/store"
	"github.com/MKhiriev/go-cred-pool/internal/validators"
	"github.com/MKhiriev/go-cred-pool/models"
)

// Services groups every service the transport layer depends on.
type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer. The credential service is wrapped by
// request validation, so transports never see an unchecked batch.
func NewServices(storages *store.Storages, sealer crypto.SecretSealer, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	credentialService := NewCredentialValidationService(cfg.Batch.MaxItems).
		Wrap(NewCredentialService(storages.CredentialRepository, sealer, validators.NewCredentialItemValidator(), logger))

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		CredentialService: credentialService,
		AppInfoService:    appInfoService,
	}, nil
}
