package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-pool/models"
)

// Field names of a raw credential item.
const (
	FieldRefreshToken = "refreshToken"
	FieldProvider     = "provider"
	FieldClientID     = "clientId"
	FieldClientSecret = "clientSecret"
)

// ItemError is the validation failure of a single line. It is carried as
// data in the batch result; Error returns the human-readable reason.
type ItemError struct {
	// Line is the 1-based position of the item in the submitted batch.
	Line int

	// Err is the reason. It wraps one of the per-item sentinels
	// (ErrMissingRefreshToken, ErrInvalidProvider, ...).
	Err error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	return e.Err.Error()
}

// Unwrap allows errors.Is against the per-item sentinels.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// providerRule lists the fields a provider variant requires on top of
// refreshToken, and the reason reported when any of them is missing.
type providerRule struct {
	required []string
	missing  error
}

// providerRules is keyed by the effective provider. Adding a provider means
// adding one entry here and one value to models.Providers.
var providerRules = map[models.Provider]providerRule{
	models.ProviderBuilderID: {
		required: []string{FieldClientID, FieldClientSecret},
		missing:  ErrBuilderIDClientIDRequired,
	},
	models.ProviderGithub: {},
	models.ProviderGoogle: {},
}

// CredentialItemValidator implements [ItemValidator] with the provider rules
// in providerRules.
type CredentialItemValidator struct{}

// NewCredentialItemValidator returns the item validator shared by the server
// and the client pre-check.
func NewCredentialItemValidator() ItemValidator {
	return &CredentialItemValidator{}
}

// ValidateItem applies the rules in order and stops at the first failure:
//  1. the item is a JSON object with a non-empty string refreshToken;
//  2. provider, if set, is one of models.Providers;
//  3. the effective provider (default BuilderId) gets its required fields.
func (v *CredentialItemValidator) ValidateItem(index int, raw models.RawCredentialItem) (models.CredentialItem, error) {
	line := index + 1

	fields, err := decodeItemFields(raw)
	if err != nil {
		return models.CredentialItem{}, &ItemError{Line: line, Err: err}
	}

	refreshToken, ok := stringField(fields, FieldRefreshToken)
	if !ok {
		return models.CredentialItem{}, &ItemError{Line: line, Err: ErrMissingRefreshToken}
	}

	provider, err := effectiveProvider(fields)
	if err != nil {
		return models.CredentialItem{}, &ItemError{Line: line, Err: err}
	}

	rule := providerRules[provider]
	for _, name := range rule.required {
		if _, ok := stringField(fields, name); !ok {
			return models.CredentialItem{}, &ItemError{Line: line, Err: rule.missing}
		}
	}

	clientID, _ := stringField(fields, FieldClientID)
	clientSecret, _ := stringField(fields, FieldClientSecret)

	return models.CredentialItem{
		RefreshToken: refreshToken,
		Provider:     provider,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}, nil
}

func decodeItemFields(raw models.RawCredentialItem) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrItemNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, ErrItemNotObject
	}

	return fields, nil
}

// stringField returns the trimmed value of a string field. ok is false when
// the field is absent, null, not a string, or blank.
func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, found := fields[name]
	if !found {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	value = strings.TrimSpace(value)
	return value, value != ""
}

// effectiveProvider resolves the provider of an item. An absent, null or
// empty provider means models.DefaultProvider.
func effectiveProvider(fields map[string]json.RawMessage) (models.Provider, error) {
	raw, found := fields[FieldProvider]
	if !found || isJSONNull(raw) {
		return models.DefaultProvider, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", invalidProviderError(string(bytes.TrimSpace(raw)))
	}
	if name == "" {
		return models.DefaultProvider, nil
	}

	provider := models.Provider(name)
	if !provider.IsValid() {
		return "", invalidProviderError(fmt.Sprintf("%q", name))
	}

	return provider, nil
}

func invalidProviderError(got string) error {
	allowed := make([]string, 0, len(models.Providers))
	for _, p := range models.Providers {
		allowed = append(allowed, p.String())
	}

	return fmt.Errorf("%w %s, allowed values: %s", ErrInvalidProvider, got, strings.Join(allowed, ", "))
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
