// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"time"
)

// Provider identifies the authentication provider a refresh token was issued by.
// Values are compared case-sensitively against the wire representation.
type Provider string

const (
	// ProviderBuilderID is the AWS Builder ID (IdC) flow. Tokens from this
	// provider can only be refreshed together with an OIDC client id/secret.
	ProviderBuilderID Provider = "BuilderId"

	// ProviderGithub is the social login flow backed by GitHub.
	ProviderGithub Provider = "Github"

	// ProviderGoogle is the social login flow backed by Google.
	ProviderGoogle Provider = "Google"
)

// DefaultProvider is the effective provider of an item that does not name one.
const DefaultProvider = ProviderBuilderID

// Providers lists every recognized provider in the order it is reported to
// callers in validation messages.
var Providers = []Provider{ProviderBuilderID, ProviderGithub, ProviderGoogle}

// String implements [fmt.Stringer].
func (p Provider) String() string {
	return string(p)
}

// IsValid reports whether p is one of [Providers].
func (p Provider) IsValid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

// CredentialItem is a structurally valid credential taken from a batch.
// It is produced by the item validator and is the only form of an item that
// reaches persistence.
type CredentialItem struct {
	RefreshToken string   `json:"refreshToken"`
	Provider     Provider `json:"provider"`
	ClientID     string   `json:"clientId,omitempty"`
	ClientSecret string   `json:"clientSecret,omitempty"`
}

// Credential is a persisted credential record.
//
// RefreshToken and ClientSecret hold sealed (encrypted, base64) values once
// the record has passed through the service layer; plaintext never reaches
// the store.
type Credential struct {
	// ID is the store-assigned identifier returned to callers as credentialId.
	ID int64

	Provider     Provider
	RefreshToken string
	ClientID     string
	ClientSecret string

	// Fingerprint is a keyed hash of the plaintext refresh token. The store
	// enforces its uniqueness, which is how duplicate tokens are detected.
	Fingerprint string

	// Priority orders credentials for use; lower values are used first.
	Priority int

	// Region is the optional AWS region the credential is bound to.
	Region string

	Disabled  bool
	CreatedAt time.Time
}

// CredentialStatusItem is the public, secret-free view of a stored credential.
type CredentialStatusItem struct {
	ID        int64     `json:"id"`
	Priority  int       `json:"priority"`
	Disabled  bool      `json:"disabled"`
	Provider  Provider  `json:"provider"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CredentialsStatusResponse lists every stored credential together with
// summary counters.
type CredentialsStatusResponse struct {
	// Total is the number of stored credentials.
	Total int `json:"total"`

	// Available is the number of credentials that are not disabled.
	Available int `json:"available"`

	Credentials []CredentialStatusItem `json:"credentials"`
}

// MaxPriority is the largest priority the store's INTEGER column holds.
const MaxPriority = math.MaxInt32

// SetPriorityRequest changes the priority of a single credential.
type SetPriorityRequest struct {
	Priority int `json:"priority"`
}

// AddCredentialRequest adds one credential outside of a batch. The
// credential fields follow the same rules as a batch item.
type AddCredentialRequest struct {
	RefreshToken string   `json:"refreshToken"`
	Provider     Provider `json:"provider,omitempty"`
	ClientID     string   `json:"clientId,omitempty"`
	ClientSecret string   `json:"clientSecret,omitempty"`
	Priority     int      `json:"priority,omitempty"`
	Region       string   `json:"region,omitempty"`
}

// Item returns the credential part of r in the raw form the item validator
// consumes.
func (r AddCredentialRequest) Item() RawCredentialItem {
	// string fields only, marshalling cannot fail
	raw, _ := json.Marshal(CredentialItem{
		RefreshToken: r.RefreshToken,
		Provider:     r.Provider,
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
	})
	return raw
}

// AddCredentialResponse reports the id of a credential added on its own.
type AddCredentialResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CredentialID int64  `json:"credentialId"`
}

// SetDisabledRequest enables or disables a single credential.
type SetDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// BatchDeleteDisabledResponse reports which disabled credentials were removed.
type BatchDeleteDisabledResponse struct {
	DeletedCount int     `json:"deletedCount"`
	DeletedIDs   []int64 `json:"deletedIds"`
}

// StatusItem converts c into its public view.
func (c Credential) StatusItem() CredentialStatusItem {
	return CredentialStatusItem{
		ID:        c.ID,
		Priority:  c.Priority,
		Disabled:  c.Disabled,
		Provider:  c.Provider,
		Region:    c.Region,
		CreatedAt: c.CreatedAt,
	}
}
