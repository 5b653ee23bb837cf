// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-pool/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertCredentialQuery(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cred := models.Credential{
		Provider:     models.ProviderBuilderID,
		RefreshToken: "sealed-rt",
		ClientID:     "cid",
		ClientSecret: "sealed-secret",
		Fingerprint:  "fp",
		Priority:     3,
		Region:       "eu-west-1",
	}

	query, args, err := buildInsertCredentialQuery(pgBuilder, cred, createdAt)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into credentials")
	require.Contains(t, q, "returning id")
	require.Contains(t, query, "$9")
	require.NotContains(t, query, "?")

	for _, col := range []string{"provider", "refresh_token", "client_id", "client_secret", "fingerprint", "priority", "region", "disabled", "created_at"} {
		require.Contains(t, q, col)
	}

	require.Equal(t, []any{"BuilderId", "sealed-rt", "cid", "sealed-secret", "fp", 3, "eu-west-1", false, createdAt}, args)
}

func Test_buildInsertCredentialQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildInsertCredentialQuery(sqliteBuilder, models.Credential{}, time.Time{})
	require.NoError(t, err)

	require.Equal(t, 9, strings.Count(query, "?"))
	require.NotContains(t, query, "$1")
	require.Len(t, args, 9)
}

func Test_buildSelectCredentialsQuery(t *testing.T) {
	query, args, err := buildSelectCredentialsQuery(pgBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, provider, refresh_token, client_id, client_secret, fingerprint, priority, region, disabled, created_at FROM credentials ORDER BY priority ASC, id ASC",
		query)
}

func Test_buildUpdateQueries(t *testing.T) {
	t.Run("priority", func(t *testing.T) {
		query, args, err := buildUpdatePriorityQuery(pgBuilder, 7, 2)
		require.NoError(t, err)

		assert.Equal(t, "UPDATE credentials SET priority = $1 WHERE id = $2", query)
		assert.Equal(t, []any{2, int64(7)}, args)
	})

	t.Run("disabled", func(t *testing.T) {
		query, args, err := buildUpdateDisabledQuery(sqliteBuilder, 7, true)
		require.NoError(t, err)

		assert.Equal(t, "UPDATE credentials SET disabled = ? WHERE id = ?", query)
		assert.Equal(t, []any{true, int64(7)}, args)
	})
}

func Test_buildDeleteDisabledQuery(t *testing.T) {
	query, args, err := buildDeleteDisabledQuery(pgBuilder)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM credentials WHERE disabled = $1 RETURNING id", query)
	assert.Equal(t, []any{true}, args)
}
