package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cred-pool/models"
)

const credentialsTable = "credentials"

// credentialColumns is the column order every SELECT scans in.
var credentialColumns = []string{
	"id",
	"provider",
	"refresh_token",
	"client_id",
	"client_secret",
	"fingerprint",
	"priority",
	"region",
	"disabled",
	"created_at",
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, cred models.Credential, createdAt time.Time) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(
			"provider",
			"refresh_token",
			"client_id",
			"client_secret",
			"fingerprint",
			"priority",
			"region",
			"disabled",
			"created_at",
		).
		Values(
			string(cred.Provider),
			cred.RefreshToken,
			cred.ClientID,
			cred.ClientSecret,
			cred.Fingerprint,
			cred.Priority,
			cred.Region,
			cred.Disabled,
			createdAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCredentialsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("priority ASC", "id ASC").
		ToSql()
}

func buildUpdatePriorityQuery(b sq.StatementBuilderType, id int64, priority int) (string, []any, error) {
	return b.Update(credentialsTable).
		Set("priority", priority).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateDisabledQuery(b sq.StatementBuilderType, id int64, disabled bool) (string, []any, error) {
	return b.Update(credentialsTable).
		Set("disabled", disabled).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteDisabledQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(credentialsTable).
		Where(sq.Eq{"disabled": true}).
		Suffix("RETURNING id").
		ToSql()
}
