// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-cred-pool/models"
)

// RenderReport prints the outcome of a batch: a summary line
// "N succeeded, M failed" followed by one "line N: <error>" per failed item.
func RenderReport(w io.Writer, result models.BatchAddResult) error {
	var b strings.Builder

	summary := fmt.Sprintf("%d succeeded, %d failed", result.SuccessCount, result.FailedCount)
	if result.FailedCount > 0 {
		b.WriteString(failureStyle.Render(summary))
	} else {
		b.WriteString(successStyle.Render(summary))
	}
	b.WriteString("\n")

	for _, outcome := range result.Failed() {
		b.WriteString(fmt.Sprintf("line %d: %s\n", outcome.Line, outcome.Error))
	}

	if result.FailedCount > 0 {
		b.WriteString(helpStyle.Render("fix the listed lines and submit them again"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPrecheck prints the lines rejected by local validation in the same
// "line N: <reason>" form the server uses.
func RenderPrecheck(w io.Writer, precheck *PrecheckError) error {
	var b strings.Builder
	b.WriteString(failureStyle.Render("batch not sent: invalid lines found"))
	b.WriteString("\n")

	for _, itemErr := range precheck.Items {
		b.WriteString(fmt.Sprintf("line %d: %s\n", itemErr.Line, itemErr.Error()))
	}
	b.WriteString(helpStyle.Render("fix them or pass --skip-precheck to let the server report per line"))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCredentials prints the stored credentials as a bordered table.
func RenderCredentials(w io.Writer, status models.CredentialsStatusResponse) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d credentials, %d available", status.Total, status.Available)))
	b.WriteString("\n")

	if len(status.Credentials) > 0 {
		rows := make([]string, 0, len(status.Credentials)+1)
		rows = append(rows, fmt.Sprintf("%-6s %-9s %-10s %-8s %s", "ID", "PRIORITY", "PROVIDER", "STATE", "REGION"))
		for _, c := range status.Credentials {
			state := "active"
			if c.Disabled {
				state = "disabled"
			}
			rows = append(rows, fmt.Sprintf("%-6d %-9d %-10s %-8s %s", c.ID, c.Priority, c.Provider, state, c.Region))
		}
		b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
