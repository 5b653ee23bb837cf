// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the cred-pool command-line client.
//
// It reads credential batches from JSON files, pre-checks every line with the
// same item rules the server applies, submits the batch through an
// adapter.ServerAdapter and renders the per-line report.
package client
