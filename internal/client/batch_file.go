package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cred-pool/models"
)

// readBatchFile loads a batch file. Two layouts are accepted:
//
//	[{"refreshToken": "..."}, ...]
//	{"credentials": [{"refreshToken": "..."}, ...], "priority": 1, "region": "..."}
//
// Items are kept raw so that every line can be checked on its own.
func readBatchFile(path string) (models.BatchAddRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.BatchAddRequest{}, fmt.Errorf("read batch file: %w", err)
	}

	return parseBatch(data)
}

func parseBatch(data []byte) (models.BatchAddRequest, error) {
	trimmed := bytes.TrimSpace(data)

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []models.RawCredentialItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return models.BatchAddRequest{}, fmt.Errorf("%w: %w", ErrBatchFileFormat, err)
		}
		return models.BatchAddRequest{Items: items}, nil
	}

	var req models.BatchAddRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return models.BatchAddRequest{}, fmt.Errorf("%w: %w", ErrBatchFileFormat, err)
	}
	return req, nil
}
