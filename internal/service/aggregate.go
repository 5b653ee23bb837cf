package service

import "github.com/MKhiriev/go-cred-pool/models"

// Aggregate builds the batch report from per-line outcomes. Order is kept as
// given and the counters always add up to len(outcomes).
func Aggregate(outcomes []models.ItemOutcome) models.BatchAddResult {
	result := models.BatchAddResult{
		Total:   len(outcomes),
		Results: outcomes,
	}
	if result.Results == nil {
		result.Results = []models.ItemOutcome{}
	}

	for _, o := range outcomes {
		if o.Success {
			result.SuccessCount++
		}
	}
	result.FailedCount = result.Total - result.SuccessCount

	return result
}
