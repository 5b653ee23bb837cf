package service

import (
	"testing"

	"github.com/MKhiriev/go-cred-pool/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []models.ItemOutcome
		success  int
		failed   int
	}{
		{name: "nil", outcomes: nil},
		{
			name: "all success",
			outcomes: []models.ItemOutcome{
				models.NewSuccessOutcome(1, 1),
				models.NewSuccessOutcome(2, 2),
			},
			success: 2,
		},
		{
			name: "mixed",
			outcomes: []models.ItemOutcome{
				models.NewFailureOutcome(1, "bad"),
				models.NewSuccessOutcome(2, 9),
				models.NewFailureOutcome(3, "bad"),
			},
			success: 1,
			failed:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.outcomes)

			assert.Equal(t, len(tt.outcomes), result.Total)
			assert.Equal(t, tt.success, result.SuccessCount)
			assert.Equal(t, tt.failed, result.FailedCount)
			assert.NotNil(t, result.Results)
			assert.Len(t, result.Results, len(tt.outcomes))

			for i := range tt.outcomes {
				assert.Equal(t, tt.outcomes[i].Line, result.Results[i].Line)
			}
		})
	}
}
