package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		req, err := parseBatch([]byte(`  [{"refreshToken":"a"}, 7]  `))
		require.NoError(t, err)
		require.Len(t, req.Items, 2)
		assert.Equal(t, `7`, string(req.Items[1]))
		assert.Equal(t, 0, req.Priority)
	})

	t.Run("object keeps priority and region", func(t *testing.T) {
		req, err := parseBatch([]byte(`{"credentials":[{"refreshToken":"a"}],"priority":4,"region":"ap-south-1"}`))
		require.NoError(t, err)
		assert.Len(t, req.Items, 1)
		assert.Equal(t, 4, req.Priority)
		assert.Equal(t, "ap-south-1", req.Region)
	})

	for name, body := range map[string]string{
		"credentials object": `{"credentials":{"refreshToken":"a"}}`,
		"broken array":       `[{"refreshToken":`,
		"scalar":             `"credentials"`,
		"empty file":         ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseBatch([]byte(body))
			assert.ErrorIs(t, err, ErrBatchFileFormat)
		})
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	_, err := readBatchFile("/does/not/exist.json")
	assert.Error(t, err)
}
