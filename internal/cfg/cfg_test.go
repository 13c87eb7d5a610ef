package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUploadCfg_Defaults(t *testing.T) {
	t.Setenv("UPLOAD_CONCURRENCY", "")
	t.Setenv("UPLOAD_TIMEOUT", "")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "")

	cfg, err := loadUploadCfg()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Concurrency)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, int64(5<<20), cfg.MaxFileSize)
}

func TestLoadUploadCfg_ClampsConcurrency(t *testing.T) {
	cases := []struct {
		name     string
		env      string
		expected int
	}{
		{name: "zero", env: "0", expected: 1},
		{name: "negative", env: "-3", expected: 1},
		{name: "positive kept", env: "12", expected: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("UPLOAD_CONCURRENCY", tc.env)

			cfg, err := loadUploadCfg()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Concurrency)
		})
	}
}

func TestLoadUploadCfg_MaxFileSize(t *testing.T) {
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "1048576")

	cfg, err := loadUploadCfg()
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), cfg.MaxFileSize)
}
